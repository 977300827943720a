// Command calc parses Calc source code and prints each statement in
// canonical, fully parenthesized form.
package main

import (
	"os"

	"github.com/deepnoodle-ai/calc/parser"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "calc [file]",
	Short: "Parse and pretty print Calc expressions",
	Long: `Calc parses a small expression language and prints each statement in
canonical, fully parenthesized form.

Code is read from --code, from a file argument, or from stdin. With no
input and an interactive terminal, calc starts the REPL.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		processGlobalFlags()
		configureLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if shouldRunRepl(cmd, args) {
			return runRepl(cmd.Context())
		}
		return runRender(cmd, args)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.calc.yaml)")
	rootCmd.PersistentFlags().StringP("code", "c", "", "code to parse")
	rootCmd.PersistentFlags().Bool("stdin", false, "read code from stdin")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Int("max-depth", parser.DefaultMaxDepth, "maximum expression nesting depth")

	viper.BindPFlag("code", rootCmd.PersistentFlags().Lookup("code"))
	viper.BindPFlag("stdin", rootCmd.PersistentFlags().Lookup("stdin"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("max-depth", rootCmd.PersistentFlags().Lookup("max-depth"))

	rootCmd.Flags().StringP("output", "o", "", "output format (json or text)")
	rootCmd.Flags().Bool("no-repl", false, "disable the REPL")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fatal(err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".calc")
	}

	viper.SetEnvPrefix("calc")
	viper.AutomaticEnv()

	// A missing default config file is fine; a file the user asked for
	// explicitly is not.
	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fatal(err)
	}
}

func configureLogging() {
	level := zerolog.WarnLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

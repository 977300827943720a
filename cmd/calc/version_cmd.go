package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := versionInfo{
			Version:   version,
			Commit:    commit,
			Date:      date,
			GoVersion: runtime.Version(),
			Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		}
		if output, _ := cmd.Flags().GetString("output"); output == "json" {
			return printJSON(info)
		}
		fmt.Printf("calc %s\n", info.Version)
		fmt.Printf("  commit:   %s\n", info.Commit)
		fmt.Printf("  built:    %s\n", info.Date)
		fmt.Printf("  go:       %s\n", info.GoVersion)
		fmt.Printf("  platform: %s\n", info.Platform)
		return nil
	},
}

func init() {
	versionCmd.Flags().StringP("output", "o", "", "output format (json or text)")
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"encoding/json"
	"fmt"

	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/viper"
)

// printJSON writes v to stdout as indented JSON, colorized unless color
// output is disabled.
func printJSON(v any) error {
	var output []byte
	var err error
	if viper.GetBool("no-color") {
		output, err = json.MarshalIndent(v, "", "  ")
	} else {
		output, err = prettyjson.Marshal(v)
	}
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

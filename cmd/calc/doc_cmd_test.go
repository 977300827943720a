package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocCommand_Quick(t *testing.T) {
	viper.Set("no-color", true)
	defer viper.Set("no-color", false)

	output := captureStdout(t, func() {
		require.NoError(t, docCmd.RunE(docCmd, nil))
	})
	assert.Contains(t, output, "syntax_quick_ref")
	assert.Contains(t, output, "version")
	assert.Contains(t, output, "topics")
}

func TestDocCommand_Topic(t *testing.T) {
	viper.Set("no-color", true)
	defer viper.Set("no-color", false)

	output := captureStdout(t, func() {
		require.NoError(t, docCmd.RunE(docCmd, []string{"E1003"}))
	})
	assert.Contains(t, output, "E1003")
	assert.Contains(t, output, "parenthesis")
}

func TestDocCommand_Category(t *testing.T) {
	viper.Set("no-color", true)
	defer viper.Set("no-color", false)
	require.NoError(t, docCmd.Flags().Set("category", "operators"))
	defer docCmd.Flags().Set("category", "")

	output := captureStdout(t, func() {
		require.NoError(t, docCmd.RunE(docCmd, nil))
	})
	assert.Contains(t, output, "assignment")
	assert.Contains(t, output, "right")
}

package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	servicesDir string
)

var rootCmd = &cobra.Command{
	Use:     "easymaas",
	Version: version,
	Short:   "Deploy functions as OpenAI compatible model services",
	Long: `easymaas turns plain functions into OpenAI compatible model services.

Service files are JavaScript scripts that call service(opts, fn); easymaas
loads them, maps request fields onto function parameters, wraps return
values into chat.completion responses and serves everything on
/v1/chat/completions.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&servicesDir, "services-dir", "services", "directory containing service files")
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LubyRuffy/easymaas"
	"github.com/LubyRuffy/easymaas/svcfile"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the services defined in the services dir",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := easymaas.NewRegistry()
		infos, err := svcfile.Load(servicesDir, reg)
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Printf("no service files found in %s\n", servicesDir)
			return nil
		}
		for _, info := range infos {
			fmt.Printf("%-20s %-12s %s\n", info.Model, info.Function, info.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/LubyRuffy/easymaas/deploy"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show live deployments",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := deploy.NewManager(".")
		if err != nil {
			return err
		}
		if _, err := mgr.CleanupDead(); err != nil {
			return err
		}
		deployments, err := mgr.List()
		if err != nil {
			return err
		}
		if len(deployments) == 0 {
			fmt.Println("no live deployments")
			return nil
		}
		for _, d := range deployments {
			fmt.Printf("%s:%d  pid %d  up %s  (%s)\n",
				d.Host, d.Port, d.PID, d.Uptime().Round(time.Second), d.ServicesDir)
			for _, svc := range d.Services {
				fmt.Printf("  %-20s %s\n", svc.Model, svc.File)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/LubyRuffy/easymaas"
	"github.com/LubyRuffy/easymaas/config"
	"github.com/LubyRuffy/easymaas/deploy"
	"github.com/LubyRuffy/easymaas/logger"
	"github.com/LubyRuffy/easymaas/openaihttp"
	"github.com/LubyRuffy/easymaas/svcfile"
)

var (
	startHost     string
	startPort     int
	startConfig   string
	startLogLevel string
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Load service files and serve them as OpenAI compatible models",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(startConfig)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("host") {
			cfg.Host = startHost
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = startPort
		}
		if cmd.Flags().Changed("services-dir") {
			cfg.ServicesDir = servicesDir
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = startLogLevel
		}

		if err := logger.Init(cfg.LogDir, cfg.LogLevel); err != nil {
			return err
		}

		mgr, err := deploy.NewManager(".")
		if err != nil {
			return err
		}
		if removed, err := mgr.CleanupDead(); err == nil && removed > 0 {
			logger.Infof("cleaned up %d dead deployment record(s)", removed)
		}
		if d, ok := mgr.FindByPort(cfg.Port); ok {
			return fmt.Errorf("port %d is already used by the deployment of %s (pid %d)", cfg.Port, d.ServicesDir, d.PID)
		}

		reg := easymaas.NewRegistry()
		infos, err := svcfile.Load(cfg.ServicesDir, reg)
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			logger.Warnf("no service files found in %s, run 'easymaas init --example' for a scaffold", cfg.ServicesDir)
		}
		for _, info := range infos {
			fmt.Printf("  %-20s %s (%s)\n", info.Model, info.Description, info.File)
		}

		record := deploy.Deployment{
			ServicesDir: cfg.ServicesDir,
			Host:        cfg.Host,
			Port:        cfg.Port,
			PID:         os.Getpid(),
			StartTime:   time.Now(),
		}
		for _, info := range infos {
			record.Services = append(record.Services, deploy.ServiceInfo{
				Model:    info.Model,
				Function: info.Function,
				File:     info.File,
			})
		}
		if err := mgr.Save(record); err != nil {
			return err
		}
		defer func() {
			if err := mgr.Delete(cfg.ServicesDir); err != nil {
				logger.Warnf("remove deployment record failed: %v", err)
			}
		}()

		srv, err := openaihttp.NewServer(cfg.Addr(), openaihttp.Config{Registry: reg})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Infof("easymaas serving %d service(s) on http://%s/v1", len(infos), cfg.Addr())
		return srv.Run(ctx)
	},
}

func init() {
	startCmd.Flags().StringVar(&startHost, "host", "0.0.0.0", "listen host")
	startCmd.Flags().IntVar(&startPort, "port", 8000, "listen port")
	startCmd.Flags().StringVar(&startConfig, "config", "", "config file path")
	startCmd.Flags().StringVar(&startLogLevel, "log-level", "info", "log level")
	rootCmd.AddCommand(startCmd)
}

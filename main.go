package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dispersion/calculator"
	"dispersion/recorder"
	"dispersion/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dispersion",
		Short: "Fluid dispersion simulation through a chain of containers",
		Long: `dispersion dips a tool through a chain of water containers round after
round and records the concentration of the last container after every round.

Without a subcommand it simulates every configured container count and writes
the results as CSV.`,
		SilenceUsage: true,
		RunE:         runSimulation,
	}

	rootCmd.PersistentFlags().String("config", calculator.DefaultConfigPath, "Path to the ini config file")
	rootCmd.Flags().StringP("output", "o", "", "CSV output path (default: <output.Dir or home>/<output.FileName>)")

	rootCmd.AddCommand(newServeCmd())
	return rootCmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve simulation results over websocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				cfg.Addr = addr
			}

			upgrader.CheckOrigin = func(r *http.Request) bool {
				return true
			}
			s := server.NewServer(cfg.Addr, upgrader, cfg)
			return s.Serve()
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default: server.Addr from config)")
	return cmd
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		path, err = recorder.OutputPath(cfg.OutputDir, cfg.FileName)
		if err != nil {
			return err
		}
	}

	records, err := calculator.Run(cfg.Containers, cfg.Rounds, cfg.Params)
	if err != nil {
		return err
	}
	if err := recorder.WriteFile(path, records); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"path":    path,
		"records": len(records),
	}).Info("结果已保存")
	return nil
}

func loadConfig(cmd *cobra.Command) (calculator.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := calculator.LoadConfig(path)
	if err != nil {
		return calculator.Config{}, err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return calculator.Config{}, fmt.Errorf("parse log.Level: %w", err)
	}
	log.SetLevel(level)
	return cfg, nil
}

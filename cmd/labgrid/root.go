package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rhyrak/labgrid/internal/config"
	"github.com/rhyrak/labgrid/internal/logger"
)

const (
	defaultCSVExport  = "figures/intervalos.csv"
	defaultXLSXExport = "figures/grafico.xlsx"
)

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:          "labgrid",
		Short:        "Render the weekly laboratory occupancy grid",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cfgPath)
			if err != nil {
				return err
			}
			return generate(cfg, log, cmd.OutOrStdout())
		},
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")

	var csvPath, xlsxPath string
	export := &cobra.Command{
		Use:   "export",
		Short: "Render the grid and export the intervals as CSV and XLSX",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cfgPath)
			if err != nil {
				return err
			}
			if csvPath != "" {
				cfg.Export.CSV = csvPath
			}
			if xlsxPath != "" {
				cfg.Export.XLSX = xlsxPath
			}
			if cfg.Export.CSV == "" {
				cfg.Export.CSV = defaultCSVExport
			}
			if cfg.Export.XLSX == "" {
				cfg.Export.XLSX = defaultXLSXExport
			}
			return generate(cfg, log, cmd.OutOrStdout())
		},
	}
	export.Flags().StringVar(&csvPath, "csv", "", "interval CSV output path, - for stdout")
	export.Flags().StringVar(&xlsxPath, "xlsx", "", "occupancy workbook output path")
	root.AddCommand(export)

	return root
}

func setup(cfgPath string) (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger.SetLevel(cfg.LogLevel)
	return cfg, logger.New("labgrid"), nil
}

package main

import (
	"fmt"

	"github.com/ougirez/fishstats/internal/config"
	"github.com/ougirez/fishstats/internal/pkg/constants"
	"github.com/ougirez/fishstats/internal/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

func getRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fishstats",
		Short: "Fishery statistics API for the southern macro-regions",
		Long: `fishstats loads the landings, raw-material production and plant registry
files for Los Lagos, Aysén and Magallanes into memory and serves
aggregated statistics over HTTP.`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to a YAML config file")

	cmd.AddCommand(getServeCmd())
	cmd.AddCommand(getLoadCmd())

	return cmd
}

// bootstrap resolves the configuration (flags > env > file > defaults) and
// initializes logging before any subcommand runs.
func bootstrap(cmd *cobra.Command, _ []string) error {
	v := config.New()

	if f := cmd.Flags().Lookup("addr"); f != nil {
		if err := v.BindPFlag(constants.ViperServerAddrKey, f); err != nil {
			return fmt.Errorf("bind --addr: %w", err)
		}
	}
	if f := cmd.Flags().Lookup("data"); f != nil {
		if err := v.BindPFlag(constants.ViperDataBasePathKey, f); err != nil {
			return fmt.Errorf("bind --data: %w", err)
		}
	}

	var err error
	cfg, err = config.Load(v, cfgFile)
	if err != nil {
		return err
	}

	if err = logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}

	logger.Debugf(cmd.Context(), "configuration loaded: %+v", *cfg)
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/on-the-ground/likebox/config"
	"github.com/on-the-ground/likebox/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	dataPath   string
	storeKind  string
	updateKey  string
	logLevel   string
	clicks     []int64
)

var rootCmd = &cobra.Command{
	Use:   "likebox",
	Short: "Render a user list with like buttons",
	Long: `Render a user list with like buttons.
Each --click presses the like button of the given user id and re-renders the list.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlags(cmd, &cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
		if cfg.Data == "" {
			return fmt.Errorf("%w: a dataset is required (--data)", config.ErrInvalidConfig)
		}

		logger, err := logging.New(cfg.Log)
		if err != nil {
			return err
		}
		defer func() {
			_ = logger.Sync()
		}()

		a, err := newApp(cfg, logger, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if err := a.render(); err != nil {
			return err
		}
		for _, id := range clicks {
			if err := a.click(id); err != nil {
				logger.Error("click failed", zap.Int64("user_id", id), zap.Error(err))
				return err
			}
		}
		return nil
	},
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Data = dataPath
	}
	if flags.Changed("store") {
		cfg.Store = storeKind
	}
	if flags.Changed("update-key") {
		cfg.UpdateKey = updateKey
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.Flags().StringVarP(&dataPath, "data", "d", "", "Path to a YAML dataset of users and likes")
	rootCmd.Flags().StringVar(&storeKind, "store", config.StoreMemory, "Like store: memory or memdb")
	rootCmd.Flags().StringVar(&updateKey, "update-key", config.UpdateKeyID, "Key passed by like buttons: id or date_of_birth")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.Flags().Int64SliceVar(&clicks, "click", nil, "User id whose like button to press (repeatable)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

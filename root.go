package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"primelab/core"
	"primelab/logging"
)

// app carries what every subcommand needs once the root has set up
// configuration and logging.
type app struct {
	stdout io.Writer
	stderr io.Writer

	envFile    string
	configPath string
	logLevel   string

	cfg    *core.Config
	logger *logging.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "primelab",
		Short:         "Number-theory lab: probabilistic primality tests and classical ciphers",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before configuration")
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file (default $"+core.EnvConfigFile+")")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usage(err)
	})

	root.AddCommand(
		newPrimalityCmd(a),
		newAffineCmd(a),
		newVigenereCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup loads the environment and configuration, then builds the logger.
func (a *app) setup() error {
	if err := core.LoadDotEnv(a.envFile); err != nil {
		return err
	}
	cfg, err := core.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		if !logging.ValidLevel(a.logLevel) {
			return core.ErrInvalidValue("log-level", a.logLevel, nil)
		}
		cfg.LogLevel = a.logLevel
	}

	fallback := zapcore.WarnLevel
	if cfg.DevMode {
		fallback = zapcore.DebugLevel
	}
	logger, err := logging.NewLogger(logging.Options{
		Development: cfg.DevMode,
		Level:       logging.ParseLevel(cfg.LogLevel, fallback),
		FilePath:    cfg.LogFile,
		Console:     zapcore.AddSync(a.stderr),
	})
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	logger.Debug("configuration loaded",
		zap.Int(logging.FieldRounds, cfg.Rounds),
		zap.Int(logging.FieldLimit, cfg.Limit),
		zap.Strings("numbers", cfg.Numbers),
		zap.String("output", cfg.Output),
		zap.Bool("dev_mode", logger.IsDevelopment()),
		zap.String("log_file", logger.LogFilePath()),
		zap.String("version", core.Version),
	)
	return nil
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Printing the version needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(a.stdout, "primelab %s\n", core.GetVersionInfo())
		},
	}
}

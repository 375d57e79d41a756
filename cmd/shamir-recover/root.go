package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vitalvas/shamirkit/config"
	"github.com/vitalvas/shamirkit/recovery"
	"github.com/vitalvas/shamirkit/report"
	"github.com/vitalvas/shamirkit/xcmd"
	"github.com/vitalvas/shamirkit/xlogger"
)

type flags struct {
	configFiles []string
	modulus     string
	strategy    string
	workers     int
	output      string
	logLevel    string
	logType     string
}

// NewRootCmd creates the shamir-recover command.
func NewRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "shamir-recover [flags] FILE...",
		Short: "Recover Shamir secrets from share files and flag inconsistent shares",
		Long: `Reads share files (JSON or YAML with a "keys" record and base-encoded values),
reconstructs each secret by Lagrange interpolation over a prime field and,
when a file holds more than k shares, lists the shares that disagree with
the polynomial defined by the first k.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}

			return run(cmd, conf, args)
		},
	}

	fs := rootCmd.Flags()
	fs.StringSliceVarP(&f.configFiles, "config", "c", nil, "config file (yaml or json), may be repeated")
	fs.StringVar(&f.modulus, "modulus", "", "prime field modulus in decimal")
	fs.StringVar(&f.strategy, "strategy", "", "wrong-point detection strategy: substitute or holdout")
	fs.IntVar(&f.workers, "workers", 0, "number of files processed concurrently")
	fs.StringVarP(&f.output, "output", "o", "", "report format: text or json")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.StringVar(&f.logType, "log-type", "", "log format: text or json")

	return rootCmd
}

// loadConfig layers flags that were set explicitly over file and environment config.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	conf, err := config.Load(config.WithFiles(f.configFiles...), config.WithEnv(config.EnvPrefix))
	if err != nil {
		return nil, err
	}

	fs := cmd.Flags()
	if fs.Changed("modulus") {
		conf.Modulus = f.modulus
	}
	if fs.Changed("strategy") {
		conf.Strategy = f.strategy
	}
	if fs.Changed("workers") {
		conf.Workers = f.workers
	}
	if fs.Changed("output") {
		conf.Output = f.output
	}
	if fs.Changed("log-level") {
		conf.Logger.Level = f.logLevel
	}
	if fs.Changed("log-type") {
		conf.Logger.LogType = f.logType
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func run(cmd *cobra.Command, conf *config.Config, paths []string) error {
	conf.Logger.Output = cmd.ErrOrStderr()
	logger := xlogger.New(conf.Logger)

	fieldConf, err := conf.Field()
	if err != nil {
		return err
	}

	strategy, err := conf.DetectionStrategy()
	if err != nil {
		return err
	}

	writer, err := report.New(conf.Output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	go func() {
		if err := xcmd.WaitInterrupted(ctx); errors.Is(err, xcmd.ErrInterrupted) {
			logger.Warn("stopping", slog.Any("reason", err))
			cancel()
		}
	}()

	recoverer := recovery.New(fieldConf,
		recovery.WithStrategy(strategy),
		recovery.WithWorkers(conf.Workers),
		recovery.WithLogger(logger),
	)

	results, runErr := recoverer.RecoverFiles(ctx, paths)

	if err := report.WriteAll(writer, results); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if runErr != nil {
		return runErr
	}

	failed := 0
	for _, result := range results {
		if result.Failed() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d share files failed", failed, len(results))
	}

	return nil
}

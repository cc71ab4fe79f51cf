// Command docsgen generates route documentation companions from handler
// doc comments.
//
// Run it from the module root, typically via go:generate:
//
//	//go:generate go run github.com/bjaus/humadocs/cmd/docsgen generate
//
// In CI, verify that committed companions are current:
//
//	docsgen generate --check
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/humadocs/docsgen"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "docsgen",
		Short: "Route documentation generator for humadocs",
	}

	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.AddCommand(newGenerateCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type generateConfig struct {
	Source     string `yaml:"source"`
	ConfigPath string `yaml:"-"`
	Check      bool   `yaml:"-"`
}

func newGenerateCommand() *cobra.Command {
	var config generateConfig

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate companion doc functions for annotated handlers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			setupLogging(level)

			if err := loadConfigFile(&config); err != nil {
				log.Error().Err(err).Msg("could not load config file")
				return err
			}

			return runGenerate(&config)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&config.Source, "source", ".", "directory tree containing annotated Go source")
	cmd.Flags().BoolVar(&config.Check, "check", false, "verify generated files are current instead of writing")
	cmd.Flags().StringVar(&config.ConfigPath, "config", "", "path to .docsgen.yml config file")

	return cmd
}

func runGenerate(config *generateConfig) error {
	results, err := docsgen.Generate(config.Source, config.Check)
	if err != nil {
		log.Error().Err(err).Msg("generation failed")
		return err
	}

	stale := 0
	for _, res := range results {
		switch {
		case res.Stale:
			stale++
			log.Error().Str("target", res.Target).Msg("companion file is stale; run docsgen generate")
		case res.Written:
			log.Info().Str("target", res.Target).Msg("wrote companion file")
		default:
			log.Debug().Str("target", res.Target).Msg("companion file up to date")
		}
	}

	if stale > 0 {
		return fmt.Errorf("%d companion file(s) stale", stale)
	}
	log.Info().Int("files", len(results)).Msg("generation complete")
	return nil
}

// loadConfigFile merges .docsgen.yml values under any explicitly set
// flags. A missing default config file is not an error.
func loadConfigFile(config *generateConfig) error {
	path := config.ConfigPath
	explicit := path != ""
	if !explicit {
		path = ".docsgen.yml"
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	var cfg struct {
		Docsgen generateConfig `yaml:"docsgen"`
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if cfg.Docsgen.Source != "" && config.Source == "." {
		config.Source = cfg.Docsgen.Source
	}
	return nil
}

func setupLogging(level string) {
	zerolog.SetGlobalLevel(parseLogLevel(level))
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func parseLogLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		log.Error().Msgf("log level %s not recognized; defaulting to info", level)
		return zerolog.InfoLevel
	}
}

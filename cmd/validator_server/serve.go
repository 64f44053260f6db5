package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/json-validator-api/internal/config"
	"github.com/jonathan/json-validator-api/internal/counter"
	"github.com/jonathan/json-validator-api/internal/schemas"
	"github.com/jonathan/json-validator-api/internal/server"
	"github.com/jonathan/json-validator-api/internal/validator"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the JSON validator API server",
	Long:  `Start an HTTP server that exposes the validation, examples, health and visitor counter endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and PORT)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()

	if serveConfig != "" {
		fileCfg, err := config.LoadConfig(serveConfig)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Check the config file against its schema (non-fatal).
		if schemaPath := schemas.ResolveSchemaPath("schemas/config.schema.json"); schemaPath != "" {
			if err := schemas.ValidateFile(schemaPath, serveConfig); err != nil {
				var validationErr *schemas.ValidationError
				if errors.As(err, &validationErr) {
					_, _ = fmt.Fprintf(os.Stderr, "Warning: config file does not validate against schema: %v\n", err)
				} else {
					_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate config against schema: %v\n", err)
				}
			}
		}

		// Env values win over file values.
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	cfg = cfg.MergeWithDefaults(config.Default())
	if servePort != 0 {
		cfg.Port = servePort
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	runner := validator.NewRunner(cfg.JavaBin, cfg.Classpath, cfg.ValidatorClass)

	var visitors counter.Store
	if cfg.DatabaseURL != "" {
		pg, err := counter.ConnectPostgres(cmd.Context(), cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to set up visitor counter: %w", err)
		}
		defer pg.Close()
		visitors = pg
	} else {
		visitors = counter.NewFileStore(cfg.CountFile)
	}

	srv, err := server.New(server.Config{
		Port:      cfg.Port,
		Validator: runner,
		Visitors:  visitors,
		Classpath: cfg.Classpath,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

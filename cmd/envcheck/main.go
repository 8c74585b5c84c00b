// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// envcheck validates the current process environment against a
// declarative schema file and reports every violation at once.
//
// Exit status is 0 when the environment satisfies the schema, 1 when
// validation found violations and 2 when the schema or env file
// could not be read at all.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/z5labs/envschema"
	"github.com/z5labs/envschema/source"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	err := buildCmd().Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, err)

	var verr envschema.ValidationError
	if errors.As(err, &verr) {
		os.Exit(1)
	}
	os.Exit(2)
}

func buildCmd() *cobra.Command {
	var schemaPath string
	var envFile string
	var strict bool

	cmd := &cobra.Command{
		Use:           "envcheck",
		Short:         "Validate environment variables against a schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zap.Must(zap.NewDevelopment()).Sugar()
			defer log.Sync()

			return run(log, schemaPath, envFile, strict)
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "schema.yaml", "path to the YAML schema file")
	cmd.Flags().StringVar(&envFile, "env-file", "", "dotenv file to overlay on the process environment")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail if the env file does not exist")
	return cmd
}

func run(log *zap.SugaredLogger, schemaPath, envFile string, strict bool) error {
	f, err := os.Open(schemaPath)
	if err != nil {
		return err
	}
	defer f.Close()

	schema, err := readSchema(f)
	if err != nil {
		return err
	}

	opts := []envschema.Option{}
	if envFile != "" {
		fileOpts := []source.FileOption{}
		if strict {
			fileOpts = append(fileOpts, source.Require())
		} else if _, err := os.Stat(envFile); errors.Is(err, fs.ErrNotExist) {
			log.Warnw("env file does not exist, continuing with the process environment",
				"path", envFile,
			)
		}
		opts = append(opts, envschema.EnvFile(envFile, fileOpts...))
	}

	cfg, err := envschema.Load(schema, opts...)
	if err != nil {
		return err
	}

	log.Infow("environment is valid",
		"keys", len(cfg),
	)
	return nil
}

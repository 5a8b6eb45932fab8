package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bankmerge-dev/bankmerge/internal/buildinfo"
	"github.com/bankmerge-dev/bankmerge/internal/config"
	"github.com/bankmerge-dev/bankmerge/internal/importer"
	"github.com/bankmerge-dev/bankmerge/internal/logger"
	"github.com/bankmerge-dev/bankmerge/internal/unifier"
	"github.com/bankmerge-dev/bankmerge/internal/writer"
)

// NewRootCommand creates the root CLI command.
func NewRootCommand() *cobra.Command {
	var outputPath string
	var configPath string
	var strict bool

	rootCmd := &cobra.Command{
		Use:   "bankmerge BANK_TYPE FILE [BANK_TYPE FILE ...]",
		Short: "Merge bank statement exports into one unified CSV",
		Long: "Merge bank statement exports into one unified CSV.\n\n" +
			"Each input is a BANK_TYPE FILE pair; files are merged in argument\n" +
			"order, each file's rows in source order.\n\n" +
			"Supported bank types: " + strings.Join(importer.DefaultRegistry().Banks(), ", "),
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		Args:    pairArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = outputPath
			}
			if cmd.Flags().Changed("strict") {
				cfg.Strict = strict
			}

			sources := make([]unifier.Source, 0, len(args)/2)
			for i := 0; i < len(args); i += 2 {
				sources = append(sources, unifier.Source{Bank: args[i], Path: args[i+1]})
			}

			log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
			u := unifier.New(importer.DefaultRegistry(), cfg.Strict, log)

			txns, err := u.Unify(sources)
			if err != nil {
				return err
			}

			return writer.WriteFile(cfg.Output, txns)
		},
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write unified CSV to FILE instead of stdout")
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to bankmerge.yaml")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "treat malformed rows as fatal instead of skipping them")

	rootCmd.AddCommand(newFormatsCommand())

	return rootCmd
}

func pairArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("requires at least one BANK_TYPE FILE pair")
	}
	if len(args)%2 != 0 {
		return errors.New("arguments must be BANK_TYPE FILE pairs")
	}
	return nil
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"sreddy.dev/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the projects, profile and skills files load cleanly",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Validating content from %s\n", cfg.ContentSource())
		if !validateContent(out, cfg) {
			return fmt.Errorf("content is invalid")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// validateContent checks each dataset separately so every failure is reported
func validateContent(out io.Writer, cfg *config.Config) bool {
	fsys := cfg.ContentFS()
	ok := true

	check := func(name string, load func() (int, error)) {
		n, err := load()
		if err != nil {
			fmt.Fprintf(out, "✗ %s: %v\n", name, err)
			ok = false
			return
		}
		fmt.Fprintf(out, "✓ %s (%d entries)\n", name, n)
	}

	check("projects", func() (int, error) {
		l, err := config.LoadProjects(fsys)
		if err != nil {
			return 0, err
		}
		return len(l.Projects), nil
	})
	check("profile", func() (int, error) {
		if _, err := config.LoadProfile(fsys); err != nil {
			return 0, err
		}
		return 1, nil
	})
	check("skills", func() (int, error) {
		l, err := config.LoadSkills(fsys)
		if err != nil {
			return 0, err
		}
		return len(l.Categories), nil
	})

	return ok
}

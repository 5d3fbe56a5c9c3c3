package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"sreddy.dev/internal/config"
	"sreddy.dev/internal/handlers"
	"sreddy.dev/internal/services"
)

var exportCmd = &cobra.Command{
	Use:   "export <output-dir>",
	Short: "Write the API responses as static JSON files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		content, err := cfg.LoadContent()
		if err != nil {
			return fmt.Errorf("failed to load content from %s: %w", cfg.ContentSource(), err)
		}

		n, err := exportContent(cmd.OutOrStdout(), args[0], content)
		if err != nil {
			return err
		}
		logger.Info("export complete", "dir", args[0], "files", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

// exportFile is one JSON document relative to the output directory
type exportFile struct {
	name string
	data any
}

// exportContent writes one file per API response under outputDir and
// returns the number of files written
func exportContent(out io.Writer, outputDir string, content *config.Content) (int, error) {
	projects, err := services.NewProjectService(content.Projects)
	if err != nil {
		return 0, err
	}
	profile, err := services.NewProfileService(content.Profile)
	if err != nil {
		return 0, err
	}
	skills, err := services.NewSkillService(content.Skills)
	if err != nil {
		return 0, err
	}

	// Ensure output directory exists
	projectsDir := filepath.Join(outputDir, "projects")
	if err := os.MkdirAll(projectsDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	group := projects.Group()
	files := []exportFile{
		{"projects.json", projects.GetAll()},
		{"featured.json", projects.GetFeatured()},
		{"grouped.json", handlers.GroupedResponse{Stats: group.Stats(), Sections: group.Sections()}},
		{"apps.json", projects.GetPublishedApps()},
		{"profile.json", profile.Get()},
		{"skills.json", skills.GetAll()},
	}
	for _, p := range projects.GetAll() {
		files = append(files, exportFile{filepath.Join("projects", p.ID+".json"), p})
	}

	for _, f := range files {
		path := filepath.Join(outputDir, f.name)

		data, err := json.MarshalIndent(f.data, "", "  ")
		if err != nil {
			return 0, fmt.Errorf("marshaling %s: %w", f.name, err)
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return 0, fmt.Errorf("writing %s: %w", f.name, err)
		}

		fmt.Fprintf(out, "  Created %s\n", f.name)
	}

	return len(files), nil
}

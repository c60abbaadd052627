package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/artti-capital/linea/internal/output"
	"github.com/artti-capital/linea/internal/state"
)

var importProject string

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import issues from a YAML file",
	Long: `Import issues in bulk from a YAML file.

The file holds a top-level "issues" list:

  issues:
    - title: Fix login crash
      description: Empty password panics the handler
      status: progress
      priority: urgent
    - title: Polish dashboard spacing
      priority: low

Status and priority accept the same shorthand as the issue flags.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return importRun(args[0])
	},
}

func init() {
	importCmd.Flags().StringVar(&importProject, "project", "", "Assign all imported issues to this project")
	rootCmd.AddCommand(importCmd)
}

// importIssue is one issue entry in the import file.
type importIssue struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Status      string `yaml:"status"`
	Priority    string `yaml:"priority"`
	Project     string `yaml:"project"`
}

type importFile struct {
	Issues []importIssue `yaml:"issues"`
}

func importRun(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return fmt.Errorf("file is empty: %s", file)
	}

	var parsed importFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("parse %s: %w", file, err)
	}
	if len(parsed.Issues) == 0 {
		return fmt.Errorf("no issues found in %s", file)
	}

	s := getSession()

	created := 0
	for n, entry := range parsed.Issues {
		if strings.TrimSpace(entry.Title) == "" {
			ui.Warning("Skipping entry %d: missing title", n+1)
			continue
		}

		input := state.IssueInput{
			Title:       entry.Title,
			Description: entry.Description,
		}
		if entry.Status != "" {
			st, err := parseStatusFlag(entry.Status)
			if err != nil {
				ui.Warning("Entry %q: %v, using default", entry.Title, err)
			} else {
				input.Status = st
			}
		}
		if entry.Priority != "" {
			pr, err := parsePriorityFlag(entry.Priority)
			if err != nil {
				ui.Warning("Entry %q: %v, using default", entry.Title, err)
			} else {
				input.Priority = pr
			}
		}

		projectRef := entry.Project
		if importProject != "" {
			projectRef = importProject
		}
		if projectRef != "" {
			if p, ok := s.Project(projectRef); ok {
				input.ProjectID = p.ID
			} else {
				ui.Warning("Entry %q: project %q not found, leaving unset", entry.Title, projectRef)
			}
		}

		i := s.CreateIssue(input)
		ui.VerboseLog("Created %s: %s", output.KeyColor(i.Key), i.Title)
		created++
	}

	ui.Success("Imported %d issue(s) from %s", created, file)
	return nil
}

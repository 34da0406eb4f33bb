package main

import (
	"errors"
	"fmt"

	"github.com/aretw0/nbserve/internal/config"
	"github.com/aretw0/nbserve/internal/deps"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check external dependencies and directories",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		statuses := deps.CheckBinaries([]deps.Requirement{{
			Name:        "Graphviz dot",
			Command:     cfg.Render.DotBinary,
			Description: "renders the decision tree to PNG",
			Optional:    cfg.Render.Engine == config.EngineGraphviz,
		}})
		statuses = append(statuses,
			deps.CheckDirectory("Documents", cfg.Paths.DocumentsDir),
			deps.CheckDirectory("Static assets", cfg.Paths.StaticDir),
		)

		out := cmd.OutOrStdout()
		for _, s := range statuses {
			mark := "ok"
			if !s.Available {
				mark = "MISSING"
				if s.Optional {
					mark = "warn"
				}
			}
			fmt.Fprintf(out, "[%-7s] %-14s %s", mark, s.Name, s.Command)
			if s.Detail != "" {
				fmt.Fprintf(out, " (%s)", s.Detail)
			}
			fmt.Fprintln(out)
		}

		if !deps.Healthy(statuses) {
			return errors.New("some required dependencies are missing")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

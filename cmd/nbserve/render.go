package main

import (
	"fmt"

	"github.com/aretw0/nbserve/internal/cli"
	"github.com/aretw0/nbserve/internal/presentation/graph"
	"github.com/aretw0/nbserve/pkg/tree"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the decision-tree image once",
	Long: `Exports the decision tree to DOT and renders it to PNG in the document directory.

The tree comes from render.model (or --model), a JSON file of nested nodes:
  {"feature": 0, "threshold": 0.5, "impurity": 0.6, "samples": 10,
   "value": [5, 3, 2], "left": {...}, "right": {...}}
Leaves use "feature": -1. Without a model the graph has no nodes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp(cmd)
		if err != nil {
			return err
		}

		if asMermaid, _ := cmd.Flags().GetBool("mermaid"); asMermaid {
			fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(app.Model, tree.DefaultExportOptions()))
			return nil
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		rendered, err := app.Service.GenerateTree(ctx)
		if err != nil {
			if cli.IsInterrupted(err) {
				return fmt.Errorf("render interrupted by %v", ctx.Signal())
			}
			return err
		}
		cli.PrintSystemMessage(cmd.OutOrStdout(), "Tree written to %s and %s", rendered.DOTFile, rendered.ImageFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().String("engine", "", "Tree render engine: exec or graphviz (overrides render.engine)")
	renderCmd.Flags().String("model", "", "JSON tree model to export (overrides render.model)")
	renderCmd.Flags().Bool("mermaid", false, "Print the tree as a Mermaid flowchart instead of rendering")
}

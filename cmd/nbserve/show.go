package main

import (
	"encoding/json"
	"os"

	"github.com/aretw0/nbserve/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <nombre>",
	Short: "Print the extracted cells of a notebook",
	Long: `Reads a notebook from the document directory and prints its cells.
Markdown cells are styled when stdout is a terminal; use --json for the API payload.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp(cmd)
		if err != nil {
			return err
		}

		cells, err := app.Service.ReadNotebook(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(cells)
		}

		plain, _ := cmd.Flags().GetBool("plain")
		if !tui.IsTerminal(os.Stdout) {
			plain = true
		}
		return tui.NewCellPrinter(cmd.OutOrStdout(), plain).Print(cells)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Bool("json", false, "Print the cells as JSON")
	showCmd.Flags().Bool("plain", false, "Disable colors and markdown styling")
}

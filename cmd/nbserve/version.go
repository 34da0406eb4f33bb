package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/nbserve"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of nbserve",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "nbserve version %s\n", strings.TrimSpace(nbserve.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

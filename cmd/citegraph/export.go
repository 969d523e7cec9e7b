// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.yaml|file.json>",
	Short: "Export the stored graph to YAML or JSON",
	Long: `Export writes the full stored citation graph (nodes with creation
dates, edges with timespans) to a YAML or JSON file, chosen by the
file extension.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadStoredGraph(cmd)
		if err != nil {
			return err
		}
		return exportToFile(g, args[0])
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

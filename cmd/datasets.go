package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crimescope/crimescope/internal/dataset"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List the crime datasets available in the data directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := dataset.ListFiles(settings().DataDir)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Printf("- %s\n", f)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
}

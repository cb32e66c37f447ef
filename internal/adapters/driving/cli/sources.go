package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List indexed source documents",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if indexService == nil {
			return errors.New("index service not configured")
		}

		sources := indexService.Sources(context.Background())
		if len(sources) == 0 {
			cmd.Println("No documents indexed yet. Add some with 'kvault add'.")
			return nil
		}

		for _, name := range sources {
			cmd.Printf("  %s\n", name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

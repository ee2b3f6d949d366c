package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkgsmith-labs/pkgsmith/internal/license"
)

func init() {
	rootCmd.AddCommand(licensesCmd)
}

var licensesCmd = &cobra.Command{
	Use:   "licenses",
	Short: "List available license identifiers",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, id := range license.Available() {
			fmt.Println(id)
		}
		return nil
	},
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rpn",
	Long:  `Print the version number of rpn.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rpn %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

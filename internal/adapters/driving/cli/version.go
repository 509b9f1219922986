package cli

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the teamscdr version",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println("teamscdr " + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gopile/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gopile",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
		fmt.Println("Bored Pile Axial Capacity Tool")
		fmt.Println("Skin friction and end bearing from layered soil profiles")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

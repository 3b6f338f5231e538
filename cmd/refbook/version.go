// Version command for the refbook CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/refbook/pkg/refbook"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the refbook version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("refbook", refbook.Version)
	},
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumeforge/internal/types"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the supported target roles",
	Long:  "List the target roles accepted by --role and the form selector. The first one is the default.",
	Args:  cobra.NoArgs,
	RunE:  runRoles,
}

func init() {
	rootCmd.AddCommand(rolesCmd)
}

func runRoles(cmd *cobra.Command, _ []string) error {
	for _, r := range types.Roles() {
		fmt.Fprintln(cmd.OutOrStdout(), r)
	}
	return nil
}

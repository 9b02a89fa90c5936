package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/turbolytics/salesreport/internal/cmd/fixtures"
	"github.com/turbolytics/salesreport/internal/cmd/report"
)

func NewRootCommand() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "salesreport",
		Short: "Generates and uploads sales activity reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(report.NewCommand())
	cmd.AddCommand(fixtures.NewCommand())
	cmd.AddCommand(newServeCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

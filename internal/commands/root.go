// Package commands holds the lightbnb command line.
package commands

import "github.com/spf13/cobra"

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lightbnb",
		Short:         "LightBnB data tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		InitCmd(),
		TablesCmd(),
		UserCmd(),
		ReservationsCmd(),
		PropertiesCmd(),
		SeedCmd(),
	)

	return rootCmd
}

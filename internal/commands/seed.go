package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lightbnb/lightbnb/internal/fixtures"
	"github.com/lightbnb/lightbnb/internal/store"
)

func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed [file]",
		Short: "Insert users and properties from a JSON fixtures file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := fixtures.Load(args[0])
			if err != nil {
				return err
			}

			return withStore(cmd.Context(), func(s *store.Store) error {
				sum, err := fixtures.Apply(cmd.Context(), s, ds)
				if err != nil {
					return fmt.Errorf("seed failed after %d users and %d properties: %w", sum.UsersAdded, sum.PropertiesAdded, err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d users (%d already present) and %d properties\n",
					sum.UsersAdded, sum.UsersExisting, sum.PropertiesAdded)
				return nil
			})
		},
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lightbnb/lightbnb/internal/database"
)

func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create missing LightBnB tables in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := getDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Bootstrap(cmd.Context(), db.Gorm()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Tables are ready: users, properties, reservations, property_reviews")
			return nil
		},
	}
}

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lightbnb/lightbnb/internal/database"
)

func TablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Show the tables and columns the data layer expects",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := database.Describe()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, table := range tables {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintln(w, table.Name)
				for _, c := range table.Columns {
					var attrs []string
					if c.PrimaryKey {
						attrs = append(attrs, "primary key")
					}
					if c.NotNull {
						attrs = append(attrs, "not null")
					}
					if c.Unique {
						attrs = append(attrs, "unique")
					}
					fmt.Fprintf(w, "  %-22s  %-8s  %s\n", c.Name, c.Type, strings.Join(attrs, ", "))
				}
			}
			return nil
		},
	}
}

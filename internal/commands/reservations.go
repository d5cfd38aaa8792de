package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lightbnb/lightbnb/internal/store"
)

func ReservationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reservations",
		Short: "List a guest's past reservations",
		RunE: func(cmd *cobra.Command, args []string) error {
			guestID, _ := cmd.Flags().GetInt64("guest")
			limit, _ := cmd.Flags().GetInt("limit")

			return withStore(cmd.Context(), func(s *store.Store) error {
				reservations, err := s.GetAllReservations(cmd.Context(), guestID, limit)
				if err != nil {
					return fmt.Errorf("failed to list reservations: %w", err)
				}

				w := cmd.OutOrStdout()
				if len(reservations) == 0 {
					fmt.Fprintln(w, "No past reservations.")
					return nil
				}

				fmt.Fprintf(w, "%-12s  %-30s  %-20s  %-10s  %-10s  %-6s\n", "Reservation", "Property", "City", "Start", "End", "Rating")
				for _, r := range reservations {
					fmt.Fprintf(w, "%-12d  %-30s  %-20s  %-10s  %-10s  %-6s\n",
						r.ReservationID, r.Title, r.City,
						r.StartDate.Format(time.DateOnly), r.EndDate.Format(time.DateOnly),
						formatRating(r.AverageRating))
				}
				return nil
			})
		},
	}

	cmd.Flags().Int64("guest", 0, "Id of the guest")
	cmd.Flags().Int("limit", store.DefaultLimit, "Maximum number of reservations")
	_ = cmd.MarkFlagRequired("guest")

	return cmd
}

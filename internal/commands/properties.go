package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lightbnb/lightbnb/internal/model"
	"github.com/lightbnb/lightbnb/internal/store"
)

func PropertiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "properties",
		Short: "Search and list properties",
	}
	cmd.AddCommand(propertiesSearchCmd(), propertiesAddCmd())
	return cmd
}

func propertiesSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search properties, cheapest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := searchOptions(cmd)
			if err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetInt("limit")

			return withStore(cmd.Context(), func(s *store.Store) error {
				listings, err := s.GetAllProperties(cmd.Context(), opts, limit)
				if err != nil {
					return fmt.Errorf("failed to search properties: %w", err)
				}
				if len(listings) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No matching properties.")
					return nil
				}
				printListings(cmd.OutOrStdout(), listings)
				return nil
			})
		},
	}

	cmd.Flags().String("city", "", "City name or part of it")
	cmd.Flags().Int64("owner", 0, "Only properties of this owner id")
	cmd.Flags().Int64("min-price", 0, "Minimum cost per night")
	cmd.Flags().Int64("max-price", 0, "Maximum cost per night")
	cmd.Flags().Float64("min-rating", 0, "Minimum average rating")
	cmd.Flags().Int("limit", store.DefaultLimit, "Maximum number of properties")

	return cmd
}

// searchOptions turns the flags that were given into search options.
func searchOptions(cmd *cobra.Command) (store.SearchOptions, error) {
	var opts store.SearchOptions
	flags := cmd.Flags()

	opts.City, _ = flags.GetString("city")
	if flags.Changed("owner") {
		v, _ := flags.GetInt64("owner")
		opts.OwnerID = &v
	}
	if flags.Changed("min-price") {
		v, _ := flags.GetInt64("min-price")
		opts.MinPricePerNight = &v
	}
	if flags.Changed("max-price") {
		v, _ := flags.GetInt64("max-price")
		opts.MaxPricePerNight = &v
	}
	if opts.MinPricePerNight != nil && opts.MaxPricePerNight != nil && *opts.MinPricePerNight > *opts.MaxPricePerNight {
		return opts, errors.New("--min-price is greater than --max-price")
	}
	if flags.Changed("min-rating") {
		v, _ := flags.GetFloat64("min-rating")
		opts.MinRating = &v
	}
	return opts, nil
}

func propertiesAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "List a new property",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			var np model.NewProperty
			np.OwnerID, _ = flags.GetInt64("owner")
			np.Title, _ = flags.GetString("title")
			np.Description, _ = flags.GetString("description")
			np.ThumbnailPhotoURL, _ = flags.GetString("thumbnail")
			np.CoverPhotoURL, _ = flags.GetString("cover")
			np.CostPerNight, _ = flags.GetInt64("cost")
			np.ParkingSpaces, _ = flags.GetInt("parking")
			np.NumberOfBathrooms, _ = flags.GetInt("bathrooms")
			np.NumberOfBedrooms, _ = flags.GetInt("bedrooms")
			np.Country, _ = flags.GetString("country")
			np.Street, _ = flags.GetString("street")
			np.City, _ = flags.GetString("city")
			np.Province, _ = flags.GetString("province")
			np.PostCode, _ = flags.GetString("post-code")

			return withStore(cmd.Context(), func(s *store.Store) error {
				property, err := s.AddProperty(cmd.Context(), np)
				if errors.Is(err, store.ErrUnknownReference) {
					return fmt.Errorf("owner %d does not exist", np.OwnerID)
				}
				if err != nil {
					return fmt.Errorf("failed to add property: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Added property %d: %s (%s)\n", property.ID, property.Title, property.City)
				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.Int64("owner", 0, "Id of the owning user")
	flags.String("title", "", "Listing title")
	flags.String("description", "", "Listing description")
	flags.String("thumbnail", "", "Thumbnail photo URL")
	flags.String("cover", "", "Cover photo URL")
	flags.Int64("cost", 0, "Cost per night")
	flags.Int("parking", 0, "Number of parking spaces")
	flags.Int("bathrooms", 0, "Number of bathrooms")
	flags.Int("bedrooms", 0, "Number of bedrooms")
	flags.String("country", "", "Country")
	flags.String("street", "", "Street address")
	flags.String("city", "", "City")
	flags.String("province", "", "Province or state")
	flags.String("post-code", "", "Postal code")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func printListings(w io.Writer, listings []model.PropertyListing) {
	fmt.Fprintf(w, "%-8s  %-30s  %-20s  %-10s  %-6s\n", "ID", "Title", "City", "Per night", "Rating")
	for _, l := range listings {
		fmt.Fprintf(w, "%-8d  %-30s  %-20s  %-10d  %-6s\n", l.ID, l.Title, l.City, l.CostPerNight, formatRating(l.AverageRating))
	}
}

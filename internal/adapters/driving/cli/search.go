package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
)

var (
	searchLat         float64
	searchLng         float64
	searchRadiusMiles float64
	searchJSON        bool
)

var searchCmd = &cobra.Command{
	Use:   "search [category]",
	Short: "Search aid services near a location",
	Long: `Searches all configured sources for aid services within a radius of
a location. Category matching is case-insensitive; omit the category or
pass "all" to match every service type.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Float64Var(&searchLat, "lat", 0, "latitude of the search origin")
	searchCmd.Flags().Float64Var(&searchLng, "lng", 0, "longitude of the search origin")
	searchCmd.Flags().Float64VarP(&searchRadiusMiles, "radius", "r", 2, "search radius in miles")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	_ = searchCmd.MarkFlagRequired("lat")
	_ = searchCmd.MarkFlagRequired("lng")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if aggregateService == nil {
		return errors.New("aggregate service not configured")
	}

	category := ""
	if len(args) == 1 {
		category = args[0]
	}

	q := domain.Query{
		Category:     category,
		Lat:          searchLat,
		Lng:          searchLng,
		RadiusMeters: searchRadiusMiles * domain.MetersPerMile,
	}

	records, err := aggregateService.Aggregate(context.Background(), q)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, records)
	}

	return outputSearchTable(cmd, q, records)
}

func outputSearchJSON(cmd *cobra.Command, records []domain.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, q domain.Query, records []domain.Record) error {
	if len(records) == 0 {
		cmd.Println("No services found.")
		return nil
	}

	cmd.Printf("Services within %.1f miles:\n", q.RadiusMeters/domain.MetersPerMile)
	cmd.Println()
	for i, rec := range records {
		cmd.Printf("  [%d] %s", i+1, rec.Name)
		if coord, ok := rec.PrimaryCoordinate(); ok {
			miles := domain.DistanceMeters(q.Lat, q.Lng, coord.Lat, coord.Lon) / domain.MetersPerMile
			cmd.Printf(" (%.1f mi)", miles)
		}
		cmd.Println()

		if len(rec.ServiceTypes) > 0 {
			cmd.Printf("      Services: %s\n", strings.Join(rec.ServiceTypes, ", "))
		}
		if len(rec.Addresses) > 0 {
			cmd.Printf("      Address: %s\n", rec.Addresses[0])
		}
		if rec.Phone != "" {
			cmd.Printf("      Phone: %s\n", rec.Phone)
		}
		if rec.Website != "" {
			cmd.Printf("      Website: %s\n", rec.Website)
		}
		if rec.Upvotes > 0 {
			cmd.Printf("      Upvotes: %d\n", rec.Upvotes)
		}
		cmd.Printf("      Source: %s  ID: %s\n", rec.Source, rec.ID)
		cmd.Println()
	}

	return nil
}

package cli

import (
	"context"
	"fmt"

	configfile "github.com/urban-refuge/aidfinder/internal/adapters/driven/config/file"
	"github.com/urban-refuge/aidfinder/internal/adapters/driven/storage/memory"
	"github.com/urban-refuge/aidfinder/internal/adapters/driven/storage/sqlite"
	"github.com/urban-refuge/aidfinder/internal/connectors/geocode"
	"github.com/urban-refuge/aidfinder/internal/connectors/google"
	"github.com/urban-refuge/aidfinder/internal/connectors/local"
	"github.com/urban-refuge/aidfinder/internal/connectors/places"
	"github.com/urban-refuge/aidfinder/internal/connectors/sheets"
	"github.com/urban-refuge/aidfinder/internal/core/ports/driven"
	"github.com/urban-refuge/aidfinder/internal/core/services"
	"github.com/urban-refuge/aidfinder/internal/logger"
)

// initServices builds the real adapter stack from configuration. The local
// store is always wired; the sheet feed and the places source join only
// when their credentials are configured, so a bare install still searches
// community submissions.
func initServices() error {
	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var serviceStore driven.ServiceStore
	var reviewStore driven.ReviewStore
	if store, err := sqlite.NewStore(cfg.GetString(configfile.KeyDataDir)); err != nil {
		// Keep search usable; submissions just won't survive the process.
		logger.Warn("local store unavailable, submissions will not persist: %v", err)
		serviceStore = memory.NewServiceStore()
		reviewStore = memory.NewReviewStore()
	} else {
		serviceStore = store.ServiceStore()
		reviewStore = store.ReviewStore()
	}
	submissionService = services.NewSubmission(serviceStore, reviewStore)

	sources := []driven.ServiceSource{local.NewSource(serviceStore, reviewStore)}

	if src, ok := sheetSource(cfg); ok {
		sources = append(sources, services.NewSheetCache(src, cfg.CacheTTL(services.DefaultSheetTTL)))
	}
	if apiKey := cfg.GetString(configfile.KeyGoogleAPIKey); apiKey != "" {
		sources = append(sources, places.NewSource(places.NewClient(apiKey)))
	}

	logger.Debug("wired %d sources", len(sources))
	aggregateService = services.NewAggregator(sources...)
	return nil
}

// sheetSource builds the spreadsheet feed when both the sheet ID and the
// service-account credentials are configured.
func sheetSource(cfg *configfile.ConfigStore) (driven.ServiceSource, bool) {
	sheetID := cfg.GetString(configfile.KeySheetID)
	credentials := cfg.GetString(configfile.KeyCredentialsPath)
	if sheetID == "" || credentials == "" {
		return nil, false
	}

	svc, err := google.NewSheetsService(context.Background(), credentials)
	if err != nil {
		logger.Warn("sheet feed disabled: %v", err)
		return nil, false
	}

	var geocoder driven.Geocoder
	if apiKey := cfg.GetString(configfile.KeyGoogleAPIKey); apiKey != "" {
		geocoder = geocode.NewClient(apiKey)
	}

	return sheets.NewSource(sheets.NewReader(svc), geocoder, sheetID), true
}

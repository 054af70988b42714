package services

import (
	"context"
	"sort"

	"munasabat-backend/internal/storage"
	"munasabat-backend/models"
)

// RegionStats pairs the event and vendor counts for one region.
type RegionStats struct {
	Region      models.Region `json:"region"`
	EventCount  int           `json:"event_count"`
	VendorCount int           `json:"vendor_count"`
}

// AdminStats is the aggregate snapshot the admin dashboard renders.
type AdminStats struct {
	TotalEvents   int                      `json:"total_events"`
	TotalYesRSVPs int                      `json:"total_yes_rsvps"`
	TotalVendors  int                      `json:"total_vendors"`
	TotalDresses  int                      `json:"total_dresses"`
	TotalBundles  int                      `json:"total_bundles"`
	EventsByType  map[models.EventType]int `json:"events_by_type"`
	Regions       []RegionStats            `json:"regions"`
	TopVendors    []models.Vendor          `json:"top_vendors"`
}

type AdminService struct {
	store *storage.Store
}

func NewAdminService(store *storage.Store) *AdminService {
	return &AdminService{store: store}
}

// GetStats recomputes the dashboard aggregates from the stored collections.
// Yes totals sum party sizes, matching the RSVP summary semantics.
func (s *AdminService) GetStats(ctx context.Context) (AdminStats, error) {
	var vendors []models.Vendor
	if err := s.store.ReadJSON(ctx, storage.KeyVendors, &vendors); err != nil {
		return AdminStats{}, err
	}
	var events []models.EventModel
	if err := s.store.ReadJSON(ctx, storage.KeyEvents, &events); err != nil {
		return AdminStats{}, err
	}
	var dresses []models.Dress
	if err := s.store.ReadJSON(ctx, storage.KeyDresses, &dresses); err != nil {
		return AdminStats{}, err
	}
	var bundles []models.Bundle
	if err := s.store.ReadJSON(ctx, storage.KeyBundles, &bundles); err != nil {
		return AdminStats{}, err
	}

	stats := AdminStats{
		TotalEvents:  len(events),
		TotalVendors: len(vendors),
		TotalDresses: len(dresses),
		TotalBundles: len(bundles),
		EventsByType: make(map[models.EventType]int),
	}

	eventsByRegion := make(map[models.Region]int)
	for _, ev := range events {
		stats.TotalYesRSVPs += SummarizeRSVPs(ev.Attendees).YesCount
		stats.EventsByType[ev.Type]++
		eventsByRegion[ev.Region]++
	}

	vendorsByRegion := make(map[models.Region]int)
	for _, v := range vendors {
		vendorsByRegion[v.Region]++
	}
	for _, region := range []models.Region{models.RegionNorth, models.RegionCenter, models.RegionSouth} {
		stats.Regions = append(stats.Regions, RegionStats{
			Region:      region,
			EventCount:  eventsByRegion[region],
			VendorCount: vendorsByRegion[region],
		})
	}

	stats.TopVendors = topVendorsByRating(vendors, 5)
	return stats, nil
}

// topVendorsByRating returns the n best rated vendors, preserving collection
// order between equal ratings.
func topVendorsByRating(vendors []models.Vendor, n int) []models.Vendor {
	ranked := make([]models.Vendor, len(vendors))
	copy(ranked, vendors)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RatingAverage > ranked[j].RatingAverage
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// GetSiteSettings returns the feature toggles, defaults when never saved.
func (s *AdminService) GetSiteSettings(ctx context.Context) (models.SiteSettings, error) {
	settings := models.DefaultSiteSettings()
	if err := s.store.ReadJSON(ctx, storage.KeySiteSettings, &settings); err != nil {
		return models.SiteSettings{}, err
	}
	return settings, nil
}

func (s *AdminService) SaveSiteSettings(ctx context.Context, settings models.SiteSettings) error {
	return s.store.WithLock(storage.KeySiteSettings, func() error {
		return s.store.WriteJSON(ctx, storage.KeySiteSettings, settings)
	})
}

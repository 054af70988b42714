package services

import (
	"context"
	"fmt"

	"munasabat-backend/internal/status"
	"munasabat-backend/internal/storage"
	"munasabat-backend/models"
)

type VendorService struct {
	store *storage.Store
}

func NewVendorService(store *storage.Store) *VendorService {
	return &VendorService{store: store}
}

// GetVendors returns the current vendor snapshot in insertion order.
func (s *VendorService) GetVendors(ctx context.Context) ([]models.Vendor, error) {
	vendors := []models.Vendor{}
	if err := s.store.ReadJSON(ctx, storage.KeyVendors, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

func (s *VendorService) GetVendorByID(ctx context.Context, id string) (models.Vendor, error) {
	vendors, err := s.GetVendors(ctx)
	if err != nil {
		return models.Vendor{}, err
	}
	for _, v := range vendors {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Vendor{}, fmt.Errorf("vendor %s: %w", id, status.ErrNotFound)
}

// GetSuggestions filters the vendor list down to the ids curated for the
// occasion type, keeping the vendor collection's relative order. Curated ids
// that do not resolve (the index references a couple of dresses) are skipped;
// an unknown type yields an empty list.
func (s *VendorService) GetSuggestions(ctx context.Context, eventType models.EventType) ([]models.Vendor, error) {
	ids := storage.SuggestedVendorIDs[eventType]
	if len(ids) == 0 {
		return []models.Vendor{}, nil
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	vendors, err := s.GetVendors(ctx)
	if err != nil {
		return nil, err
	}

	suggestions := []models.Vendor{}
	for _, v := range vendors {
		if wanted[v.ID] {
			suggestions = append(suggestions, v)
		}
	}
	return suggestions, nil
}

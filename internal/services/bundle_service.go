package services

import (
	"context"
	"fmt"

	"munasabat-backend/internal/status"
	"munasabat-backend/internal/storage"
	"munasabat-backend/models"
)

type BundleService struct {
	store *storage.Store
}

func NewBundleService(store *storage.Store) *BundleService {
	return &BundleService{store: store}
}

func (s *BundleService) GetBundles(ctx context.Context) ([]models.Bundle, error) {
	bundles := []models.Bundle{}
	if err := s.store.ReadJSON(ctx, storage.KeyBundles, &bundles); err != nil {
		return nil, err
	}
	return bundles, nil
}

func (s *BundleService) GetBundleByID(ctx context.Context, id string) (models.Bundle, error) {
	bundles, err := s.GetBundles(ctx)
	if err != nil {
		return models.Bundle{}, err
	}
	for _, b := range bundles {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Bundle{}, fmt.Errorf("bundle %s: %w", id, status.ErrNotFound)
}

func (s *BundleService) GetBundlesByOccasion(ctx context.Context, occasion models.EventType) ([]models.Bundle, error) {
	bundles, err := s.GetBundles(ctx)
	if err != nil {
		return nil, err
	}

	matched := []models.Bundle{}
	for _, b := range bundles {
		if b.OccasionType == occasion {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

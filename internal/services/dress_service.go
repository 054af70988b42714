package services

import (
	"context"
	"fmt"

	"munasabat-backend/internal/status"
	"munasabat-backend/internal/storage"
	"munasabat-backend/models"
)

type DressService struct {
	store *storage.Store
}

func NewDressService(store *storage.Store) *DressService {
	return &DressService{store: store}
}

func (s *DressService) GetDresses(ctx context.Context) ([]models.Dress, error) {
	dresses := []models.Dress{}
	if err := s.store.ReadJSON(ctx, storage.KeyDresses, &dresses); err != nil {
		return nil, err
	}
	return dresses, nil
}

func (s *DressService) GetDressByID(ctx context.Context, id string) (models.Dress, error) {
	dresses, err := s.GetDresses(ctx)
	if err != nil {
		return models.Dress{}, err
	}
	for _, d := range dresses {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Dress{}, fmt.Errorf("dress %s: %w", id, status.ErrNotFound)
}

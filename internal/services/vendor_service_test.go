package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"munasabat-backend/internal/status"
	"munasabat-backend/models"
)

func TestVendorService_GetVendors(t *testing.T) {
	service := NewVendorService(setupSeededStore(t))

	vendors, err := service.GetVendors(context.Background())
	require.NoError(t, err)
	require.Len(t, vendors, 8)
	assert.Equal(t, "v1", vendors[0].ID)
	assert.Equal(t, "قاعة ليالي", vendors[0].Name)
}

func TestVendorService_GetVendorByID_NotFound(t *testing.T) {
	service := NewVendorService(setupSeededStore(t))

	_, err := service.GetVendorByID(context.Background(), "v999")
	assert.ErrorIs(t, err, status.ErrNotFound)
}

func TestVendorService_GetSuggestions_KeepsCollectionOrder(t *testing.T) {
	service := NewVendorService(setupSeededStore(t))

	// The birthday index is curated as v6, v5, v4 but results come back in
	// vendor collection order.
	suggestions, err := service.GetSuggestions(context.Background(), models.EventBirthday)
	require.NoError(t, err)
	require.Len(t, suggestions, 3)
	assert.Equal(t, "v4", suggestions[0].ID)
	assert.Equal(t, "v5", suggestions[1].ID)
	assert.Equal(t, "v6", suggestions[2].ID)
}

func TestVendorService_GetSuggestions_SkipsUnresolvedIDs(t *testing.T) {
	service := NewVendorService(setupSeededStore(t))

	// The wedding index references d10 from the dress catalog; it must not
	// appear in the vendor results.
	suggestions, err := service.GetSuggestions(context.Background(), models.EventWedding)
	require.NoError(t, err)
	require.Len(t, suggestions, 5)
	for _, v := range suggestions {
		assert.NotEqual(t, "d10", v.ID)
	}
}

func TestVendorService_GetSuggestions_UnknownType(t *testing.T) {
	service := NewVendorService(setupSeededStore(t))

	suggestions, err := service.GetSuggestions(context.Background(), models.EventType("festival"))
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"munasabat-backend/internal/services"
	"munasabat-backend/models"
)

// CatalogHandler serves the dress and bundle catalogs.
type CatalogHandler struct {
	app           *pocketbase.PocketBase
	dressService  *services.DressService
	bundleService *services.BundleService
}

func NewCatalogHandler(app *pocketbase.PocketBase, dressService *services.DressService, bundleService *services.BundleService) *CatalogHandler {
	return &CatalogHandler{
		app:           app,
		dressService:  dressService,
		bundleService: bundleService,
	}
}

// GetDresses - List all dresses
func (h *CatalogHandler) GetDresses(e *core.RequestEvent) error {
	dresses, err := h.dressService.GetDresses(e.Request.Context())
	if err != nil {
		return apis.NewBadRequestError("Failed to load dresses", err)
	}
	return e.JSON(http.StatusOK, dresses)
}

// GetDress - Get a single dress by id
func (h *CatalogHandler) GetDress(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")

	dress, err := h.dressService.GetDressByID(e.Request.Context(), id)
	if err != nil {
		return notFoundOr(err, "Dress not found")
	}
	return e.JSON(http.StatusOK, dress)
}

// GetBundles - List bundles, optionally filtered by occasion type
func (h *CatalogHandler) GetBundles(e *core.RequestEvent) error {
	ctx := e.Request.Context()

	if occasion := e.Request.URL.Query().Get("occasion"); occasion != "" {
		bundles, err := h.bundleService.GetBundlesByOccasion(ctx, models.EventType(occasion))
		if err != nil {
			return apis.NewBadRequestError("Failed to load bundles", err)
		}
		return e.JSON(http.StatusOK, bundles)
	}

	bundles, err := h.bundleService.GetBundles(ctx)
	if err != nil {
		return apis.NewBadRequestError("Failed to load bundles", err)
	}
	return e.JSON(http.StatusOK, bundles)
}

// GetBundle - Get a single bundle by id
func (h *CatalogHandler) GetBundle(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")

	bundle, err := h.bundleService.GetBundleByID(e.Request.Context(), id)
	if err != nil {
		return notFoundOr(err, "Bundle not found")
	}
	return e.JSON(http.StatusOK, bundle)
}

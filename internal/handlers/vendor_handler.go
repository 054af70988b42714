package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"munasabat-backend/internal/services"
	"munasabat-backend/models"
)

type VendorHandler struct {
	app           *pocketbase.PocketBase
	vendorService *services.VendorService
}

func NewVendorHandler(app *pocketbase.PocketBase, vendorService *services.VendorService) *VendorHandler {
	return &VendorHandler{
		app:           app,
		vendorService: vendorService,
	}
}

// GetVendors - List all vendors in display order
func (h *VendorHandler) GetVendors(e *core.RequestEvent) error {
	vendors, err := h.vendorService.GetVendors(e.Request.Context())
	if err != nil {
		return apis.NewBadRequestError("Failed to load vendors", err)
	}
	return e.JSON(http.StatusOK, vendors)
}

// GetVendor - Get a single vendor by id
func (h *VendorHandler) GetVendor(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")

	vendor, err := h.vendorService.GetVendorByID(e.Request.Context(), id)
	if err != nil {
		return notFoundOr(err, "Vendor not found")
	}
	return e.JSON(http.StatusOK, vendor)
}

// GetSuggestions - Curated vendors for an occasion type
func (h *VendorHandler) GetSuggestions(e *core.RequestEvent) error {
	eventType := e.Request.URL.Query().Get("type")
	if eventType == "" {
		return apis.NewBadRequestError("Event type required", nil)
	}

	suggestions, err := h.vendorService.GetSuggestions(e.Request.Context(), models.EventType(eventType))
	if err != nil {
		return apis.NewBadRequestError("Failed to load suggestions", err)
	}
	return e.JSON(http.StatusOK, suggestions)
}

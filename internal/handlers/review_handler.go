package handlers

import (
	"errors"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"munasabat-backend/internal/services"
	"munasabat-backend/internal/status"
	"munasabat-backend/models"
	"munasabat-backend/monitoring"
)

type ReviewHandler struct {
	app           *pocketbase.PocketBase
	reviewService *services.ReviewService
}

func NewReviewHandler(app *pocketbase.PocketBase, reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		app:           app,
		reviewService: reviewService,
	}
}

// AddReview - Submit a review for a vendor, dress or bundle
func (h *ReviewHandler) AddReview(e *core.RequestEvent) error {
	var req struct {
		TargetID   string `json:"target_id"`
		TargetType string `json:"target_type"`
		UserName   string `json:"user_name"`
		Rating     int    `json:"rating"`
		Comment    string `json:"comment"`
	}
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	target := services.ReviewTarget(req.TargetType)
	switch target {
	case services.TargetVendor, services.TargetDress, services.TargetBundle:
	default:
		return apis.NewBadRequestError("Invalid review target type", nil)
	}

	review := models.Review{
		UserName: req.UserName,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	stored, err := h.reviewService.AddReview(e.Request.Context(), req.TargetID, review, target)
	if err != nil {
		monitoring.TrackReview(req.TargetType, "error")
		if errors.Is(err, status.ErrInvalidRating) {
			return apis.NewBadRequestError("Rating must be between 1 and 5", err)
		}
		return notFoundOr(err, "Review target not found")
	}

	monitoring.TrackReview(req.TargetType, "ok")
	return e.JSON(http.StatusOK, stored)
}

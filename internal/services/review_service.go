package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"munasabat-backend/internal/status"
	"munasabat-backend/internal/storage"
	"munasabat-backend/models"
	"munasabat-backend/utils"
)

type ReviewTarget string

const (
	TargetVendor ReviewTarget = "vendor"
	TargetDress  ReviewTarget = "dress"
	TargetBundle ReviewTarget = "package"
)

type ReviewService struct {
	store *storage.Store
}

func NewReviewService(store *storage.Store) *ReviewService {
	return &ReviewService{store: store}
}

// AddReview prepends the review to the target's review list (most recent
// first) and, for vendors and bundles, recomputes the rating aggregates in
// the same write. Dresses keep their reviews without aggregate fields; that
// asymmetry is inherited behavior, not an oversight here. An unknown target
// id returns ErrNotFound and leaves the collection untouched.
func (s *ReviewService) AddReview(ctx context.Context, targetID string, review models.Review, target ReviewTarget) (models.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return models.Review{}, status.ErrInvalidRating
	}
	if review.ID == "" {
		review.ID = utils.NewID("r")
	}
	if review.Date == "" {
		review.Date = time.Now().Format("2006-01-02")
	}

	var err error
	switch target {
	case TargetVendor:
		err = s.addVendorReview(ctx, targetID, review)
	case TargetDress:
		err = s.addDressReview(ctx, targetID, review)
	case TargetBundle:
		err = s.addBundleReview(ctx, targetID, review)
	default:
		err = fmt.Errorf("review target %q: %w", target, status.ErrNotFound)
	}
	if err != nil {
		return models.Review{}, err
	}
	return review, nil
}

func (s *ReviewService) addVendorReview(ctx context.Context, targetID string, review models.Review) error {
	return s.store.WithLock(storage.KeyVendors, func() error {
		vendors := []models.Vendor{}
		if err := s.store.ReadJSON(ctx, storage.KeyVendors, &vendors); err != nil {
			return err
		}

		for i := range vendors {
			if vendors[i].ID == targetID {
				vendors[i].Reviews = prepend(vendors[i].Reviews, review)
				vendors[i].RatingAverage, vendors[i].RatingCount = ratingAggregate(vendors[i].Reviews)
				return s.store.WriteJSON(ctx, storage.KeyVendors, vendors)
			}
		}
		return fmt.Errorf("vendor %s: %w", targetID, status.ErrNotFound)
	})
}

func (s *ReviewService) addDressReview(ctx context.Context, targetID string, review models.Review) error {
	return s.store.WithLock(storage.KeyDresses, func() error {
		dresses := []models.Dress{}
		if err := s.store.ReadJSON(ctx, storage.KeyDresses, &dresses); err != nil {
			return err
		}

		for i := range dresses {
			if dresses[i].ID == targetID {
				// No aggregate recompute for dresses.
				dresses[i].Reviews = prepend(dresses[i].Reviews, review)
				return s.store.WriteJSON(ctx, storage.KeyDresses, dresses)
			}
		}
		return fmt.Errorf("dress %s: %w", targetID, status.ErrNotFound)
	})
}

func (s *ReviewService) addBundleReview(ctx context.Context, targetID string, review models.Review) error {
	return s.store.WithLock(storage.KeyBundles, func() error {
		bundles := []models.Bundle{}
		if err := s.store.ReadJSON(ctx, storage.KeyBundles, &bundles); err != nil {
			return err
		}

		for i := range bundles {
			if bundles[i].ID == targetID {
				bundles[i].Reviews = prepend(bundles[i].Reviews, review)
				bundles[i].RatingAverage, bundles[i].RatingCount = ratingAggregate(bundles[i].Reviews)
				return s.store.WriteJSON(ctx, storage.KeyBundles, bundles)
			}
		}
		return fmt.Errorf("bundle %s: %w", targetID, status.ErrNotFound)
	})
}

func prepend(reviews []models.Review, review models.Review) []models.Review {
	return append([]models.Review{review}, reviews...)
}

// ratingAggregate recomputes (average, count) over the full review list. The
// average is the mean rating rounded half-up to one decimal.
func ratingAggregate(reviews []models.Review) (float64, int) {
	count := len(reviews)
	if count == 0 {
		return 0, 0
	}

	var sum int64
	for _, r := range reviews {
		sum += int64(r.Rating)
	}

	avg := decimal.NewFromInt(sum).
		Div(decimal.NewFromInt(int64(count))).
		Round(1)
	value, _ := avg.Float64()
	return value, count
}

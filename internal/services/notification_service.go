package services

import (
	"context"
	"fmt"
	"time"

	"munasabat-backend/internal/status"
	"munasabat-backend/internal/storage"
	"munasabat-backend/models"
	"munasabat-backend/utils"
)

type NotificationService struct {
	store *storage.Store
}

func NewNotificationService(store *storage.Store) *NotificationService {
	return &NotificationService{store: store}
}

// GetNotifications returns the feed, most recent first. The first read seeds
// the demo notifications; a corrupted key falls back to them without a write.
func (s *NotificationService) GetNotifications(ctx context.Context) ([]models.NotificationItem, error) {
	exists, err := s.store.KV().Exists(ctx, storage.KeyNotifications)
	if err != nil {
		return nil, fmt.Errorf("notifications: %w", err)
	}
	if !exists {
		seed := storage.SeedNotifications()
		if err := s.store.WriteJSON(ctx, storage.KeyNotifications, seed); err != nil {
			return nil, err
		}
		return seed, nil
	}

	items := storage.SeedNotifications()
	if err := s.store.ReadJSON(ctx, storage.KeyNotifications, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context) (int, error) {
	items, err := s.GetNotifications(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range items {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id string) error {
	return s.store.WithLock(storage.KeyNotifications, func() error {
		items, err := s.GetNotifications(ctx)
		if err != nil {
			return err
		}

		for i := range items {
			if items[i].ID == id {
				items[i].Read = true
				return s.store.WriteJSON(ctx, storage.KeyNotifications, items)
			}
		}
		return fmt.Errorf("notification %s: %w", id, status.ErrNotFound)
	})
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context) error {
	return s.store.WithLock(storage.KeyNotifications, func() error {
		items, err := s.GetNotifications(ctx)
		if err != nil {
			return err
		}

		for i := range items {
			items[i].Read = true
		}
		return s.store.WriteJSON(ctx, storage.KeyNotifications, items)
	})
}

func (s *NotificationService) Delete(ctx context.Context, id string) error {
	return s.store.WithLock(storage.KeyNotifications, func() error {
		items, err := s.GetNotifications(ctx)
		if err != nil {
			return err
		}

		kept := items[:0]
		found := false
		for _, n := range items {
			if n.ID == id {
				found = true
				continue
			}
			kept = append(kept, n)
		}
		if !found {
			return fmt.Errorf("notification %s: %w", id, status.ErrNotFound)
		}
		return s.store.WriteJSON(ctx, storage.KeyNotifications, kept)
	})
}

// Add prepends a notification to the feed and returns it with its assigned
// id and timestamp.
func (s *NotificationService) Add(ctx context.Context, item models.NotificationItem) (models.NotificationItem, error) {
	if item.ID == "" {
		item.ID = utils.NewID("n")
	}
	if item.CreatedAt == "" {
		item.CreatedAt = time.Now().Format(time.RFC3339)
	}
	if item.Kind == "" {
		item.Kind = models.NotificationGeneral
	}
	if item.Category == "" {
		item.Category = models.EventOther
	}

	err := s.store.WithLock(storage.KeyNotifications, func() error {
		items, err := s.GetNotifications(ctx)
		if err != nil {
			return err
		}
		items = append([]models.NotificationItem{item}, items...)
		return s.store.WriteJSON(ctx, storage.KeyNotifications, items)
	})
	if err != nil {
		return models.NotificationItem{}, err
	}
	return item, nil
}

// AddSimple records a plain text notification, the shortcut the UI uses.
func (s *NotificationService) AddSimple(ctx context.Context, text string) (models.NotificationItem, error) {
	return s.Add(ctx, models.NotificationItem{
		Kind:     models.NotificationGeneral,
		Title:    "إشعار جديد",
		Message:  text,
		Category: models.EventOther,
	})
}

func (s *NotificationService) GetSettings(ctx context.Context) (models.NotificationSettings, error) {
	settings := models.DefaultNotificationSettings()
	if err := s.store.ReadJSON(ctx, storage.KeyNotificationSettings, &settings); err != nil {
		return models.NotificationSettings{}, err
	}
	return settings, nil
}

func (s *NotificationService) SaveSettings(ctx context.Context, settings models.NotificationSettings) error {
	return s.store.WithLock(storage.KeyNotificationSettings, func() error {
		return s.store.WriteJSON(ctx, storage.KeyNotificationSettings, settings)
	})
}

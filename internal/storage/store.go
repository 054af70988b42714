package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// SchemaVersion is the tag the store expects under the version key. Bumping
// it wipes the whole store and reseeds the demo dataset on next start.
const SchemaVersion = "v5"

// Persisted collection and record keys.
const (
	KeySchemaVersion        = "schema_version"
	KeyVendors              = "vendors"
	KeyEvents               = "events"
	KeyDresses              = "dresses"
	KeyBundles              = "packages"
	KeyCurrentUser          = "current_user"
	KeyNotifications        = "notifications"
	KeyNotificationSettings = "notification_settings"
	KeySiteSettings         = "site_settings"
)

// Store layers schema-versioned JSON collections on top of a KV backend.
// Every collection write goes through a per-key mutex so the whole
// read-modify-write cycle is serialized; without it two updates to the same
// collection could clobber each other.
type Store struct {
	kv KV

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(kv KV) *Store {
	return &Store{
		kv:    kv,
		locks: make(map[string]*sync.Mutex),
	}
}

// KV exposes the backend for callers that need raw key access, such as the
// login rate limiter and health checks.
func (s *Store) KV() KV {
	return s.kv
}

func (s *Store) keyLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

// WithLock runs fn while holding the write lock for key. Read-modify-write
// updates of a collection must happen inside fn.
func (s *Store) WithLock(key string, fn func() error) error {
	lock := s.keyLock(key)
	lock.Lock()
	defer lock.Unlock()
	return fn()
}

// ReadJSON unmarshals the value under key into dest. A missing key or
// corrupted payload leaves dest at its fallback value: corruption is logged
// and swallowed, never surfaced to callers.
func (s *Store) ReadJSON(ctx context.Context, key string, dest any) error {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyMissing) {
			return nil
		}
		return fmt.Errorf("storage: read %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		slog.Warn("corrupted value, falling back to default", "key", key, "error", err)
	}
	return nil
}

// WriteJSON marshals v and stores it under key.
func (s *Store) WriteJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: marshal %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("storage: write %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.kv.Delete(ctx, key)
}

// EnsureInitialized checks the stored schema version. On a mismatch (or first
// run) it wipes the store and writes the version marker plus every seed
// collection. On a match it only restores individually missing collection
// keys and never touches existing data.
func (s *Store) EnsureInitialized(ctx context.Context) error {
	version, err := s.kv.Get(ctx, KeySchemaVersion)
	if err != nil && !errors.Is(err, ErrKeyMissing) {
		return fmt.Errorf("storage: read schema version: %w", err)
	}

	if version != SchemaVersion {
		slog.Info("schema version mismatch, reseeding store",
			"stored", version, "running", SchemaVersion)
		return s.reseed(ctx)
	}

	// Restore any collection key that was individually deleted.
	for key, seed := range seedCollections() {
		exists, err := s.kv.Exists(ctx, key)
		if err != nil {
			return fmt.Errorf("storage: check %s: %w", key, err)
		}
		if !exists {
			slog.Warn("collection key missing, restoring seed data", "key", key)
			if err := s.WriteJSON(ctx, key, seed); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Store) reseed(ctx context.Context) error {
	if err := s.kv.Clear(ctx); err != nil {
		return fmt.Errorf("storage: clear: %w", err)
	}
	if err := s.kv.Set(ctx, KeySchemaVersion, SchemaVersion); err != nil {
		return fmt.Errorf("storage: write schema version: %w", err)
	}
	for key, seed := range seedCollections() {
		if err := s.WriteJSON(ctx, key, seed); err != nil {
			return err
		}
	}
	return nil
}

func seedCollections() map[string]any {
	return map[string]any{
		KeyVendors: SeedVendors(),
		KeyEvents:  SeedEvents(),
		KeyDresses: SeedDresses(),
		KeyBundles: SeedBundles(),
	}
}

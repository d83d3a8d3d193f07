package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Store is the durable local fallback mirror: a process-external mapping from
// a logical collection name to its serialized record set. Reads always decode
// fresh bytes, so callers get defensive copies for free.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Exists(ctx context.Context, key string) (bool, error)

	// Update atomically transforms the value at key. fn receives the current
	// serialized value (nil if the key is absent) and returns the replacement;
	// no concurrent Update on the same key may interleave with the
	// read-transform-write. An error from fn aborts without writing.
	Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error

	Close() error
}

// ErrNotFound is returned by Read when a key has never been written.
var ErrNotFound = errors.New("collection not found")

// SchemaVersion namespaces every mirror key. Bump it when the serialized
// layout changes incompatibly; old keys are then simply orphaned and the
// collection reseeds under the new namespace.
const SchemaVersion = "v1"

const keyPrefix = "quickshow"

const (
	CollectionMovies   = "movies"
	CollectionTheaters = "theaters"
	CollectionShows    = "shows"
	CollectionBookings = "bookings"
)

// Key builds the namespaced, versioned storage key for a collection.
func Key(collection string) string {
	return keyPrefix + ":" + SchemaVersion + ":" + collection
}

// Load decodes a collection from the mirror, seeding it with the fixture
// dataset on first access.
func Load[T any](ctx context.Context, s Store, collection string) ([]T, error) {
	if err := ensureSeeded(ctx, s, collection); err != nil {
		return nil, err
	}

	raw, err := s.Read(ctx, Key(collection))
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", collection, err)
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode collection %s: %w", collection, err)
	}

	return records, nil
}

// Save serializes and persists the whole record set of a collection.
func Save[T any](ctx context.Context, s Store, collection string, records []T) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", collection, err)
	}

	if err := s.Write(ctx, Key(collection), raw); err != nil {
		return fmt.Errorf("write collection %s: %w", collection, err)
	}

	return nil
}

// Mutate runs a check-and-modify on a whole collection inside the store's
// atomic write path. The seat-overlap check lives in such a transform, so a
// conflicting concurrent create can never commit.
func Mutate[T any](ctx context.Context, s Store, collection string, fn func(records []T) ([]T, error)) error {
	if err := ensureSeeded(ctx, s, collection); err != nil {
		return err
	}

	return s.Update(ctx, Key(collection), func(current []byte) ([]byte, error) {
		var records []T
		if current != nil {
			if err := json.Unmarshal(current, &records); err != nil {
				return nil, fmt.Errorf("decode collection %s: %w", collection, err)
			}
		}

		updated, err := fn(records)
		if err != nil {
			return nil, err
		}

		raw, err := json.Marshal(updated)
		if err != nil {
			return nil, fmt.Errorf("encode collection %s: %w", collection, err)
		}
		return raw, nil
	})
}

// ensureSeeded writes the deterministic seed dataset the first time a
// collection is touched. Subsequent calls are no-ops, so locally written
// mutations are never clobbered.
func ensureSeeded(ctx context.Context, s Store, collection string) error {
	exists, err := s.Exists(ctx, Key(collection))
	if err != nil {
		return fmt.Errorf("check collection %s: %w", collection, err)
	}
	if exists {
		return nil
	}

	seed, ok := seedDataset(collection)
	if !ok {
		return fmt.Errorf("no seed dataset for collection %s", collection)
	}

	raw, err := json.Marshal(seed)
	if err != nil {
		return fmt.Errorf("encode seed for %s: %w", collection, err)
	}

	return s.Write(ctx, Key(collection), raw)
}

package database

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/orbya/portfolio-backend/errs"
)

// Primary is the database-backed side of a fallback store. Records are
// keyed by their domain `id` field, not by the driver's object id.
type Primary[ID comparable, T any] interface {
	List(ctx context.Context) ([]T, error)
	Find(ctx context.Context, id ID) (T, bool, error)
	Insert(ctx context.Context, record T) error
	Replace(ctx context.Context, id ID, record T) (bool, error)
	Delete(ctx context.Context, id ID) (bool, error)
	// Reset clears the collection and bulk-inserts the given records.
	Reset(ctx context.Context, records []T) error
}

// Store layers a read-only JSON seed underneath a Primary. Reads go to
// the primary first and fall back to the seed only when the primary
// collection is empty (or, for Get, has no matching record). Writes always
// target the primary; the seed is touched by nothing except an explicit
// Sync. A populated-then-emptied collection is indistinguishable from one
// that was never seeded and will re-read the seed until a write or a Sync
// happens.
type Store[ID comparable, T any] struct {
	name    string
	primary Primary[ID, T]
	seed    *Seed[T]
	idOf    func(T) ID
	logger  zerolog.Logger
}

func NewStore[ID comparable, T any](name string, primary Primary[ID, T], seed *Seed[T], idOf func(T) ID) *Store[ID, T] {
	return &Store[ID, T]{
		name:    name,
		primary: primary,
		seed:    seed,
		idOf:    idOf,
		logger:  log.With().Str("collection", name).Logger(),
	}
}

// Name returns the collection name, shared by the database collection and
// the seed file.
func (s *Store[ID, T]) Name() string {
	return s.name
}

// List returns every record from the primary, or the seed contents when
// the primary collection is empty. The result is never nil.
func (s *Store[ID, T]) List(ctx context.Context) ([]T, error) {
	records, err := s.primary.List(ctx)
	if err != nil {
		return nil, errs.NewStorageError("list", s.name, err)
	}

	if len(records) == 0 {
		seeded, present, err := s.seed.Load()
		if err != nil {
			return nil, errs.NewSeedError(s.name, err)
		}
		if present {
			s.logger.Debug().Int("records", len(seeded)).Msg("primary empty, serving seed file")
			records = seeded
		}
	}

	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Get looks a record up in the primary, then in the seed file.
func (s *Store[ID, T]) Get(ctx context.Context, id ID) (T, bool, error) {
	record, found, err := s.primary.Find(ctx, id)
	if err != nil {
		var zero T
		return zero, false, errs.NewStorageError("get", s.name, err)
	}
	if found {
		return record, true, nil
	}

	seeded, present, err := s.seed.Load()
	if err != nil {
		var zero T
		return zero, false, errs.NewSeedError(s.name, err)
	}
	if present {
		for _, candidate := range seeded {
			if s.idOf(candidate) == id {
				return candidate, true, nil
			}
		}
	}

	var zero T
	return zero, false, nil
}

// Insert writes a new record to the primary.
func (s *Store[ID, T]) Insert(ctx context.Context, record T) error {
	if err := s.primary.Insert(ctx, record); err != nil {
		return errs.NewStorageError("insert", s.name, err)
	}
	return nil
}

// Replace overwrites the primary record with the given id. Returns false
// when the primary holds no such record; seeded-but-unsynced records are
// not replaceable.
func (s *Store[ID, T]) Replace(ctx context.Context, id ID, record T) (bool, error) {
	existed, err := s.primary.Replace(ctx, id, record)
	if err != nil {
		return false, errs.NewStorageError("replace", s.name, err)
	}
	return existed, nil
}

// Delete removes the primary record with the given id, reporting whether
// anything was removed.
func (s *Store[ID, T]) Delete(ctx context.Context, id ID) (bool, error) {
	existed, err := s.primary.Delete(ctx, id)
	if err != nil {
		return false, errs.NewStorageError("delete", s.name, err)
	}
	return existed, nil
}

// Sync performs the explicit cold-start transition: the primary collection
// is cleared and the seed file's contents are bulk-inserted. An unreadable
// or missing seed aborts the whole operation, nothing is partially applied.
func (s *Store[ID, T]) Sync(ctx context.Context) (int, error) {
	records, present, err := s.seed.Load()
	if err != nil {
		return 0, errs.NewSeedError(s.name, err)
	}
	if !present {
		return 0, errs.NewNotFound(s.name + " seed file")
	}

	if err := s.primary.Reset(ctx, records); err != nil {
		return 0, errs.NewStorageError("sync", s.name, err)
	}

	s.logger.Info().Int("records", len(records)).Msg("synced seed file to database")
	return len(records), nil
}

// NextID allocates the next integer id for a collection by scanning the
// authoritative source (primary when non-empty, seed otherwise): highest
// existing id plus one, starting at 1. Two concurrent creates can observe
// the same maximum and collide; acceptable under single-admin usage.
func NextID[T any](ctx context.Context, s *Store[int, T]) (int, error) {
	records, err := s.List(ctx)
	if err != nil {
		return 0, err
	}

	maxID := 0
	for _, record := range records {
		if id := s.idOf(record); id > maxID {
			maxID = id
		}
	}
	return maxID + 1, nil
}

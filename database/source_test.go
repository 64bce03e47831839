package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbya/portfolio-backend/models"
)

func writeSeedFile(t *testing.T, dataDir, collection, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, collection+".json"), []byte(contents), 0o644))
}

func newSkillStore(t *testing.T, dataDir string) *Store[int, models.Skill] {
	t.Helper()
	idOf := func(s models.Skill) int { return s.ID }
	return NewStore("skills", NewMemoryPrimary(idOf), NewSeed[models.Skill](dataDir, "skills"), idOf)
}

func TestStoreListFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("serves seed while primary is empty", func(t *testing.T) {
		dataDir := t.TempDir()
		writeSeedFile(t, dataDir, "skills", `[{"id": 1, "name": "Compositing", "level": 90, "category": "motion"}]`)
		store := newSkillStore(t, dataDir)

		records, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Compositing", records[0].Name)
	})

	t.Run("primary wins once written", func(t *testing.T) {
		dataDir := t.TempDir()
		writeSeedFile(t, dataDir, "skills", `[{"id": 1, "name": "Compositing", "level": 90, "category": "motion"}]`)
		store := newSkillStore(t, dataDir)

		require.NoError(t, store.Insert(ctx, models.Skill{ID: 5, Name: "Rigging", Level: 60, Category: "3d"}))

		records, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Rigging", records[0].Name)
	})

	t.Run("no seed file and empty primary", func(t *testing.T) {
		store := newSkillStore(t, t.TempDir())

		records, err := store.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("unparseable seed file", func(t *testing.T) {
		dataDir := t.TempDir()
		writeSeedFile(t, dataDir, "skills", `{"not": "a list"}`)
		store := newSkillStore(t, dataDir)

		_, err := store.List(ctx)
		assert.Error(t, err)
	})
}

func TestStoreGet(t *testing.T) {
	ctx := context.Background()
	dataDir := t.TempDir()
	writeSeedFile(t, dataDir, "skills", `[{"id": 2, "name": "Color Grading", "level": 75, "category": "post"}]`)
	store := newSkillStore(t, dataDir)

	t.Run("falls back to seed", func(t *testing.T) {
		record, found, err := store.Get(ctx, 2)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "Color Grading", record.Name)
	})

	t.Run("prefers the primary record", func(t *testing.T) {
		require.NoError(t, store.Insert(ctx, models.Skill{ID: 2, Name: "Grading v2", Level: 80, Category: "post"}))

		record, found, err := store.Get(ctx, 2)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "Grading v2", record.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, found, err := store.Get(ctx, 99)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestStoreReplaceAndDelete(t *testing.T) {
	ctx := context.Background()
	dataDir := t.TempDir()
	writeSeedFile(t, dataDir, "skills", `[{"id": 1, "name": "Compositing", "level": 90, "category": "motion"}]`)
	store := newSkillStore(t, dataDir)

	t.Run("seeded records are not replaceable until synced", func(t *testing.T) {
		existed, err := store.Replace(ctx, 1, models.Skill{ID: 1, Name: "Compositing", Level: 95, Category: "motion"})
		require.NoError(t, err)
		assert.False(t, existed)
	})

	t.Run("replace and delete primary records", func(t *testing.T) {
		require.NoError(t, store.Insert(ctx, models.Skill{ID: 3, Name: "Tracking", Level: 50, Category: "motion"}))

		existed, err := store.Replace(ctx, 3, models.Skill{ID: 3, Name: "Tracking", Level: 70, Category: "motion"})
		require.NoError(t, err)
		assert.True(t, existed)

		record, found, err := store.Get(ctx, 3)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 70, record.Level)

		existed, err = store.Delete(ctx, 3)
		require.NoError(t, err)
		assert.True(t, existed)

		existed, err = store.Delete(ctx, 3)
		require.NoError(t, err)
		assert.False(t, existed)
	})
}

func TestStoreSync(t *testing.T) {
	ctx := context.Background()

	t.Run("loads the seed into the primary", func(t *testing.T) {
		dataDir := t.TempDir()
		writeSeedFile(t, dataDir, "skills", `[
			{"id": 1, "name": "Compositing", "level": 90, "category": "motion"},
			{"id": 2, "name": "Color Grading", "level": 75, "category": "post"}
		]`)
		store := newSkillStore(t, dataDir)

		count, err := store.Sync(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		// Synced records live in the primary now, so they can be replaced.
		existed, err := store.Replace(ctx, 1, models.Skill{ID: 1, Name: "Compositing", Level: 99, Category: "motion"})
		require.NoError(t, err)
		assert.True(t, existed)
	})

	t.Run("replaces earlier primary contents", func(t *testing.T) {
		dataDir := t.TempDir()
		writeSeedFile(t, dataDir, "skills", `[{"id": 1, "name": "Compositing", "level": 90, "category": "motion"}]`)
		store := newSkillStore(t, dataDir)

		require.NoError(t, store.Insert(ctx, models.Skill{ID: 42, Name: "Stale", Level: 10, Category: "misc"}))

		_, err := store.Sync(ctx)
		require.NoError(t, err)

		records, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 1, records[0].ID)
	})

	t.Run("missing seed file aborts", func(t *testing.T) {
		store := newSkillStore(t, t.TempDir())

		_, err := store.Sync(ctx)
		assert.Error(t, err)
	})
}

func TestNextID(t *testing.T) {
	ctx := context.Background()

	t.Run("highest seed id plus one", func(t *testing.T) {
		dataDir := t.TempDir()
		writeSeedFile(t, dataDir, "skills", `[
			{"id": 3, "name": "a", "level": 1, "category": "x"},
			{"id": 7, "name": "b", "level": 1, "category": "x"},
			{"id": 1, "name": "c", "level": 1, "category": "x"}
		]`)
		store := newSkillStore(t, dataDir)

		id, err := NextID(ctx, store)
		require.NoError(t, err)
		assert.Equal(t, 8, id)
	})

	t.Run("starts at one", func(t *testing.T) {
		store := newSkillStore(t, t.TempDir())

		id, err := NextID(ctx, store)
		require.NoError(t, err)
		assert.Equal(t, 1, id)
	})

	t.Run("follows the primary once written", func(t *testing.T) {
		store := newSkillStore(t, t.TempDir())
		require.NoError(t, store.Insert(ctx, models.Skill{ID: 12, Name: "a", Level: 1, Category: "x"}))

		id, err := NextID(ctx, store)
		require.NoError(t, err)
		assert.Equal(t, 13, id)
	})
}

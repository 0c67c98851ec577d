package store_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/termfab/internal/geometry"
	"github.com/bnema/termfab/internal/logging"
	"github.com/bnema/termfab/internal/store"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := testCtx()

	db, err := store.Open(ctx, filepath.Join(t.TempDir(), "termfab.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestPositionRepository_RoundTrip(t *testing.T) {
	ctx := testCtx()
	repo := store.NewPositionRepository(openTestDB(t))

	p := geometry.Point{X: 42, Y: 17}
	require.NoError(t, repo.Save(ctx, p))

	got, ok, err := repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p, got)
}

func TestPositionRepository_AbsentOnFreshStore(t *testing.T) {
	ctx := testCtx()
	repo := store.NewPositionRepository(openTestDB(t))

	_, ok, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPositionRepository_SaveReplacesWholeRecord(t *testing.T) {
	ctx := testCtx()
	repo := store.NewPositionRepository(openTestDB(t))

	require.NoError(t, repo.Save(ctx, geometry.Point{X: 1, Y: 2}))
	require.NoError(t, repo.Save(ctx, geometry.Point{X: 66, Y: 20}))

	got, ok, err := repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, geometry.Point{X: 66, Y: 20}, got)
}

func TestPositionRepository_MalformedPayloadReadsAsAbsent(t *testing.T) {
	ctx := testCtx()
	db := openTestDB(t)
	repo := store.NewPositionRepository(db)

	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "{{{"},
		{"wrong shape", `"bottom-right"`},
		{"missing y", `{"x": 10}`},
		{"missing x", `{"y": 10}`},
		{"non-numeric field", `{"x": "ten", "y": 5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.ExecContext(ctx, `
				INSERT INTO ui_state (key, value) VALUES ('control_position', ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value`, tt.payload)
			require.NoError(t, err)

			_, ok, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestPositionRepository_Clear(t *testing.T) {
	ctx := testCtx()
	repo := store.NewPositionRepository(openTestDB(t))

	require.NoError(t, repo.Save(ctx, geometry.Point{X: 3, Y: 4}))
	require.NoError(t, repo.Clear(ctx))

	_, ok, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing an already-empty store is fine.
	require.NoError(t, repo.Clear(ctx))
}

func TestPositionRepository_ZeroIsAValidStoredPosition(t *testing.T) {
	ctx := testCtx()
	repo := store.NewPositionRepository(openTestDB(t))

	require.NoError(t, repo.Save(ctx, geometry.Point{}))

	got, ok, err := repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, geometry.Point{}, got)
}

package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db), db
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	st := &SerializedState{
		DailyData: map[string]DayData{
			"2024-06-14": {CompletedHabitIDs: []string{"gym", "reading"}, Settled: true},
			"2024-06-15": {CompletedHabitIDs: []string{"deepwork"}},
		},
		UserPower:   1200,
		ShadowPower: 340,
		Today:       "2024-06-15",
		Viewing:     "2024-06-15",
		UserName:    "Riko",
		Achievements: map[string]bool{
			"perfect-day": true,
		},
		Team: &TeamData{
			ID:      "team_x",
			Name:    "Owls",
			Members: []MemberData{{Name: "Riko", Score: 25}},
		},
	}
	require.NoError(t, store.Save(ctx, st))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, st, got)
}

func TestStoreLoadAbsent(t *testing.T) {
	store, _ := openTestStore(t)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store, db := openTestStore(t)

	require.NoError(t, store.Save(ctx, &SerializedState{UserPower: 1}))
	require.NoError(t, store.Save(ctx, &SerializedState{UserPower: 2}))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM app_state`).Scan(&count))
	assert.Equal(t, 1, count, "saves upsert the single row")

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, got.UserPower)
}

func TestStoreLoadCorrupt(t *testing.T) {
	ctx := context.Background()
	store, db := openTestStore(t)

	_, err := db.ExecContext(ctx,
		`INSERT INTO app_state (key, data) VALUES (?, ?)`, StateKey, `{"userPower": not-json`)
	require.NoError(t, err)

	got, err := store.Load(ctx)
	assert.Nil(t, got)
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestStoreClear(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	require.NoError(t, store.Save(ctx, &SerializedState{UserPower: 9}))
	require.NoError(t, store.Clear(ctx))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

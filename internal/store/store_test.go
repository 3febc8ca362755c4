package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "again.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Blobs().Write(context.Background(), "progress", "{}"))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	got, ok, err := s2.Blobs().Read(context.Background(), "progress")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "{}", got)
}

// blobStoreContract runs the same behavioural checks against any backend.
func blobStoreContract(t *testing.T, blobs BlobStore) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		got, ok, err := blobs.Read(ctx, "absent")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, got)
	})

	t.Run("write then read", func(t *testing.T) {
		require.NoError(t, blobs.Write(ctx, "progress", `{"2024-W01":{"raiseHand":5}}`))
		got, ok, err := blobs.Read(ctx, "progress")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"2024-W01":{"raiseHand":5}}`, got)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, blobs.Write(ctx, "progress", "first"))
		require.NoError(t, blobs.Write(ctx, "progress", "second"))
		got, _, err := blobs.Read(ctx, "progress")
		require.NoError(t, err)
		assert.Equal(t, "second", got)
	})

	t.Run("keys are independent", func(t *testing.T) {
		require.NoError(t, blobs.Write(ctx, "a", "1"))
		require.NoError(t, blobs.Write(ctx, "b", "2"))
		a, _, _ := blobs.Read(ctx, "a")
		b, _, _ := blobs.Read(ctx, "b")
		assert.Equal(t, "1", a)
		assert.Equal(t, "2", b)
	})

	t.Run("empty value is stored", func(t *testing.T) {
		require.NoError(t, blobs.Write(ctx, "blank", ""))
		got, ok, err := blobs.Read(ctx, "blank")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, got)
	})
}

func TestMemoryBlobs(t *testing.T) {
	blobStoreContract(t, NewMemoryBlobs())
}

func TestSQLiteBlobs(t *testing.T) {
	blobStoreContract(t, openTestStore(t).Blobs())
}

func TestRedisBlobs(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	blobStoreContract(t, NewRedisBlobs(client, DefaultRedisPrefix))

	// Keys land under the prefix.
	got, err := mr.Get(DefaultRedisPrefix + "progress")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestRedisBlobs_ServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	blobs := NewRedisBlobs(client, DefaultRedisPrefix)

	mr.Close()

	_, _, err := blobs.Read(context.Background(), "progress")
	assert.Error(t, err)
	assert.Error(t, blobs.Write(context.Background(), "progress", "{}"))
}

func TestConnectRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := ConnectRedis(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	client.Close()

	_, err = ConnectRedis(context.Background(), "")
	assert.Error(t, err)

	_, err = ConnectRedis(context.Background(), "not a url")
	assert.Error(t, err)
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested", "custom.db")
	t.Setenv("SKILLSTARS_DB", want)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.DirExists(t, filepath.Dir(want))
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("SKILLSTARS_DB", "")
	t.Setenv("XDG_DATA_HOME", dataHome)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "skillstars", "skillstars.db"), got)
}

package cache

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"snaptikbot/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQL(t *testing.T) *SQL {
	t.Helper()
	require.NoError(t, database.Start("sqlite", filepath.Join(t.TempDir(), "videos.db")+"?_busy_timeout=5000"))
	t.Cleanup(func() {
		if sqlDB, err := database.DB.DB(); err == nil {
			sqlDB.Close()
		}
		database.DB = nil
	})
	return NewSQL()
}

func TestSQL_LookupMiss(t *testing.T) {
	c := newSQL(t)
	fileID, found, err := c.Lookup(context.Background(), "https://vm.tiktok.com/ZABC/")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, fileID)
}

func TestSQL_RememberThenLookup(t *testing.T) {
	c := newSQL(t)
	ctx := context.Background()
	require.NoError(t, c.Remember(ctx, "https://vm.tiktok.com/ZABC/", "F1"))

	fileID, found, err := c.Lookup(ctx, "https://vm.tiktok.com/ZABC/")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "F1", fileID)

	_, found, err = c.Lookup(ctx, "https://vm.tiktok.com/ZABC")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSQL_FirstWriterWins(t *testing.T) {
	c := newSQL(t)
	ctx := context.Background()
	require.NoError(t, c.Remember(ctx, "https://x.com/a/status/1/", "F1"))
	require.NoError(t, c.Remember(ctx, "https://x.com/a/status/1/", "F2"))

	fileID, found, err := c.Lookup(ctx, "https://x.com/a/status/1/")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "F1", fileID)

	var count int64
	require.NoError(t, database.DB.Table("videos").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSQL_ConcurrentRemember(t *testing.T) {
	c := newSQL(t)
	ctx := context.Background()
	var wg sync.WaitGroup
	for _, fileID := range []string{"A", "B", "C", "D"} {
		wg.Add(1)
		go func(fileID string) {
			defer wg.Done()
			assert.NoError(t, c.Remember(ctx, "https://youtube.com/shorts/abc/", fileID))
		}(fileID)
	}
	wg.Wait()

	fileID, found, err := c.Lookup(ctx, "https://youtube.com/shorts/abc/")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Contains(t, []string{"A", "B", "C", "D"}, fileID)
}

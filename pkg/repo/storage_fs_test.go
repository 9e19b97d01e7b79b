package repo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemStorage_Write(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	storage, err := NewFilesystemStorage(dir)
	require.NoError(t, err)

	err = storage.Write(ctx, "events.json", []byte(`[]`))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "events.json"))
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)
}

func TestFilesystemStorage_Write_Overwrite(t *testing.T) {
	ctx := context.Background()
	storage, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, storage.Write(ctx, "timetable.json", []byte("original")))
	require.NoError(t, storage.Write(ctx, "timetable.json", []byte("updated")))

	data, err := storage.Read(ctx, "timetable.json")
	require.NoError(t, err)
	assert.Equal(t, []byte("updated"), data)
}

func TestFilesystemStorage_CreatesBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site", "data")
	_, err := NewFilesystemStorage(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFilesystemStorage_Read_NotFound(t *testing.T) {
	storage, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.Read(context.Background(), "announcements.json")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestFilesystemStorage_RejectsEscapingKeys(t *testing.T) {
	ctx := context.Background()
	storage, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.Read(ctx, "../secrets.json")
	require.Error(t, err)
	require.Error(t, storage.Write(ctx, "/etc/passwd", []byte("x")))
}

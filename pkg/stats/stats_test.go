package stats

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilkoid/imgcli/pkg/imgerr"
)

func TestGather_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cat.png")
	data := bytes.Repeat([]byte{0xAB}, 1234)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	// Секундная точность на некоторых ФС
	now := time.Now().Add(time.Second)

	s, err := Gather(path)
	require.NoError(t, err)

	assert.Equal(t, path, s.Name)
	assert.Equal(t, uint64(len(data)), s.SizeBytes)
	assert.False(t, s.CreatedAt.IsZero())
	assert.False(t, s.ModifiedAt.IsZero())
	assert.False(t, s.CreatedAt.After(now), "created %v after now %v", s.CreatedAt, now)
	assert.False(t, s.ModifiedAt.After(now), "modified %v after now %v", s.ModifiedAt, now)
	assert.Equal(t, time.UTC, s.CreatedAt.Location())
	assert.Equal(t, time.UTC, s.ModifiedAt.Location())
}

func TestGather_ModTimeMatchesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	mtime := time.Date(2020, 5, 17, 8, 30, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, mtime, mtime))

	s, err := Gather(path)
	require.NoError(t, err)
	assert.True(t, s.ModifiedAt.Equal(mtime), "got %v", s.ModifiedAt)
}

func TestGather_NotFound(t *testing.T) {
	s, err := Gather(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, imgerr.ErrNotFound)
	assert.Equal(t, ImageStats{}, s)
}

func TestDisplay(t *testing.T) {
	s := ImageStats{
		Name:       "photos/cat.png",
		SizeBytes:  2048,
		CreatedAt:  time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC),
		ModifiedAt: time.Date(2024, 3, 10, 1, 2, 3, 0, time.FixedZone("UTC+3", 3*3600)),
	}

	var buf bytes.Buffer
	require.NoError(t, Display(&buf, s))
	out := buf.String()

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "", lines[0])
	assert.Equal(t, strings.Repeat("=", 96), lines[1])
	assert.Contains(t, lines[2], "Image Stats")
	assert.Equal(t, strings.Repeat("=", 96), lines[3])
	assert.Equal(t, "Image: photos/cat.png, Size: 2048 bytes", lines[4])
	assert.Equal(t, "Created: 2024-03-09 14:05:07 UTC", lines[5])
	// Смещение +3 приводится к UTC
	assert.Equal(t, "Modified: 2024-03-09 22:02:03 UTC", lines[6])
	assert.Equal(t, "Human size: 2.0 kB", lines[7])
	assert.Equal(t, "", lines[8])
}

func TestGather_MetadataUnavailable(t *testing.T) {
	// Обычный файл в роли директории: ENOTDIR, а не ENOENT
	file := filepath.Join(t.TempDir(), "cat.png")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	s, err := Gather(filepath.Join(file, "child.png"))
	assert.ErrorIs(t, err, imgerr.ErrMetadataUnavailable)
	assert.NotErrorIs(t, err, imgerr.ErrNotFound)
	assert.Equal(t, ImageStats{}, s)
}

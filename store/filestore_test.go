package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whitelotus.com/wms/model"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return fs
}

func TestInitializeCreatesDefaults(t *testing.T) {
	fs := newTestStore(t)
	require.NoError(t, fs.Initialize())

	for _, name := range []string{WorkersKey, AttendanceKey, TasksKey} {
		items, err := ReadCollection[model.Worker](fs, name)
		require.NoError(t, err)
		assert.Empty(t, items, name)
	}

	data, ok, err := fs.ReadBlob(SettingsKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(data), model.DefaultPasswordHash)
	assert.Contains(t, string(data), "White Lotus Corp")
}

func TestInitializeIdempotent(t *testing.T) {
	fs := newTestStore(t)
	require.NoError(t, fs.Initialize())

	workers := []model.Worker{{ID: "w1", Name: "Tanya"}}
	require.NoError(t, WriteCollection(fs, WorkersKey, workers))

	require.NoError(t, fs.Initialize())

	got, err := ReadCollection[model.Worker](fs, WorkersKey)
	require.NoError(t, err)
	assert.Len(t, got, 1, "re-initialization must not wipe existing data")
}

func TestReadMissingCollection(t *testing.T) {
	fs := newTestStore(t)

	items, err := ReadCollection[model.Task](fs, TasksKey)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestWriteReplacesWholeCollection(t *testing.T) {
	fs := newTestStore(t)

	first := []model.Task{{ID: "t1"}, {ID: "t2"}}
	require.NoError(t, WriteCollection(fs, TasksKey, first))

	second := []model.Task{{ID: "t3"}}
	require.NoError(t, WriteCollection(fs, TasksKey, second))

	got, err := ReadCollection[model.Task](fs, TasksKey)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t3", got[0].ID)
}

func TestWritePreservesOrder(t *testing.T) {
	fs := newTestStore(t)

	records := []model.AttendanceRecord{{ID: "newest"}, {ID: "middle"}, {ID: "oldest"}}
	require.NoError(t, WriteCollection(fs, AttendanceKey, records))

	got, err := ReadCollection[model.AttendanceRecord](fs, AttendanceKey)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "newest", got[0].ID)
	assert.Equal(t, "oldest", got[2].ID)
}

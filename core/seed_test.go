package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whitelotus.com/wms/model"
)

func TestSeedDemoData(t *testing.T) {
	svc := newTestService(t)

	// Pre-existing data must not survive the reseed.
	_, _, err := svc.AddWorker("Leftover", "Temp")
	require.NoError(t, err)

	tokens, err := svc.SeedDemoData()
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	workers, err := svc.ListWorkers()
	require.NoError(t, err)
	require.Len(t, workers, 4)

	names := make(map[string]bool)
	for _, w := range workers {
		names[w.Name] = true
		assert.Equal(t, model.WorkerActive, w.Status)
	}
	assert.True(t, names["Tanya McQuoid"])
	assert.False(t, names["Leftover"])

	// Every issued token authenticates its worker.
	for name, token := range tokens {
		w, err := svc.AuthenticateWorker(token)
		require.NoError(t, err, name)
		assert.Equal(t, name, w.Name)
	}

	records, err := svc.ListAttendance()
	require.NoError(t, err)
	assert.Len(t, records, 4*5, "five days of history per worker")

	tasks, err := svc.ListTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.Equal(t, model.TaskPending, task.Status)
		assert.NotEqual(t, model.UnknownAssignee, task.AssignedName)
	}

	settings, err := svc.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPasswordHash, settings.AdminPasswordHash, "reseed restores default credentials")
}

func TestSeedDemoDataRerun(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.SeedDemoData()
	require.NoError(t, err)
	second, err := svc.SeedDemoData()
	require.NoError(t, err)

	workers, err := svc.ListWorkers()
	require.NoError(t, err)
	assert.Len(t, workers, 4, "reseed replaces, never appends")

	// Fresh credentials each run.
	for name, token := range first {
		assert.NotEqual(t, token, second[name])
	}
}

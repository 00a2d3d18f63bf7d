package queue

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-storefront-backend/internal/catalog"
	"solar-storefront-backend/services"
)

func newTestProcessor(t *testing.T) *TaskProcessor {
	t.Helper()
	store := catalog.NewMemoryStore(catalog.SampleCatalog)
	knowledge := services.NewKnowledgeService(store, nil, time.Minute, nil)
	export := services.NewExportService(store, knowledge)
	return NewTaskProcessor(knowledge, export)
}

func TestNewKnowledgeRebuildTask(t *testing.T) {
	task, err := NewKnowledgeRebuildTask("admin")
	require.NoError(t, err)
	assert.Equal(t, TaskKnowledgeRebuild, task.Type())

	var payload KnowledgeRebuildPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, "admin", payload.Reason)
}

func TestNewCatalogExportTask(t *testing.T) {
	task, err := NewCatalogExportTask("scheduled")
	require.NoError(t, err)
	assert.Equal(t, TaskCatalogExport, task.Type())

	var payload CatalogExportPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, "scheduled", payload.Reason)
}

func TestProcessKnowledgeRebuild(t *testing.T) {
	processor := newTestProcessor(t)

	task, err := NewKnowledgeRebuildTask("scheduled")
	require.NoError(t, err)
	assert.NoError(t, processor.ProcessKnowledgeRebuild(context.Background(), task))
}

func TestProcessCatalogExport(t *testing.T) {
	processor := newTestProcessor(t)

	task, err := NewCatalogExportTask("scheduled")
	require.NoError(t, err)
	assert.NoError(t, processor.ProcessCatalogExport(context.Background(), task))
}

func TestProcessorsRejectMalformedPayloads(t *testing.T) {
	processor := newTestProcessor(t)

	bad := asynq.NewTask(TaskKnowledgeRebuild, []byte("{not json"))
	assert.Error(t, processor.ProcessKnowledgeRebuild(context.Background(), bad))

	bad = asynq.NewTask(TaskCatalogExport, []byte("{not json"))
	assert.Error(t, processor.ProcessCatalogExport(context.Background(), bad))
}

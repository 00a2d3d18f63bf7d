package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"solar-storefront-backend/internal/logger"
	"solar-storefront-backend/services"
)

const (
	TaskKnowledgeRebuild = "knowledge:rebuild"
	TaskCatalogExport    = "catalog:export"
)

type KnowledgeRebuildPayload struct {
	Reason string `json:"reason"`
}

type CatalogExportPayload struct {
	Reason string `json:"reason"`
}

// NewKnowledgeRebuildTask enqueues a knowledge base rebuild. Reason is
// carried for logging only ("scheduled", "admin", "catalog-change").
func NewKnowledgeRebuildTask(reason string) (*asynq.Task, error) {
	payload, err := json.Marshal(KnowledgeRebuildPayload{Reason: reason})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskKnowledgeRebuild,
		payload,
		asynq.MaxRetry(3),
		asynq.Timeout(2*time.Minute),
		asynq.Queue("default"),
	), nil
}

// NewCatalogExportTask enqueues a catalog export warm-up: the export runs
// end to end, which also pre-builds the knowledge base snapshot.
func NewCatalogExportTask(reason string) (*asynq.Task, error) {
	payload, err := json.Marshal(CatalogExportPayload{Reason: reason})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskCatalogExport,
		payload,
		asynq.MaxRetry(2),
		asynq.Timeout(2*time.Minute),
		asynq.Queue("default"),
	), nil
}

// TaskProcessor handles background tasks for the knowledge base.
type TaskProcessor struct {
	knowledge *services.KnowledgeService
	export    *services.ExportService
}

func NewTaskProcessor(knowledge *services.KnowledgeService, export *services.ExportService) *TaskProcessor {
	return &TaskProcessor{knowledge: knowledge, export: export}
}

func (p *TaskProcessor) ProcessKnowledgeRebuild(ctx context.Context, t *asynq.Task) error {
	var payload KnowledgeRebuildPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal failed: %w", asynq.SkipRetry)
	}

	logger.Info("processing knowledge base rebuild task", "reason", payload.Reason)

	snap := p.knowledge.Refresh(ctx)
	logger.Info("knowledge base rebuild task complete",
		"reason", payload.Reason,
		"snapshot_id", snap.SnapshotID,
		"chunks", len(snap.Chunks))
	return nil
}

func (p *TaskProcessor) ProcessCatalogExport(ctx context.Context, t *asynq.Task) error {
	var payload CatalogExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal failed: %w", asynq.SkipRetry)
	}

	logger.Info("processing catalog export warm-up task", "reason", payload.Reason)

	buf, err := p.export.ExportCatalog(ctx)
	if err != nil {
		return fmt.Errorf("catalog export failed: %w", err)
	}

	logger.Info("catalog export warm-up complete",
		"reason", payload.Reason,
		"bytes", buf.Len())
	return nil
}

package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/nahora-delivery/nahora/internal/media"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeMediaCleanup is the task type for removing image assets.
	TaskTypeMediaCleanup = "media:cleanup"
)

// MediaCleanupPayload names the asset to remove.
type MediaCleanupPayload struct {
	Locator string `json:"locator"`
}

// NewMediaCleanupTask constructs an Asynq task.
func NewMediaCleanupTask(locator string) (*asynq.Task, error) {
	data, err := json.Marshal(MediaCleanupPayload{Locator: locator})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeMediaCleanup, data), nil
}

// NewMediaCleanupHandler processes TaskTypeMediaCleanup tasks. Asset
// removal is best effort: failures are logged and the task is never
// retried.
func NewMediaCleanupHandler(storage media.Storage, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload MediaCleanupPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
		if err := storage.Delete(ctx, payload.Locator); err != nil {
			logger.Warn("media cleanup", slog.String("locator", payload.Locator), slog.Any("error", err))
		}
		return nil
	}
}

// Enqueuer submits media cleanup jobs to the queue.
type Enqueuer struct {
	client *asynq.Client
}

// NewEnqueuer constructs an Enqueuer around an Asynq client.
func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

// Enqueue schedules removal of one asset.
func (e *Enqueuer) Enqueue(ctx context.Context, locator string) error {
	task, err := NewMediaCleanupTask(locator)
	if err != nil {
		return err
	}
	_, err = e.client.EnqueueContext(ctx, task, asynq.Queue(QueueDefault), asynq.MaxRetry(0))
	return err
}

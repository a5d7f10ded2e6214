package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/GTDGit/fas_dashboard/internal/service"
)

// Archiver uploads a snapshot of the product collection.
type Archiver interface {
	Archive(ctx context.Context) (*service.ArchiveResult, error)
}

// ArchiveWorker archives the product workbook on a fixed interval.
type ArchiveWorker struct {
	archiver Archiver
	interval time.Duration
}

// NewArchiveWorker constructs an ArchiveWorker.
func NewArchiveWorker(archiver Archiver, interval time.Duration) *ArchiveWorker {
	return &ArchiveWorker{
		archiver: archiver,
		interval: interval,
	}
}

// Start begins the archive loop and listens for context cancellation.
func (w *ArchiveWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting archive worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Archive worker stopped")
			return
		}
	}
}

func (w *ArchiveWorker) run(ctx context.Context) {
	res, err := w.archiver.Archive(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to archive product export")
		return
	}
	log.Info().Str("location", res.Location).Int("products", res.Products).Msg("Scheduled product archive completed")
}

package service

import (
	"context"
	"log"
	"time"
)

// AuditPruner deletes audit rows past the retention window.
type AuditPruner interface {
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

// WorkerService runs periodic housekeeping in the background. Currently
// it prunes audit log rows older than the configured retention window.
type WorkerService struct {
	audit     AuditPruner
	retention time.Duration
	interval  time.Duration
}

func NewWorkerService(audit AuditPruner, retention, interval time.Duration) *WorkerService {
	return &WorkerService{
		audit:     audit,
		retention: retention,
		interval:  interval,
	}
}

// Start begins the background worker; it runs until ctx is cancelled
func (w *WorkerService) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Printf("Background worker started - pruning audit logs older than %v every %v", w.retention, w.interval)

	// Prune once at startup so a long-stopped server catches up
	w.pruneAuditLogs()

	for {
		select {
		case <-ctx.Done():
			log.Println("Background worker stopped")
			return
		case <-ticker.C:
			w.pruneAuditLogs()
		}
	}
}

func (w *WorkerService) pruneAuditLogs() {
	cutoff := time.Now().Add(-w.retention)
	deleted, err := w.audit.DeleteOlderThan(cutoff)
	if err != nil {
		log.Printf("Error pruning audit logs: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("Pruned %d audit log rows older than %v", deleted, cutoff)
	}
}

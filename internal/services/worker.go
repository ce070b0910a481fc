package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"trackrecord/cv-rater/internal/repositories"
)

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(sessionID uuid.UUID)
}

type worker struct {
	sessionRepo  repositories.SessionRepository
	raterService RaterService
	jobQueue     chan uuid.UUID
	concurrency  int
	wg           sync.WaitGroup
	stopChan     chan struct{}
}

func NewWorker(
	sessionRepo repositories.SessionRepository,
	raterService RaterService,
	concurrency int,
) Worker {
	return &worker{
		sessionRepo:  sessionRepo,
		raterService: raterService,
		jobQueue:     make(chan uuid.UUID, 100),
		concurrency:  concurrency,
		stopChan:     make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	// Poller picks up sessions that were queued but never enqueued,
	// e.g. after a restart.
	w.wg.Add(1)
	go w.pollPendingSessions(ctx)

	log.Println("✅ Worker started successfully")
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Worker stopped")
}

// EnqueueJob implements Worker.
func (w *worker) EnqueueJob(sessionID uuid.UUID) {
	select {
	case w.jobQueue <- sessionID:
		log.Printf("📥 Session %s enqueued for scoring\n", sessionID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue session %s\n", sessionID)
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()
	log.Printf("🚀 Worker %d started processing jobs\n", workerID)

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case sessionID := <-w.jobQueue:
			log.Printf("👷 Worker #%d scoring session %s\n", workerID, sessionID)
			if err := w.raterService.ScoreSession(ctx, sessionID); err != nil {
				log.Printf("❌ Worker #%d failed to score session %s: %v\n", workerID, sessionID, err)
			} else {
				log.Printf("✅ Worker #%d completed session %s\n", workerID, sessionID)
			}
		}
	}
}

func (w *worker) pollPendingSessions(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	log.Println("🔄 Starting pending sessions poller")

	for {
		select {
		case <-w.stopChan:
			log.Println("🔄 Pending sessions poller stopped")
			return
		case <-ticker.C:
			pending, err := w.sessionRepo.FindPendingSessions(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch pending sessions: %v\n", err)
				continue
			}

			if len(pending) > 0 {
				log.Printf("📋 Found %d pending sessions\n", len(pending))
			}

			for _, session := range pending {
				w.EnqueueJob(session.ID)
			}
		}
	}
}

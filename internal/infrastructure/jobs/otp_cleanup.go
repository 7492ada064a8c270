package jobs

import (
	"context"
	"log"
	"time"

	"medishare.backend/internal/domain/repositories"
)

// OtpCleanupJob deletes expired phone verification codes. The codes carry a
// ten-minute validity window; this sweep is what enforces it at rest.
type OtpCleanupJob struct {
	repo     repositories.OtpVerificationRepository
	interval time.Duration
	stop     chan struct{}
}

func NewOtpCleanupJob(repo repositories.OtpVerificationRepository, interval time.Duration) *OtpCleanupJob {
	return &OtpCleanupJob{
		repo:     repo,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *OtpCleanupJob) Start(ctx context.Context) {
	log.Println("🕐 Starting OTP cleanup job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ OTP cleanup job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ OTP cleanup job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *OtpCleanupJob) Stop() {
	close(j.stop)
}

func (j *OtpCleanupJob) sweep(ctx context.Context) {
	deleted, err := j.repo.DeleteExpired(ctx)
	if err != nil {
		log.Printf("❌ Error deleting expired OTP codes: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("✅ Deleted %d expired OTP codes", deleted)
	}
}

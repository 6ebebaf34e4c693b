package worker

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sekolahdigital/siakad-backend/internal/config"
	"github.com/sekolahdigital/siakad-backend/internal/service"
)

// AbsenceWorker marks students without a check-in as Absent once the
// daily cutoff time has passed. A Redis key guards against running the
// sweep twice for the same day across restarts.
type AbsenceWorker struct {
	attendanceService *service.AttendanceService
	rdb               *redis.Client
	cutoff            string
	log               zerolog.Logger
}

// NewAbsenceWorker creates a new AbsenceWorker. cutoff is a local
// wall-clock time in "HH:MM" form.
func NewAbsenceWorker(
	attendanceService *service.AttendanceService,
	rdb *redis.Client,
	cutoff string,
	log zerolog.Logger,
) *AbsenceWorker {
	return &AbsenceWorker{
		attendanceService: attendanceService,
		rdb:               rdb,
		cutoff:            cutoff,
		log:               log.With().Str("component", "absence_worker").Logger(),
	}
}

// Start begins the worker loop. Call in a goroutine.
func (w *AbsenceWorker) Start(ctx context.Context) {
	w.log.Info().Str("cutoff", w.cutoff).Msg("Worker started")

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			w.tick(ctx, time.Now())
		}
	}
}

func (w *AbsenceWorker) tick(ctx context.Context, now time.Time) {
	cutoff, err := time.ParseInLocation("15:04", w.cutoff, now.Location())
	if err != nil {
		w.log.Error().Err(err).Str("cutoff", w.cutoff).Msg("Invalid cutoff time")
		return
	}

	todayCutoff := time.Date(now.Year(), now.Month(), now.Day(),
		cutoff.Hour(), cutoff.Minute(), 0, 0, now.Location())
	if now.Before(todayCutoff) {
		return
	}

	// Weekends are not school days.
	if now.Weekday() == time.Saturday || now.Weekday() == time.Sunday {
		return
	}

	day := now.Format("2006-01-02")
	sweepKey := config.CacheKey.AbsenceSweepKey(day)

	// SetNX claims the sweep for today; losing the claim means another
	// instance (or an earlier tick) already ran it.
	claimed, err := w.rdb.SetNX(ctx, sweepKey, "1", 48*time.Hour).Result()
	if err != nil {
		w.log.Error().Err(err).Msg("Sweep claim error")
		return
	}
	if !claimed {
		return
	}

	marked, err := w.attendanceService.MarkAbsentees(ctx, now)
	if err != nil {
		w.log.Error().Err(err).Str("day", day).Msg("Absence sweep failed")
		// Release the claim so the next tick retries.
		w.rdb.Del(ctx, sweepKey)
		return
	}

	w.log.Info().Str("day", day).Int("marked", marked).Msg("Absence sweep complete")
}

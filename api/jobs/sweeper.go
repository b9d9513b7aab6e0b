// Package jobs runs the background maintenance for world cup games.
package jobs

import (
	"log"
	"time"

	"Pico/api/metrics"
	"Pico/api/middlewares"
	"Pico/api/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const (
	DefaultSweepSpec = "@hourly"
	DefaultGameTTL   = 24 * time.Hour
)

// SweepStaleGames deletes active games nobody has touched within ttl.
func SweepStaleGames(db *gorm.DB, ttl time.Duration, now time.Time) (int64, error) {
	deleted, err := models.DeleteStaleGames(db, now.Add(-ttl))
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		metrics.GamesSwept.Add(float64(deleted))
	}
	return deleted, nil
}

// StartSweeper schedules SweepStaleGames on spec and returns the running scheduler.
func StartSweeper(db *gorm.DB, spec string, ttl time.Duration) (*cron.Cron, error) {
	if spec == "" {
		spec = DefaultSweepSpec
	}
	if ttl <= 0 {
		ttl = DefaultGameTTL
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		deleted, err := SweepStaleGames(db, ttl, time.Now())
		if err != nil {
			log.Printf("[sweepGames] %v", err)
			return
		}
		if deleted > 0 {
			log.Printf("[sweepGames] removed %d abandoned games", deleted)
		}
		middlewares.PruneVisitors(ttl)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}

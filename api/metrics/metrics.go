// Package metrics holds the Prometheus collectors for world cup games.
package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	GamesStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "worldcup_games_started_total",
		Help: "World cup games started, by pool size.",
	}, []string{"size"})

	Choices = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "worldcup_choices_total",
		Help: "Pair choices applied, by resulting event.",
	}, []string{"event"})

	GamesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "worldcup_games_completed_total",
		Help: "World cup games that produced a winner.",
	})

	GamesSwept = promauto.NewCounter(prometheus.CounterOpts{
		Name: "worldcup_games_swept_total",
		Help: "Abandoned games deleted by the sweeper.",
	})
)

func ObserveGameStarted(size int) {
	GamesStarted.WithLabelValues(strconv.Itoa(size)).Inc()
}

// Handler exposes the default registry on a gin route.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

package controllers

import (
	"net/http"

	"Pico/api/middlewares"

	"github.com/gin-gonic/gin"
)

func (s *Server) initializeRoutes() {

	s.Router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := s.Router.Group("/api/v1")
	{
		// Candidate routes
		v1.POST("/candidates", s.CreateCandidate)
		v1.GET("/candidates", s.GetCandidates)
		v1.GET("/candidates/:id", s.GetCandidate)

		// World cup routes
		v1.POST("/worldcup/games", s.CreateGame)
		v1.GET("/worldcup/games/:id", s.GetGame)
		v1.POST("/worldcup/games/:id/choose", middlewares.ChooseRateLimitMiddleware(), s.ChooseWinner)
		v1.GET("/worldcup/games/:id/result", s.GetGameResult)
		v1.GET("/worldcup/leaderboard", s.GetLeaderboard)

		// Player routes
		v1.GET("/players/:id/games", s.GetPlayerGames)
	}
}

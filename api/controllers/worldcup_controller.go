package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"Pico/api/bracket"
	"Pico/api/cache"
	"Pico/api/metrics"
	"Pico/api/models"
	"Pico/api/responses"
	httpctx "Pico/api/utils/httpctx"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultPoolSize = 8
	maxPoolSize     = 64

	leaderboardCachePrefix = "worldcup_leaderboard:"
	leaderboardCacheTTL    = 5 * time.Minute
)

var (
	errNotYourGame        = errors.New("game belongs to another player")
	errDuplicateCandidate = errors.New("candidate listed twice")
)

// respondGameError maps engine and storage failures onto HTTP statuses.
func respondGameError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, bracket.ErrInvalidPoolSize),
		errors.Is(err, bracket.ErrIndexOutOfPair),
		errors.Is(err, errDuplicateCandidate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, bracket.ErrTournamentAlreadyComplete),
		errors.Is(err, bracket.ErrNoCurrentPair):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, errNotYourGame):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotEnoughCandidates):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
	default:
		log.Printf("[worldcup] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to process game"})
	}
}

// validPublicID reports whether id can match a uuid public_id column.
func validPublicID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func invalidateLeaderboardCache() {
	_ = cache.DeleteByPrefix(context.Background(), leaderboardCachePrefix)
}

//
// ===============================
// CANDIDATE POOL
// ===============================
//

// buildPool returns the ordered bracket entrants for a new game: the requested
// candidates in order, or a random draw of size when none are named.
func (s *Server) buildPool(size int, candidateIDs []string, playerID string) ([]bracket.Candidate, error) {
	var rows []models.Candidate

	if len(candidateIDs) > 0 {
		seen := make(map[string]bool, len(candidateIDs))
		for _, id := range candidateIDs {
			if seen[id] {
				return nil, fmt.Errorf("%w: %s", errDuplicateCandidate, id)
			}
			seen[id] = true
		}
		for _, id := range candidateIDs {
			if !validPublicID(id) {
				return nil, gorm.ErrRecordNotFound
			}
		}
		found, err := models.FindCandidatesByPublicIDs(s.DB, candidateIDs)
		if err != nil {
			return nil, err
		}
		rows = found
	} else {
		if size == 0 {
			size = defaultPoolSize
		}
		if !bracket.ValidPoolSize(size) || size > maxPoolSize {
			return nil, fmt.Errorf("%w: got %d", bracket.ErrInvalidPoolSize, size)
		}
		var exclude []string
		if playerID != "" {
			exclude = append(exclude, playerID)
		}
		found, err := models.FindCandidatePool(s.DB, size, exclude...)
		if err != nil {
			return nil, err
		}
		rows = found
	}

	pool := make([]bracket.Candidate, len(rows))
	for i := range rows {
		pool[i] = rows[i].ToBracketCandidate()
	}
	return pool, nil
}

//
// ===============================
// CREATE GAME
// ===============================
//

// CreateGame godoc
// @Summary      Start a world cup
// @Description  Start a game over a random draw of size candidates or an explicit ordered pool
// @Tags         worldcup
// @Accept       json
// @Produce      json
// @Param        X-Player-ID  header    string             false  "Player ID"
// @Param        game         body      CreateGameRequest  true   "Pool selection"
// @Success      201          {object}  GameEnvelope
// @Failure      400          {object}  ErrorResponse
// @Failure      404          {object}  ErrorResponse
// @Failure      422          {object}  ErrorResponse
// @Router       /worldcup/games [post]
func (s *Server) CreateGame(c *gin.Context) {
	var input CreateGameRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(input.CandidateIDs) > maxPoolSize {
		respondGameError(c, fmt.Errorf("%w: got %d", bracket.ErrInvalidPoolSize, len(input.CandidateIDs)))
		return
	}

	playerID, _ := httpctx.CurrentPlayerID(c)

	pool, err := s.buildPool(input.Size, input.CandidateIDs, playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
			return
		}
		respondGameError(c, err)
		return
	}

	st, err := bracket.New(pool)
	if err != nil {
		respondGameError(c, err)
		return
	}

	game := models.Game{PlayerID: playerID, Size: len(pool)}
	if err := game.SetEngine(st); err != nil {
		respondGameError(c, err)
		return
	}
	saved, err := game.SaveGame(s.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}
	metrics.ObserveGameStarted(saved.Size)

	c.JSON(http.StatusCreated, gin.H{"response": gameToResponse(saved, st, false)})
}

//
// ===============================
// READ GAME
// ===============================
//

func (s *Server) loadGame(publicID string) (*models.Game, *bracket.State, error) {
	if !validPublicID(publicID) {
		return nil, nil, gorm.ErrRecordNotFound
	}
	var game models.Game
	found, err := game.FindGameByPublicID(s.DB, publicID)
	if err != nil {
		return nil, nil, err
	}
	st, err := found.Engine()
	if err != nil {
		return nil, nil, err
	}
	return found, st, nil
}

// GetGame godoc
// @Summary      Get a world cup game
// @Description  Progress, the pair awaiting a choice and the results so far
// @Tags         worldcup
// @Produce      json
// @Param        id   path      string  true  "Game ID"
// @Success      200  {object}  GameEnvelope
// @Failure      404  {object}  ErrorResponse
// @Router       /worldcup/games/{id} [get]
func (s *Server) GetGame(c *gin.Context) {
	game, st, err := s.loadGame(c.Param("id"))
	if err != nil {
		respondGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": gameToResponse(game, st, true)})
}

// GetGameResult godoc
// @Summary      Get a world cup result
// @Description  Winner and full elimination history of a completed game
// @Tags         worldcup
// @Produce      json
// @Param        id   path      string  true  "Game ID"
// @Success      200  {object}  GameEnvelope
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /worldcup/games/{id}/result [get]
func (s *Server) GetGameResult(c *gin.Context) {
	game, st, err := s.loadGame(c.Param("id"))
	if err != nil {
		respondGameError(c, err)
		return
	}
	if !st.Complete() {
		c.JSON(http.StatusConflict, gin.H{"error": "game still in progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": gameToResponse(game, st, true)})
}

// GetPlayerGames godoc
// @Summary      List a player's games
// @Description  Games started with the given player ID, newest first
// @Tags         players
// @Produce      json
// @Param        id   path      string  true  "Player ID"
// @Success      200  {object}  GameListEnvelope
// @Failure      500  {object}  ErrorResponse
// @Router       /players/{id}/games [get]
func (s *Server) GetPlayerGames(c *gin.Context) {
	var finder models.Game
	games, err := finder.FindPlayerGames(s.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to retrieve games"})
		return
	}

	out := make([]responses.GameResponse, 0, len(*games))
	for i := range *games {
		g := &(*games)[i]
		st, err := g.Engine()
		if err != nil {
			log.Printf("[worldcup] skip game %s: %v", g.PublicID, err)
			continue
		}
		out = append(out, gameToResponse(g, st, false))
	}

	c.JSON(http.StatusOK, gin.H{"response": out})
}

//
// ===============================
// CHOOSE WINNER
// ===============================
//

// ChooseWinner godoc
// @Summary      Choose a pair winner
// @Description  Apply one choice to the current pair of the game
// @Tags         worldcup
// @Accept       json
// @Produce      json
// @Param        id           path      string         true   "Game ID"
// @Param        X-Player-ID  header    string         false  "Player ID"
// @Param        choice       body      ChooseRequest  true   "Index of the winner in the pair"
// @Success      200          {object}  ChooseEnvelope
// @Failure      400          {object}  ErrorResponse
// @Failure      403          {object}  ErrorResponse
// @Failure      404          {object}  ErrorResponse
// @Failure      409          {object}  ErrorResponse
// @Failure      429          {object}  ErrorResponse
// @Router       /worldcup/games/{id}/choose [post]
func (s *Server) ChooseWinner(c *gin.Context) {
	var input ChooseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playerID, _ := httpctx.CurrentPlayerID(c)

	game, st, ev, err := s.chooseInternal(s.DB, c.Param("id"), playerID, *input.Index)
	if err != nil {
		respondGameError(c, err)
		return
	}

	metrics.Choices.WithLabelValues(ev.Kind.String()).Inc()
	if ev.Kind == bracket.TournamentComplete {
		metrics.GamesCompleted.Inc()
		invalidateLeaderboardCache()
	}

	c.JSON(http.StatusOK, gin.H{"response": responses.ChooseResponse{
		Event: eventToResponse(ev),
		Game:  gameToResponse(game, st, false),
	}})
}

// chooseInternal runs one engine transition under a row lock so concurrent
// choices on the same game apply one after another.
func (s *Server) chooseInternal(
	db *gorm.DB,
	publicID, playerID string,
	index int,
) (*models.Game, *bracket.State, bracket.Event, error) {
	var (
		game  models.Game
		next  *bracket.State
		event bracket.Event
	)
	if !validPublicID(publicID) {
		return nil, nil, bracket.Event{}, gorm.ErrRecordNotFound
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("public_id = ?", publicID).
			First(&game).Error; err != nil {
			return err
		}

		if game.PlayerID != "" && game.PlayerID != playerID {
			return errNotYourGame
		}

		st, err := game.Engine()
		if err != nil {
			return err
		}

		next, event, err = st.Choose(index)
		if err != nil {
			return err
		}

		if err := game.SetEngine(next); err != nil {
			return err
		}
		if _, err := game.UpdateGame(tx); err != nil {
			return err
		}

		if event.Kind == bracket.TournamentComplete {
			if err := models.IncrementCandidateWins(tx, event.Winner.ID); err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
				log.Printf("[worldcup] winner %s of game %s no longer exists", event.Winner.ID, game.PublicID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, bracket.Event{}, err
	}

	return &game, next, event, nil
}

//
// ===============================
// LEADERBOARD
// ===============================
//

// GetLeaderboard godoc
// @Summary      World cup leaderboard
// @Description  Candidates with the most world cup wins
// @Tags         worldcup
// @Produce      json
// @Param        limit  query     int  false  "Max entries (1-100)"
// @Success      200    {object}  CandidateListEnvelope
// @Failure      500    {object}  ErrorResponse
// @Router       /worldcup/leaderboard [get]
func (s *Server) GetLeaderboard(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("%s%d", leaderboardCachePrefix, limit)
	ctx := c.Request.Context()
	if cached, err := cache.Get(ctx, cacheKey); err == nil && cached != "" {
		c.Data(http.StatusOK, "application/json", []byte(cached))
		return
	}

	leaders, err := models.FindLeaderboard(s.DB, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load leaderboard"})
		return
	}

	out := make([]responses.CandidateDetailResponse, 0, len(leaders))
	for i := range leaders {
		out = append(out, candidateToDetail(&leaders[i]))
	}

	body, err := json.Marshal(gin.H{"response": out})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load leaderboard"})
		return
	}
	if err := cache.Set(ctx, cacheKey, body, leaderboardCacheTTL); err != nil && !errors.Is(err, cache.ErrNotInitialized) {
		log.Printf("[leaderboard] cache set: %v", err)
	}

	c.Data(http.StatusOK, "application/json", body)
}

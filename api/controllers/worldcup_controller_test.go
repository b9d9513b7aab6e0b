package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"Pico/api/middlewares"
	"Pico/api/models"
	"Pico/api/responses"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var requestSeq uint32

func setupTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// Use SQLite as an in-memory database
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		t.Fatalf("Failed to migrate tables: %v", err)
	}

	server := &Server{DB: db, Router: gin.New()}
	server.SetupRouter()
	return server
}

func createCandidates(t *testing.T, db *gorm.DB, names ...string) map[string]string {
	t.Helper()
	ids := make(map[string]string, len(names))
	for _, n := range names {
		c := models.Candidate{Name: n, Active: true}
		c.Prepare()
		saved, err := c.SaveCandidate(db)
		require.NoError(t, err)
		ids[n] = saved.PublicID
	}
	return ids
}

// doRequest sends a JSON request from a fresh client IP so the per-IP limiters stay out of the way.
func doRequest(t *testing.T, r http.Handler, method, path string, body interface{}, playerID string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if playerID != "" {
		req.Header.Set(middlewares.PlayerIDHeader, playerID)
	}
	n := atomic.AddUint32(&requestSeq, 1)
	req.RemoteAddr = fmt.Sprintf("10.%d.%d.%d:4321", (n>>16)&0xff, (n>>8)&0xff, n&0xff)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var envelope struct {
		Response T `json:"response"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	return envelope.Response
}

func choose(t *testing.T, s *Server, gameID, player string, index int) *httptest.ResponseRecorder {
	t.Helper()
	return doRequest(t, s.Router, http.MethodPost, "/api/v1/worldcup/games/"+gameID+"/choose", map[string]int{"index": index}, player)
}

func TestWorldCupFullGame(t *testing.T) {
	s := setupTestServer(t)
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	ids := createCandidates(t, s.DB, names...)

	order := make([]string, len(names))
	for i, n := range names {
		order[i] = ids[n]
	}

	w := doRequest(t, s.Router, http.MethodPost, "/api/v1/worldcup/games", gin.H{"candidate_ids": order}, "p1")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	game := decodeResponse[responses.GameResponse](t, w)

	assert.Equal(t, models.GameStatusActive, game.Status)
	assert.Equal(t, 8, game.Size)
	assert.Equal(t, "Round of 8", game.RoundLabel)
	assert.Equal(t, 4, game.PairsRemaining)
	assert.Equal(t, 7, game.ChoicesTotal)
	require.NotNil(t, game.CurrentPair)
	assert.Equal(t, "A", game.CurrentPair.Left.Name)
	assert.Equal(t, "B", game.CurrentPair.Right.Name)

	// first round: A, D, E, H
	var last responses.ChooseResponse
	for i, pick := range []int{0, 1, 0, 1} {
		w = choose(t, s, game.ID, "p1", pick)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		last = decodeResponse[responses.ChooseResponse](t, w)
		if i < 3 {
			assert.Equal(t, "pair_resolved", last.Event.Type)
			require.NotNil(t, last.Event.RemainingPairs)
			assert.Equal(t, 3-i, *last.Event.RemainingPairs)
		}
	}
	assert.Equal(t, "round_advanced", last.Event.Type)
	require.NotNil(t, last.Event.NewRoundSize)
	assert.Equal(t, 4, *last.Event.NewRoundSize)

	w = doRequest(t, s.Router, http.MethodGet, "/api/v1/worldcup/games/"+game.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	mid := decodeResponse[responses.GameResponse](t, w)
	assert.Equal(t, "Semifinal", mid.RoundLabel)
	assert.Equal(t, 4, mid.ChoicesMade)
	require.NotNil(t, mid.CurrentPair)
	assert.Equal(t, "A", mid.CurrentPair.Left.Name)
	assert.Equal(t, "D", mid.CurrentPair.Right.Name)
	assert.Len(t, mid.History, 4)

	w = doRequest(t, s.Router, http.MethodGet, "/api/v1/worldcup/games/"+game.ID+"/result", nil, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	// semifinal D, E then final D
	for _, pick := range []int{1, 0, 0} {
		w = choose(t, s, game.ID, "p1", pick)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		last = decodeResponse[responses.ChooseResponse](t, w)
	}
	assert.Equal(t, "tournament_complete", last.Event.Type)
	require.NotNil(t, last.Event.Winner)
	assert.Equal(t, ids["D"], last.Event.Winner.ID)
	assert.Equal(t, models.GameStatusCompleted, last.Game.Status)
	assert.Nil(t, last.Game.CurrentPair)

	w = doRequest(t, s.Router, http.MethodGet, "/api/v1/worldcup/games/"+game.ID+"/result", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	result := decodeResponse[responses.GameResponse](t, w)
	require.NotNil(t, result.Winner)
	assert.Equal(t, "D", result.Winner.Name)
	require.Len(t, result.History, 7)
	assert.Equal(t, result.Winner.ID, result.History[6].Winner.ID)
	assert.Equal(t, "Final", result.History[6].RoundLabel)
	assert.NotNil(t, result.CompletedAt)

	// no further choices once complete, history untouched
	w = choose(t, s, game.ID, "p1", 0)
	assert.Equal(t, http.StatusConflict, w.Code)
	var stored models.Game
	_, err := stored.FindGameByPublicID(s.DB, game.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, stored.ChoicesMade)

	var winner models.Candidate
	_, err = winner.FindCandidateByPublicID(s.DB, ids["D"])
	require.NoError(t, err)
	assert.Equal(t, int64(1), winner.Wins)

	w = doRequest(t, s.Router, http.MethodGet, "/api/v1/worldcup/leaderboard", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	leaders := decodeResponse[[]responses.CandidateDetailResponse](t, w)
	require.Len(t, leaders, 1)
	assert.Equal(t, ids["D"], leaders[0].ID)
	assert.Equal(t, int64(1), leaders[0].Wins)

	w = doRequest(t, s.Router, http.MethodGet, "/api/v1/players/p1/games", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	games := decodeResponse[[]responses.GameResponse](t, w)
	require.Len(t, games, 1)
	assert.Equal(t, game.ID, games[0].ID)
}

func TestChooseWinnerConcurrentChoicesApplyOneAtATime(t *testing.T) {
	s := setupTestServer(t)
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	ids := createCandidates(t, s.DB, names...)
	order := make([]string, len(names))
	for i, n := range names {
		order[i] = ids[n]
	}

	w := doRequest(t, s.Router, http.MethodPost, "/api/v1/worldcup/games", gin.H{"candidate_ids": order}, "p1")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	game := decodeResponse[responses.GameResponse](t, w)

	const clicks = 12
	reqs := make([]*http.Request, clicks)
	for i := range reqs {
		req, err := http.NewRequest(http.MethodPost, "/api/v1/worldcup/games/"+game.ID+"/choose",
			bytes.NewBufferString(`{"index":0}`))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middlewares.PlayerIDHeader, "p1")
		req.RemoteAddr = fmt.Sprintf("10.200.0.%d:4321", i+1)
		reqs[i] = req
	}

	codes := make([]int, clicks)
	var wg sync.WaitGroup
	for i, req := range reqs {
		wg.Add(1)
		go func(i int, req *http.Request) {
			defer wg.Done()
			rec := httptest.NewRecorder()
			s.Router.ServeHTTP(rec, req)
			codes[i] = rec.Code
		}(i, req)
	}
	wg.Wait()

	ok := 0
	for _, code := range codes {
		switch code {
		case http.StatusOK:
			ok++
		case http.StatusConflict:
		default:
			t.Errorf("unexpected status %d", code)
		}
	}
	assert.Equal(t, 7, ok)

	var stored models.Game
	_, err := stored.FindGameByPublicID(s.DB, game.ID)
	require.NoError(t, err)
	assert.Equal(t, ok, stored.ChoicesMade)
	assert.Equal(t, models.GameStatusCompleted, stored.Status)

	st, err := stored.Engine()
	require.NoError(t, err)
	assert.Len(t, st.History(), ok)

	var winner models.Candidate
	_, err = winner.FindCandidateByPublicID(s.DB, ids["A"])
	require.NoError(t, err)
	assert.Equal(t, int64(1), winner.Wins)
}

func TestChooseWinnerErrors(t *testing.T) {
	s := setupTestServer(t)
	ids := createCandidates(t, s.DB, "X", "Y")

	w := doRequest(t, s.Router, http.MethodPost, "/api/v1/worldcup/games",
		gin.H{"candidate_ids": []string{ids["X"], ids["Y"]}}, "owner")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	game := decodeResponse[responses.GameResponse](t, w)

	assert.Equal(t, http.StatusBadRequest, choose(t, s, game.ID, "owner", 2).Code)
	assert.Equal(t, http.StatusBadRequest, choose(t, s, game.ID, "owner", -1).Code)
	assert.Equal(t, http.StatusForbidden, choose(t, s, game.ID, "intruder", 0).Code)
	assert.Equal(t, http.StatusForbidden, choose(t, s, game.ID, "", 0).Code)
	assert.Equal(t, http.StatusNotFound, choose(t, s, "no-such-game", "owner", 0).Code)

	w = doRequest(t, s.Router, http.MethodPost, "/api/v1/worldcup/games/"+game.ID+"/choose", gin.H{}, "owner")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// failed attempts leave the game where it was
	w = choose(t, s, game.ID, "owner", 0)
	require.Equal(t, http.StatusOK, w.Code)
	res := decodeResponse[responses.ChooseResponse](t, w)
	assert.Equal(t, "tournament_complete", res.Event.Type)
	assert.Equal(t, ids["X"], res.Event.Winner.ID)
	assert.Equal(t, 1, res.Game.ChoicesMade)
}

func TestCreateGamePoolErrors(t *testing.T) {
	s := setupTestServer(t)
	ids := createCandidates(t, s.DB, "A", "B", "C", "D", "E", "F")

	cases := []struct {
		name string
		body gin.H
		want int
	}{
		{"non power of two pool", gin.H{"candidate_ids": []string{ids["A"], ids["B"], ids["C"]}}, http.StatusBadRequest},
		{"single candidate", gin.H{"candidate_ids": []string{ids["A"]}}, http.StatusBadRequest},
		{"duplicate candidate", gin.H{"candidate_ids": []string{ids["A"], ids["A"]}}, http.StatusBadRequest},
		{"unknown candidate", gin.H{"candidate_ids": []string{ids["A"], "missing"}}, http.StatusNotFound},
		{"random size not power of two", gin.H{"size": 6}, http.StatusBadRequest},
		{"random size seven", gin.H{"size": 7}, http.StatusBadRequest},
		{"random size twelve exceeds pool", gin.H{"size": 12}, http.StatusBadRequest},
		{"random size too small", gin.H{"size": 1}, http.StatusBadRequest},
		{"random size too large", gin.H{"size": 128}, http.StatusBadRequest},
		{"not enough candidates", gin.H{"size": 8}, http.StatusUnprocessableEntity},
		{"default size needs eight", gin.H{}, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, s.Router, http.MethodPost, "/api/v1/worldcup/games", tc.body, "")
			assert.Equal(t, tc.want, w.Code, w.Body.String())
		})
	}
}

func TestCreateGameRandomPool(t *testing.T) {
	s := setupTestServer(t)
	ids := createCandidates(t, s.DB, "A", "B", "C", "D", "E")

	// the player's own profile is never drawn
	w := doRequest(t, s.Router, http.MethodPost, "/api/v1/worldcup/games", gin.H{"size": 4}, ids["A"])
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	game := decodeResponse[responses.GameResponse](t, w)

	assert.Equal(t, 4, game.Size)
	assert.Equal(t, "Semifinal", game.RoundLabel)
	require.NotNil(t, game.CurrentPair)
	assert.NotEqual(t, ids["A"], game.CurrentPair.Left.ID)
	assert.NotEqual(t, ids["A"], game.CurrentPair.Right.ID)
}

func TestGetGameNotFound(t *testing.T) {
	s := setupTestServer(t)

	w := doRequest(t, s.Router, http.MethodGet, "/api/v1/worldcup/games/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, s.Router, http.MethodGet, "/api/v1/worldcup/games/missing/result", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCandidateEndpoints(t *testing.T) {
	s := setupTestServer(t)

	w := doRequest(t, s.Router, http.MethodPost, "/api/v1/candidates",
		gin.H{"name": " Mina ", "age": 27, "mbti": "enfp", "image_url": "https://img.example/mina.png"}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeResponse[responses.CandidateDetailResponse](t, w)
	assert.Equal(t, "Mina", created.Name)
	assert.Equal(t, "ENFP", created.MBTI)
	assert.True(t, created.Active)
	assert.Equal(t, map[string]string{"age": "27", "mbti": "ENFP"}, created.Attributes)

	w = doRequest(t, s.Router, http.MethodPost, "/api/v1/candidates", gin.H{"name": "  "}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doRequest(t, s.Router, http.MethodGet, "/api/v1/candidates/"+created.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.ID, decodeResponse[responses.CandidateDetailResponse](t, w).ID)

	w = doRequest(t, s.Router, http.MethodGet, "/api/v1/candidates/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	createCandidates(t, s.DB, "B", "C")
	w = doRequest(t, s.Router, http.MethodGet, "/api/v1/candidates?page=1&limit=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	page := decodeResponse[struct {
		Candidates []responses.CandidateDetailResponse `json:"candidates"`
		Pagination responses.PaginationResponse        `json:"pagination"`
	}](t, w)
	assert.Len(t, page.Candidates, 2)
	assert.Equal(t, int64(3), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}

func TestHealthAndMetrics(t *testing.T) {
	s := setupTestServer(t)

	w := doRequest(t, s.Router, http.MethodGet, "/healthz", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, s.Router, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "worldcup_games_completed_total")
}

func TestBuildPagination(t *testing.T) {
	assert.Equal(t, responses.PaginationResponse{Page: 1, Limit: 20, Total: 0, TotalPages: 0}, buildPagination(1, 20, 0))
	assert.Equal(t, 3, buildPagination(1, 20, 41).TotalPages)
}

func TestRequireSSL(t *testing.T) {
	assert.Equal(t, "", requireSSL(""))
	assert.Equal(t, "postgres://h/db?sslmode=require", requireSSL("postgres://h/db"))
	assert.Equal(t, "postgres://h/db?x=1&sslmode=require", requireSSL("postgres://h/db?x=1"))
	assert.Equal(t, "postgres://h/db?sslmode=disable", requireSSL("postgres://h/db?sslmode=disable"))
}

func TestSwaggerDocsListWorldCupRoutes(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("SWAGGER_HOST", "pico.test")
	s := setupTestServer(t)

	w := doRequest(t, s.Router, http.MethodGet, "/swagger/doc.json", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Host     string                 `json:"host"`
		BasePath string                 `json:"basePath"`
		Paths    map[string]interface{} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc), w.Body.String())
	assert.Equal(t, "pico.test", doc.Host)
	assert.Equal(t, "/api/v1", doc.BasePath)
	for _, path := range []string{
		"/worldcup/games",
		"/worldcup/games/{id}",
		"/worldcup/games/{id}/choose",
		"/worldcup/games/{id}/result",
		"/worldcup/leaderboard",
		"/players/{id}/games",
		"/candidates",
		"/candidates/{id}",
	} {
		assert.Contains(t, doc.Paths, path)
	}
}

func TestSwaggerHiddenInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	s := setupTestServer(t)

	w := doRequest(t, s.Router, http.MethodGet, "/swagger/doc.json", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServeStopsWhenContextEnds(t *testing.T) {
	s := setupTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServeReportsListenFailure(t *testing.T) {
	s := setupTestServer(t)

	err := s.Serve(context.Background(), "127.0.0.1:-1")
	assert.Error(t, err)
}

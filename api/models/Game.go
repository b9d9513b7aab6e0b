package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"Pico/api/bracket"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GameStatusActive    = "active"
	GameStatusCompleted = "completed"
)

// Game is one persisted world cup run. State holds the bracket snapshot as JSON;
// the other progress columns are denormalised from it for listing.
type Game struct {
	ID                uint       `gorm:"primary_key;autoIncrement" json:"id"`
	PublicID          string     `gorm:"type:uuid;uniqueIndex;column:public_id" json:"public_id"`
	PlayerID          string     `gorm:"size:64;index" json:"player_id"`
	Size              int        `gorm:"not null" json:"size"`
	Status            string     `gorm:"size:20;not null;default:'active';index" json:"status"`
	RoundSize         int        `gorm:"not null" json:"round_size"`
	PairsRemaining    int        `gorm:"not null;default:0" json:"pairs_remaining"`
	ChoicesMade       int        `gorm:"not null;default:0" json:"choices_made"`
	State             string     `gorm:"type:text;not null" json:"-"`
	WinnerCandidateID *string    `gorm:"type:uuid" json:"winner_candidate_id"`
	CompletedAt       *time.Time `json:"completed_at"`
	CreatedAt         time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"default:CURRENT_TIMESTAMP;index" json:"updated_at"`
}

func (Game) TableName() string { return "worldcup_games" }

func (g *Game) BeforeCreate(tx *gorm.DB) (err error) {
	if strings.TrimSpace(g.PublicID) == "" {
		g.PublicID = uuid.NewString()
	}
	return nil
}

// Engine decodes the stored bracket state.
func (g *Game) Engine() (*bracket.State, error) {
	var snap bracket.Snapshot
	if err := json.Unmarshal([]byte(g.State), &snap); err != nil {
		return nil, fmt.Errorf("decode game %s state: %w", g.PublicID, err)
	}
	return bracket.Restore(snap)
}

// SetEngine stores st and refreshes the columns derived from it.
func (g *Game) SetEngine(st *bracket.State) error {
	raw, err := json.Marshal(st.Snapshot())
	if err != nil {
		return err
	}
	g.State = string(raw)

	progress := st.Progress()
	g.RoundSize = progress.RoundSize
	g.PairsRemaining = progress.PairsRemaining
	g.ChoicesMade = len(st.History())

	if w, ok := st.Winner(); ok {
		id := w.ID
		g.WinnerCandidateID = &id
		g.Status = GameStatusCompleted
		if g.CompletedAt == nil {
			now := time.Now()
			g.CompletedAt = &now
		}
	} else {
		g.Status = GameStatusActive
	}
	return nil
}

//
// ===============================
// DATABASE OPERATIONS
// ===============================
//

func (g *Game) SaveGame(db *gorm.DB) (*Game, error) {
	g.CreatedAt = time.Now()
	g.UpdatedAt = g.CreatedAt
	if err := db.Create(g).Error; err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) FindGameByPublicID(db *gorm.DB, publicID string) (*Game, error) {
	if err := db.Where("public_id = ?", publicID).First(g).Error; err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) UpdateGame(db *gorm.DB) (*Game, error) {
	g.UpdatedAt = time.Now()

	err := db.Model(&Game{}).
		Where("id = ?", g.ID).
		Updates(map[string]interface{}{
			"status":              g.Status,
			"round_size":          g.RoundSize,
			"pairs_remaining":     g.PairsRemaining,
			"choices_made":        g.ChoicesMade,
			"state":               g.State,
			"winner_candidate_id": g.WinnerCandidateID,
			"completed_at":        g.CompletedAt,
			"updated_at":          g.UpdatedAt,
		}).Error
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) FindPlayerGames(db *gorm.DB, playerID string) (*[]Game, error) {
	var games []Game
	err := db.
		Where("player_id = ?", playerID).
		Order("created_at DESC, id DESC").
		Limit(100).
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return &games, nil
}

// DeleteStaleGames removes active games untouched since cutoff.
func DeleteStaleGames(db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.
		Where("status = ? AND updated_at < ?", GameStatusActive, cutoff).
		Delete(&Game{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

package models

import (
	"errors"
	"html"
	"strconv"
	"strings"
	"time"

	"Pico/api/bracket"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Candidate struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	PublicID  string    `gorm:"type:uuid;uniqueIndex;column:public_id" json:"public_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	ImageURL  string    `gorm:"size:512" json:"image_url"`
	Age       int       `gorm:"not null;default:0" json:"age"`
	MBTI      string    `gorm:"size:4;column:mbti" json:"mbti"`
	Bio       string    `gorm:"type:text" json:"bio"`
	Active    bool      `gorm:"not null;index" json:"active"`
	Wins      int64     `gorm:"not null;default:0" json:"wins"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

var ErrNotEnoughCandidates = errors.New("not enough candidates")

func (c *Candidate) BeforeCreate(tx *gorm.DB) (err error) {
	if strings.TrimSpace(c.PublicID) == "" {
		c.PublicID = uuid.NewString()
	}
	return nil
}

//
// ===============================
// PREPARE & VALIDATE
// ===============================
//

func (c *Candidate) Prepare() {
	c.Name = html.EscapeString(strings.TrimSpace(c.Name))
	c.Bio = html.EscapeString(strings.TrimSpace(c.Bio))
	c.ImageURL = strings.TrimSpace(c.ImageURL)
	c.MBTI = strings.ToUpper(strings.TrimSpace(c.MBTI))
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()
}

func (c *Candidate) Validate() map[string]string {
	var err error
	errorsMap := make(map[string]string)

	if c.Name == "" {
		err = errors.New("required name")
		errorsMap["Required_name"] = err.Error()
	}
	if c.Age < 0 {
		err = errors.New("invalid age")
		errorsMap["Invalid_age"] = err.Error()
	}
	if c.MBTI != "" && len(c.MBTI) != 4 {
		err = errors.New("invalid mbti")
		errorsMap["Invalid_mbti"] = err.Error()
	}

	return errorsMap
}

// ToBracketCandidate converts the row into the entrant the bracket engine plays with.
func (c *Candidate) ToBracketCandidate() bracket.Candidate {
	attrs := map[string]string{}
	if c.Age > 0 {
		attrs["age"] = strconv.Itoa(c.Age)
	}
	if c.MBTI != "" {
		attrs["mbti"] = c.MBTI
	}
	if c.Bio != "" {
		attrs["bio"] = c.Bio
	}
	if len(attrs) == 0 {
		attrs = nil
	}
	return bracket.Candidate{
		ID:         c.PublicID,
		Name:       c.Name,
		ImageURL:   c.ImageURL,
		Attributes: attrs,
	}
}

//
// ===============================
// DATABASE OPERATIONS
// ===============================
//

func (c *Candidate) SaveCandidate(db *gorm.DB) (*Candidate, error) {
	if err := db.Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Candidate) FindCandidateByPublicID(db *gorm.DB, publicID string) (*Candidate, error) {
	if err := db.Where("public_id = ?", publicID).First(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// FindCandidatesByPublicIDs loads candidates in the order of publicIDs. A missing
// or inactive id yields gorm.ErrRecordNotFound.
func FindCandidatesByPublicIDs(db *gorm.DB, publicIDs []string) ([]Candidate, error) {
	var rows []Candidate
	if err := db.Where("public_id IN ? AND active = ?", publicIDs, true).Find(&rows).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]Candidate, len(rows))
	for _, r := range rows {
		byID[r.PublicID] = r
	}

	ordered := make([]Candidate, 0, len(publicIDs))
	for _, id := range publicIDs {
		r, ok := byID[id]
		if !ok {
			return nil, gorm.ErrRecordNotFound
		}
		ordered = append(ordered, r)
	}
	return ordered, nil
}

// FindCandidates returns one page of candidates, newest first, plus the total count.
func FindCandidates(db *gorm.DB, page, limit int) ([]Candidate, int64, error) {
	query := db.Model(&Candidate{})

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	candidates := []Candidate{}
	if err := query.
		Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&candidates).Error; err != nil {
		return nil, 0, err
	}
	return candidates, total, nil
}

// FindCandidatePool draws size active candidates at random, skipping excludeIDs.
func FindCandidatePool(db *gorm.DB, size int, excludeIDs ...string) ([]Candidate, error) {
	query := db.Where("active = ?", true)
	if len(excludeIDs) > 0 {
		query = query.Where("public_id NOT IN ?", excludeIDs)
	}

	var pool []Candidate
	if err := query.Order("RANDOM()").Limit(size).Find(&pool).Error; err != nil {
		return nil, err
	}
	if len(pool) < size {
		return nil, ErrNotEnoughCandidates
	}
	return pool, nil
}

func IncrementCandidateWins(db *gorm.DB, publicID string) error {
	result := db.Model(&Candidate{}).
		Where("public_id = ?", publicID).
		UpdateColumn("wins", gorm.Expr("wins + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindLeaderboard lists the candidates with the most tournament wins.
func FindLeaderboard(db *gorm.DB, limit int) ([]Candidate, error) {
	leaders := []Candidate{}
	err := db.
		Where("wins > 0").
		Order("wins DESC, name ASC").
		Limit(limit).
		Find(&leaders).Error
	if err != nil {
		return nil, err
	}
	return leaders, nil
}

package responses

import "time"

type CandidateResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	ImageURL   string            `json:"image_url,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

type CandidateDetailResponse struct {
	CandidateResponse
	Age       int       `json:"age"`
	MBTI      string    `json:"mbti"`
	Bio       string    `json:"bio"`
	Active    bool      `json:"active"`
	Wins      int64     `json:"wins"`
	CreatedAt time.Time `json:"created_at"`
}

type PairResponse struct {
	Left  CandidateResponse `json:"left"`
	Right CandidateResponse `json:"right"`
}

type ResultResponse struct {
	RoundSize  int               `json:"round_size"`
	RoundLabel string            `json:"round_label"`
	Winner     CandidateResponse `json:"winner"`
}

type GameResponse struct {
	ID             string             `json:"id"`
	PlayerID       string             `json:"player_id,omitempty"`
	Size           int                `json:"size"`
	Status         string             `json:"status"`
	RoundSize      int                `json:"round_size"`
	RoundLabel     string             `json:"round_label"`
	PairsRemaining int                `json:"pairs_remaining"`
	ChoicesMade    int                `json:"choices_made"`
	ChoicesTotal   int                `json:"choices_total"`
	CurrentPair    *PairResponse      `json:"current_pair"`
	Winner         *CandidateResponse `json:"winner"`
	History        []ResultResponse   `json:"history,omitempty"`
	CompletedAt    *time.Time         `json:"completed_at"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

type EventResponse struct {
	Type           string             `json:"type"`
	RemainingPairs *int               `json:"remaining_pairs,omitempty"`
	NewRoundSize   *int               `json:"new_round_size,omitempty"`
	Winner         *CandidateResponse `json:"winner,omitempty"`
}

type ChooseResponse struct {
	Event EventResponse `json:"event"`
	Game  GameResponse  `json:"game"`
}

type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

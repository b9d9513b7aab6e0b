package controllers

import "Pico/api/responses"

// CreateGameRequest starts a game over an explicit ordered pool or a random draw of Size.
type CreateGameRequest struct {
	Size         int      `json:"size,omitempty"`
	CandidateIDs []string `json:"candidate_ids,omitempty"`
}

// ChooseRequest picks the left (0) or right (1) candidate of the current pair.
type ChooseRequest struct {
	Index *int `json:"index" binding:"required"`
}

type CreateCandidateRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url,omitempty"`
	Age      int    `json:"age,omitempty"`
	MBTI     string `json:"mbti,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationErrorResponse struct {
	Status int               `json:"status"`
	Error  map[string]string `json:"error"`
}

type GameEnvelope struct {
	Response responses.GameResponse `json:"response"`
}

type GameListEnvelope struct {
	Response []responses.GameResponse `json:"response"`
}

type ChooseEnvelope struct {
	Response responses.ChooseResponse `json:"response"`
}

type CandidateEnvelope struct {
	Response responses.CandidateDetailResponse `json:"response"`
}

type CandidateListEnvelope struct {
	Response []responses.CandidateDetailResponse `json:"response"`
}

type CandidatePage struct {
	Candidates []responses.CandidateDetailResponse `json:"candidates"`
	Pagination responses.PaginationResponse        `json:"pagination"`
}

type CandidatePageEnvelope struct {
	Status   int           `json:"status"`
	Response CandidatePage `json:"response"`
}

package controllers

import (
	"time"

	"Pico/api/bracket"
	"Pico/api/models"
	"Pico/api/responses"
)

func timePtrOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	copy := *t
	return &copy
}

func intPtr(v int) *int { return &v }

func candidateToResponse(c bracket.Candidate) responses.CandidateResponse {
	return responses.CandidateResponse{
		ID:         c.ID,
		Name:       c.Name,
		ImageURL:   c.ImageURL,
		Attributes: c.Attributes,
	}
}

func candidateToDetail(c *models.Candidate) responses.CandidateDetailResponse {
	return responses.CandidateDetailResponse{
		CandidateResponse: candidateToResponse(c.ToBracketCandidate()),
		Age:               c.Age,
		MBTI:              c.MBTI,
		Bio:               c.Bio,
		Active:            c.Active,
		Wins:              c.Wins,
		CreatedAt:         c.CreatedAt,
	}
}

func gameToResponse(game *models.Game, st *bracket.State, withHistory bool) responses.GameResponse {
	progress := st.Progress()
	resp := responses.GameResponse{
		ID:             game.PublicID,
		PlayerID:       game.PlayerID,
		Size:           game.Size,
		Status:         game.Status,
		RoundSize:      progress.RoundSize,
		RoundLabel:     progress.RoundLabel,
		PairsRemaining: progress.PairsRemaining,
		ChoicesMade:    len(st.History()),
		ChoicesTotal:   game.Size - 1,
		CompletedAt:    timePtrOrNil(game.CompletedAt),
		CreatedAt:      game.CreatedAt,
		UpdatedAt:      game.UpdatedAt,
	}

	if left, right, err := st.CurrentPair(); err == nil {
		resp.CurrentPair = &responses.PairResponse{
			Left:  candidateToResponse(left),
			Right: candidateToResponse(right),
		}
	}
	if w, ok := st.Winner(); ok {
		winner := candidateToResponse(w)
		resp.Winner = &winner
	}
	if withHistory {
		resp.History = historyToResponse(st.History())
	}
	return resp
}

func historyToResponse(history []bracket.Result) []responses.ResultResponse {
	out := make([]responses.ResultResponse, 0, len(history))
	for _, r := range history {
		out = append(out, responses.ResultResponse{
			RoundSize:  r.RoundSize,
			RoundLabel: bracket.RoundLabel(r.RoundSize),
			Winner:     candidateToResponse(r.Winner),
		})
	}
	return out
}

func eventToResponse(ev bracket.Event) responses.EventResponse {
	resp := responses.EventResponse{Type: ev.Kind.String()}
	switch ev.Kind {
	case bracket.PairResolved:
		resp.RemainingPairs = intPtr(ev.RemainingPairs)
	case bracket.RoundAdvanced:
		resp.NewRoundSize = intPtr(ev.NewRoundSize)
	case bracket.TournamentComplete:
		if ev.Winner != nil {
			winner := candidateToResponse(*ev.Winner)
			resp.Winner = &winner
		}
	}
	return resp
}

func buildPagination(page, limit int, total int64) responses.PaginationResponse {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return responses.PaginationResponse{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

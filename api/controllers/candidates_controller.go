package controllers

import (
	"errors"
	"net/http"

	"Pico/api/models"
	"Pico/api/responses"
	httpctx "Pico/api/utils/httpctx"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateCandidate godoc
// @Summary      Create a candidate
// @Description  Register a new entrant for world cup pools
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      CreateCandidateRequest  true  "Candidate payload"
// @Success      201        {object}  CandidateEnvelope
// @Failure      400        {object}  ErrorResponse
// @Failure      422        {object}  ValidationErrorResponse
// @Router       /candidates [post]
func (s *Server) CreateCandidate(c *gin.Context) {
	var input CreateCandidateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidate := models.Candidate{
		Name:     input.Name,
		ImageURL: input.ImageURL,
		Age:      input.Age,
		MBTI:     input.MBTI,
		Bio:      input.Bio,
		Active:   true,
	}
	candidate.Prepare()

	if errorMessages := candidate.Validate(); len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	created, err := candidate.SaveCandidate(s.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create candidate"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"response": candidateToDetail(created)})
}

// GetCandidates godoc
// @Summary      List candidates
// @Description  A page of candidates, newest first
// @Tags         candidates
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size (1-100)"
// @Success      200    {object}  CandidatePageEnvelope
// @Failure      500    {object}  ErrorResponse
// @Router       /candidates [get]
func (s *Server) GetCandidates(c *gin.Context) {
	page, limit := httpctx.Pagination(c, 20, 100)

	candidates, total, err := models.FindCandidates(s.DB, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch candidates"})
		return
	}

	out := make([]responses.CandidateDetailResponse, 0, len(candidates))
	for i := range candidates {
		out = append(out, candidateToDetail(&candidates[i]))
	}

	c.JSON(http.StatusOK, CandidatePageEnvelope{
		Status: http.StatusOK,
		Response: CandidatePage{
			Candidates: out,
			Pagination: buildPagination(page, limit, total),
		},
	})
}

// GetCandidate godoc
// @Summary      Get a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  CandidateEnvelope
// @Failure      404  {object}  ErrorResponse
// @Router       /candidates/{id} [get]
func (s *Server) GetCandidate(c *gin.Context) {
	id := c.Param("id")
	if !validPublicID(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return
	}

	var candidate models.Candidate
	found, err := candidate.FindCandidateByPublicID(s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving candidate"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": candidateToDetail(found)})
}

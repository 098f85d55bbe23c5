package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Dosada05/tennis-finals/services"
	"github.com/go-chi/chi/v5"
)

type MatchHandler struct {
	tournamentService services.TournamentService
}

func NewMatchHandler(ts services.TournamentService) *MatchHandler {
	return &MatchHandler{
		tournamentService: ts,
	}
}

type submitMatchRequest struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
	Score   string `json:"score"`
	Type    string `json:"type"`
}

type submitPlayoffRequest struct {
	Player1     string `json:"player1"`
	Player2     string `json:"player2"`
	Score       string `json:"score"`
	PlayoffType string `json:"playoff_type"`
}

// OpenMatch godoc
// @Summary Открыть матч для редактирования
// @Tags matches
// @Produce json
// @Param matchID path string true "Match ID, e.g. A-R1-C1 or SF1"
// @Success 200 {object} services.OpenMatchView
// @Failure 404 {object} map[string]string "MatchNotFoundError"
// @Security BearerAuth
// @Router /matches/{matchID} [get]
func (h *MatchHandler) OpenMatch(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")
	if matchID == "" {
		badRequestResponse(w, r, errors.New("match id is required"))
		return
	}

	view, err := h.tournamentService.OpenMatch(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, view, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SubmitMatch godoc
// @Summary Записать результат матча
// @Tags matches
// @Description type defaults to "group". type "any" searches every match and may fail with AmbiguousMatchError.
// @Accept json
// @Produce json
// @Param input body submitMatchRequest true "Result"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "InvalidScoreError"
// @Failure 404 {object} map[string]string "MatchNotFoundError / AmbiguousMatchError"
// @Failure 409 {object} map[string]string "BracketInconsistencyError"
// @Security BearerAuth
// @Router /match/submit [post]
func (h *MatchHandler) SubmitMatch(w http.ResponseWriter, r *http.Request) {
	var input submitMatchRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	mc := services.ContextGroup
	if strings.TrimSpace(input.Type) != "" {
		parsed, err := services.ParseMatchContext(input.Type)
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		mc = parsed
	}

	match, err := h.tournamentService.SubmitResult(r.Context(), services.SubmitResultInput{
		Player1: input.Player1,
		Player2: input.Player2,
		Score:   input.Score,
		Context: mc,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true, "match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SubmitPlayoffMatch godoc
// @Summary Записать результат матча плей-офф
// @Tags playoffs
// @Accept json
// @Produce json
// @Param input body submitPlayoffRequest true "Result"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /playoffs/match [post]
func (h *MatchHandler) SubmitPlayoffMatch(w http.ResponseWriter, r *http.Request) {
	var input submitPlayoffRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.tournamentService.SubmitPlayoffResult(r.Context(), services.SubmitPlayoffInput{
		Player1:     input.Player1,
		Player2:     input.Player2,
		Score:       input.Score,
		PlayoffType: input.PlayoffType,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true, "match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

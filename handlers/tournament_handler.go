package handlers

import (
	"net/http"

	"github.com/Dosada05/tennis-finals/middleware"
	"github.com/Dosada05/tennis-finals/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(ts services.TournamentService) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: ts,
	}
}

// CreateTournament godoc
// @Summary Создать новый турнир
// @Tags tournament
// @Description Draws the top registry players into two groups and schedules the group stage. Replaces any existing tournament.
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string "Нет прав"
// @Security BearerAuth
// @Router /tournament/new [post]
func (h *TournamentHandler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	t, err := h.tournamentService.CreateTournament(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"success":    true,
		"message":    "tournament created",
		"created_at": t.CreatedAt,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetInfo godoc
// @Summary Группы, таблицы и матчи группового этапа
// @Tags tournament
// @Produce json
// @Success 200 {object} services.TournamentInfo
// @Failure 404 {object} map[string]string "Турнир не создан"
// @Router /tournament/info [get]
func (h *TournamentHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.tournamentService.GetInfo(r.Context(), middleware.IsAdmin(r.Context()))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, info, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetSchedule godoc
// @Summary Расписание всех матчей
// @Tags tournament
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /tournament/schedule [get]
func (h *TournamentHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.tournamentService.GetSchedule(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"schedule": schedule}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetStatus godoc
// @Summary Статус турнира
// @Tags tournament
// @Produce json
// @Success 200 {object} services.StatusView
// @Router /tournament/status [get]
func (h *TournamentHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.tournamentService.GetStatus(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, status, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetupPlayoffs godoc
// @Summary Сформировать плей-офф
// @Tags playoffs
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]string "PlayoffsNotReadyError / PlayoffsAlreadyExistError"
// @Security BearerAuth
// @Router /playoffs/setup [post]
func (h *TournamentHandler) SetupPlayoffs(w http.ResponseWriter, r *http.Request) {
	bracket, err := h.tournamentService.SetupPlayoffs(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	response := jsonResponse{"success": true, "bracket": bracket}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetResults godoc
// @Summary Итоговые места
// @Tags results
// @Produce json
// @Success 200 {object} models.Placements
// @Failure 409 {object} map[string]string "ResultsNotReadyError"
// @Router /results [get]
func (h *TournamentHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	placements, err := h.tournamentService.GetResults(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, placements, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

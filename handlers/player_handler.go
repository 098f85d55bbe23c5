package handlers

import (
	"net/http"

	"github.com/Dosada05/tennis-finals/services"
	"github.com/go-chi/chi/v5"
)

type PlayerHandler struct {
	playerService services.PlayerService
}

func NewPlayerHandler(ps services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: ps,
	}
}

// ListPlayers godoc
// @Summary Рейтинг игроков
// @Tags players
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /players [get]
func (h *PlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.ListPlayers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"players": players}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetPlayerStats godoc
// @Summary Статистика игрока
// @Tags players
// @Produce json
// @Param name path string true "Player name"
// @Success 200 {object} models.PlayerStats
// @Failure 404 {object} map[string]string "PlayerNotFoundError"
// @Router /players/{name} [get]
func (h *PlayerHandler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.playerService.GetPlayerStats(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, stats, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreatePlayer godoc
// @Summary Зарегистрировать игрока
// @Tags players
// @Accept json
// @Produce json
// @Param input body services.CreatePlayerInput true "Player"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "InvalidPlayerError"
// @Failure 409 {object} map[string]string "PlayerExistsError"
// @Security BearerAuth
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var input services.CreatePlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.RegisterPlayer(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdatePlayer godoc
// @Summary Изменить уровень или рейтинг
// @Tags players
// @Accept json
// @Produce json
// @Param name path string true "Player name"
// @Param input body services.UpdatePlayerInput true "Changes"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /players/{name} [put]
func (h *PlayerHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	var input services.UpdatePlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.UpdatePlayer(r.Context(), chi.URLParam(r, "name"), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeletePlayer godoc
// @Summary Удалить игрока
// @Tags players
// @Produce json
// @Param name path string true "Player name"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /players/{name} [delete]
func (h *PlayerHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	if err := h.playerService.DeletePlayer(r.Context(), chi.URLParam(r, "name")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

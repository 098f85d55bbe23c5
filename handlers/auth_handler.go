package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/tennis-finals/middleware"
	"github.com/Dosada05/tennis-finals/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login godoc
// @Summary Вход администратора
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginRequest true "Admin password"
// @Success 200 {object} map[string]interface{} "success and token"
// @Failure 401 {object} map[string]string "Неверный пароль"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input loginRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Password == "" {
		badRequestResponse(w, r, errors.New("password is required"))
		return
	}

	token, err := h.authService.Login(input.Password)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"success": true,
		"token":   token,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Logout is a no-op on the server; sessions are bearer tokens the client drops.
// @Summary Выход администратора
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Status godoc
// @Summary Статус сессии
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/status [get]
func (h *AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	response := jsonResponse{"is_admin": middleware.IsAdmin(r.Context())}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dosada05/tennis-finals/brackets"
	"github.com/Dosada05/tennis-finals/handlers"
	"github.com/Dosada05/tennis-finals/models"
	"github.com/Dosada05/tennis-finals/repositories"
	"github.com/Dosada05/tennis-finals/services"
	"github.com/go-chi/chi/v5"
)

type apiClient struct {
	t      *testing.T
	server *httptest.Server
	token  string
}

func newTestServer(t *testing.T) *apiClient {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authService, err := services.NewAuthService("", "secret-pass", "jwt-secret")
	if err != nil {
		t.Fatalf("auth service: %v", err)
	}
	hub := brackets.NewHub(logger)
	go hub.Run()
	t.Cleanup(hub.Stop)

	playerService := services.NewPlayerService(repositories.NewMemoryPlayerRepository(), logger)
	tournamentService := services.NewTournamentService(
		repositories.NewMemoryTournamentRepository(),
		playerService,
		models.DefaultScheduleConfig(),
		hub,
		nil,
		logger,
	)

	router := chi.NewRouter()
	SetupRoutes(router, Handlers{
		Auth:       handlers.NewAuthHandler(authService),
		Tournament: handlers.NewTournamentHandler(tournamentService),
		Match:      handlers.NewMatchHandler(tournamentService),
		Player:     handlers.NewPlayerHandler(playerService),
		WebSocket:  handlers.NewWebSocketHandler(hub, nil, logger),
	}, authService, []string{"*"}, logger)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return &apiClient{t: t, server: server}
}

func (c *apiClient) do(method, path string, body interface{}) (int, map[string]interface{}) {
	c.t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			c.t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, c.server.URL+path, reader)
	if err != nil {
		c.t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.server.Client().Do(req)
	if err != nil {
		c.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	decoded := map[string]interface{}{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil && err != io.EOF {
		c.t.Fatalf("%s %s: decode: %v", method, path, err)
	}
	return resp.StatusCode, decoded
}

func (c *apiClient) expect(method, path string, body interface{}, wantStatus int, wantCode string) map[string]interface{} {
	c.t.Helper()
	status, decoded := c.do(method, path, body)
	if status != wantStatus {
		c.t.Fatalf("%s %s: status = %d, want %d (%v)", method, path, status, wantStatus, decoded)
	}
	if wantCode != "" && decoded["code"] != wantCode {
		c.t.Fatalf("%s %s: code = %v, want %s", method, path, decoded["code"], wantCode)
	}
	return decoded
}

func TestAPIFlow(t *testing.T) {
	c := newTestServer(t)

	status := c.expect(http.MethodGet, "/api/tournament/status", nil, http.StatusOK, "")
	if status["status"] != string(models.StatusNotStarted) {
		t.Fatalf("status = %v", status["status"])
	}
	c.expect(http.MethodGet, "/api/tournament/info", nil, http.StatusNotFound, "TournamentNotFoundError")
	c.expect(http.MethodPost, "/api/tournament/new", nil, http.StatusForbidden, "ForbiddenError")
	c.expect(http.MethodPost, "/api/auth/login", map[string]string{"password": "nope"}, http.StatusUnauthorized, "InvalidPasswordError")
	c.expect(http.MethodPost, "/api/auth/login", map[string]string{}, http.StatusBadRequest, "BadRequestError")

	login := c.expect(http.MethodPost, "/api/auth/login", map[string]string{"password": "secret-pass"}, http.StatusOK, "")
	token, _ := login["token"].(string)
	if token == "" {
		t.Fatalf("login returned no token: %v", login)
	}
	c.token = token
	if auth := c.expect(http.MethodGet, "/api/auth/status", nil, http.StatusOK, ""); auth["is_admin"] != true {
		t.Fatalf("auth status = %v", auth)
	}

	c.expect(http.MethodPost, "/api/tournament/new", nil, http.StatusOK, "")
	info := c.expect(http.MethodGet, "/api/tournament/info", nil, http.StatusOK, "")
	if info["is_admin"] != true {
		t.Errorf("info is_admin = %v", info["is_admin"])
	}
	matches, _ := info["group_matches"].([]interface{})
	if len(matches) != 12 {
		t.Fatalf("got %d group matches", len(matches))
	}

	schedule := c.expect(http.MethodGet, "/api/tournament/schedule", nil, http.StatusOK, "")
	entries, _ := schedule["schedule"].([]interface{})
	first := entries[0].(map[string]interface{})
	p1, p2 := first["player1"].(string), first["player2"].(string)

	c.expect(http.MethodPost, "/api/match/submit", map[string]string{"player1": p1, "player2": p2, "score": "4-4", "type": "group"}, http.StatusBadRequest, "InvalidScoreError")
	c.expect(http.MethodPost, "/api/match/submit", map[string]string{"player1": p1, "player2": p2, "score": "6-4", "type": "quarter"}, http.StatusBadRequest, "InvalidMatchTypeError")
	c.expect(http.MethodPost, "/api/match/submit", map[string]string{"player1": p1, "player2": "Nobody", "score": "6-4"}, http.StatusNotFound, "MatchNotFoundError")

	submitted := c.expect(http.MethodPost, "/api/match/submit", map[string]string{"player1": p1, "player2": p2, "score": "6-4", "type": "group"}, http.StatusOK, "")
	match := submitted["match"].(map[string]interface{})
	if match["played"] != true {
		t.Errorf("match not played: %v", match)
	}
	opened := c.expect(http.MethodGet, "/api/matches/"+first["id"].(string), nil, http.StatusOK, "")
	if opened["score"] != "6-4" {
		t.Errorf("open match score = %v", opened["score"])
	}

	c.expect(http.MethodPost, "/api/playoffs/setup", nil, http.StatusConflict, "PlayoffsNotReadyError")
	c.expect(http.MethodGet, "/api/results", nil, http.StatusConflict, "ResultsNotReadyError")

	players := c.expect(http.MethodGet, "/api/players", nil, http.StatusOK, "")
	if list, _ := players["players"].([]interface{}); len(list) != len(services.DefaultRoster) {
		t.Errorf("got %d players", len(list))
	}
	stats := c.expect(http.MethodGet, "/api/players/"+p1, nil, http.StatusOK, "")
	if stats["tournaments_played"] != float64(1) {
		t.Errorf("stats = %v", stats)
	}

	c.token = "garbage"
	c.expect(http.MethodGet, "/api/tournament/status", nil, http.StatusUnauthorized, "UnauthorizedError")
}

func TestPlayerAdminRoutes(t *testing.T) {
	c := newTestServer(t)
	c.expect(http.MethodPost, "/api/players", map[string]interface{}{"name": "Nadia", "level": 5}, http.StatusForbidden, "ForbiddenError")

	login := c.expect(http.MethodPost, "/api/auth/login", map[string]string{"password": "secret-pass"}, http.StatusOK, "")
	c.token = login["token"].(string)

	c.expect(http.MethodPost, "/api/players", map[string]interface{}{"name": "Nadia", "level": 5}, http.StatusCreated, "")
	c.expect(http.MethodPost, "/api/players", map[string]interface{}{"name": "Nadia", "level": 5}, http.StatusConflict, "PlayerExistsError")
	c.expect(http.MethodPost, "/api/players", map[string]interface{}{"name": "Lee", "level": 42}, http.StatusBadRequest, "InvalidPlayerError")

	updated := c.expect(http.MethodPut, "/api/players/Nadia", map[string]interface{}{"rating": 1500}, http.StatusOK, "")
	if p := updated["player"].(map[string]interface{}); p["rating"] != float64(1500) {
		t.Errorf("updated player = %v", p)
	}
	c.expect(http.MethodDelete, "/api/players/Nadia", nil, http.StatusOK, "")
	c.expect(http.MethodGet, "/api/players/Nadia", nil, http.StatusNotFound, "PlayerNotFoundError")
}

func TestHealthz(t *testing.T) {
	c := newTestServer(t)
	resp, err := c.server.Client().Get(c.server.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

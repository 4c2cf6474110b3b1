package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/BrandishEconomy_Go/internal/dailybonus"
	"github.com/osse101/BrandishEconomy_Go/internal/domain"
	"github.com/osse101/BrandishEconomy_Go/internal/guild"
	"github.com/osse101/BrandishEconomy_Go/internal/inventory"
	"github.com/osse101/BrandishEconomy_Go/internal/item"
	"github.com/osse101/BrandishEconomy_Go/internal/player"
)

// Stubs embed the interface and override only what the routes under test call

type stubPlayers struct {
	player.Service
}

func (stubPlayers) CreatePlayer(context.Context, bool, *uint64) (int, error) { return 7, nil }
func (stubPlayers) GetMoney(_ context.Context, id int) (int64, error) {
	if id == 404 {
		return 0, domain.PlayerNotFound(id)
	}
	return 1000, nil
}

type stubInventory struct {
	inventory.Service
}

func (stubInventory) GetItem(_ context.Context, playerID, itemID int) (*domain.InventoryEntry, error) {
	return &domain.InventoryEntry{ID: itemID, Count: playerID}, nil
}

type stubDaily struct {
	dailybonus.Service
}

func (stubDaily) ClaimToday(context.Context, int) (*domain.AcquiredDaily, error) {
	return &domain.AcquiredDaily{Reward: 100, Balance: 1100}, nil
}

type stubItems struct {
	item.Service
}

func (stubItems) DeleteItem(context.Context, int) error { return nil }

type stubGuilds struct {
	guild.Service
}

func (stubGuilds) GetGuild(_ context.Context, id int) (*domain.Guild, error) {
	return &domain.Guild{ID: id, Name: "Knights"}, nil
}

type stubPool struct{}

func (stubPool) Ping(context.Context) error { return nil }
func (stubPool) Close()                     {}

func testOptions() Options {
	return Options{Port: 0, RateLimit: 1000, RateLimitWindow: time.Minute}
}

func testRouter(opts Options) http.Handler {
	return NewRouter(opts, stubPool{}, Services{
		Player:    stubPlayers{},
		Inventory: stubInventory{},
		Daily:     stubDaily{},
		Item:      stubItems{},
		Guild:     stubGuilds{},
	})
}

func TestRouter_Routes(t *testing.T) {
	router := testRouter(testOptions())

	tests := []struct {
		method string
		path   string
		body   string
		status int
		want   string
	}{
		{http.MethodPost, "/api/v1/players", `{}`, http.StatusCreated, `{"id":7}`},
		{http.MethodGet, "/api/v1/players/3/money", "", http.StatusOK, `{"money":1000}`},
		{http.MethodGet, "/api/v1/players/404/money", "", http.StatusNotFound, "not found"},
		{http.MethodPost, "/api/v1/players/3/daily", "", http.StatusOK, `"reward":100`},
		{http.MethodGet, "/api/v1/inventory/5/2", "", http.StatusOK, `"count":5`},
		{http.MethodDelete, "/api/v1/items/2", "", http.StatusOK, "Item deleted"},
		{http.MethodGet, "/api/v1/guilds/4", "", http.StatusOK, `"Knights"`},
		{http.MethodGet, "/healthz", "", http.StatusOK, `"ok"`},
		{http.MethodGet, "/readyz", "", http.StatusOK, `"ok"`},
		{http.MethodGet, "/metrics", "", http.StatusOK, "http_requests_total"},
		{http.MethodGet, "/api/v1/nowhere", "", http.StatusNotFound, ""},
		{http.MethodDelete, "/api/v1/players/3/money", "", http.StatusMethodNotAllowed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestRouter_RequiresAPIKeyWhenConfigured(t *testing.T) {
	opts := testOptions()
	opts.APIKey = "secret"
	router := testRouter(opts)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/players/3/money", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/players/3/money", nil)
	req.Header.Set(HeaderAPIKey, "secret")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RejectsOversizedBody(t *testing.T) {
	router := testRouter(testOptions())

	body := `{"is_admin":false,"pad":"` + strings.Repeat("a", MaxRequestBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/players", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_StopBeforeStart(t *testing.T) {
	s := NewServer(testOptions(), stubPool{}, Services{})
	assert.NoError(t, s.Stop(context.Background()))
}

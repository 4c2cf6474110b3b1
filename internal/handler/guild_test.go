package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/BrandishEconomy_Go/internal/domain"
)

func TestHandleCreateGuild(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		svc := &MockGuildService{}
		svc.On("CreateGuild", mock.Anything, "Knights", "", ptr(uint64(77))).Return(2, nil)

		w := serve(HandleCreateGuild(svc), newRequest(t, http.MethodPost, "/guilds", `{"name":"Knights","discord_id":77}`))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":2}`, w.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("Taken discord id", func(t *testing.T) {
		svc := &MockGuildService{}
		svc.On("CreateGuild", mock.Anything, "Knights", "", ptr(uint64(77))).Return(0, domain.ErrDiscordIDTaken)

		w := serve(HandleCreateGuild(svc), newRequest(t, http.MethodPost, "/guilds", `{"name":"Knights","discord_id":77}`))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Name too long", func(t *testing.T) {
		svc := &MockGuildService{}
		long := make([]byte, 101)
		for i := range long {
			long[i] = 'a'
		}

		w := serve(HandleCreateGuild(svc), newRequest(t, http.MethodPost, "/guilds", CreateGuildRequest{Name: string(long)}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Must be at most 100", decodeBody[ValidationErrorResponse](t, w).Fields["name"])
	})
}

func TestHandleGetGuild(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		svc := &MockGuildService{}
		svc.On("GetGuild", mock.Anything, 2).Return(&domain.Guild{ID: 2, Name: "Knights", PlayerCount: 3}, nil)

		w := serve(HandleGetGuild(svc), newRequest(t, http.MethodGet, "/", nil, ParamGuildID, "2"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 3, decodeBody[domain.Guild](t, w).PlayerCount)
	})

	t.Run("Missing", func(t *testing.T) {
		svc := &MockGuildService{}
		svc.On("GetGuild", mock.Anything, 2).Return(nil, domain.GuildNotFound(2))

		w := serve(HandleGetGuild(svc), newRequest(t, http.MethodGet, "/", nil, ParamGuildID, "2"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

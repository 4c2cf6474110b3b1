package handler

import (
	"net/http"

	"github.com/osse101/BrandishEconomy_Go/internal/guild"
)

type CreateGuildRequest struct {
	Name        string  `json:"name" validate:"required,notblank,max=100,excludesall=\x00\n\r\t"`
	Description string  `json:"description" validate:"max=1000"`
	DiscordID   *uint64 `json:"discord_id,omitempty"`
}

func HandleCreateGuild(svc guild.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateGuildRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create guild"); err != nil {
			return
		}

		id, err := svc.CreateGuild(r.Context(), req.Name, req.Description, req.DiscordID)
		if err != nil {
			respondServiceError(w, r, "Create guild", err)
			return
		}
		respondJSON(w, http.StatusCreated, IDResponse{ID: id})
	}
}

// HandleGetGuild returns a guild with its member count
func HandleGetGuild(svc guild.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guildID, ok := GetIntParam(r, w, ParamGuildID)
		if !ok {
			return
		}

		g, err := svc.GetGuild(r.Context(), guildID)
		if err != nil {
			respondServiceError(w, r, "Get guild", err)
			return
		}
		respondJSON(w, http.StatusOK, g)
	}
}

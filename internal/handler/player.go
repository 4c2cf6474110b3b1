package handler

import (
	"net/http"

	"github.com/osse101/BrandishEconomy_Go/internal/logger"
	"github.com/osse101/BrandishEconomy_Go/internal/player"
)

type CreatePlayerRequest struct {
	IsAdmin   bool    `json:"is_admin"`
	DiscordID *uint64 `json:"discord_id,omitempty"`
}

type PlayerIDResponse struct {
	PlayerID int `json:"player_id"`
}

// HandleCreatePlayer creates the user, player, inventory and daily bonus rows of a new player
func HandleCreatePlayer(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create player"); err != nil {
			return
		}

		id, err := svc.CreatePlayer(r.Context(), req.IsAdmin, req.DiscordID)
		if err != nil {
			respondServiceError(w, r, "Create player", err)
			return
		}

		logger.FromContext(r.Context()).Info("Player created", logger.AttrKeyPlayerID, id)
		respondJSON(w, http.StatusCreated, IDResponse{ID: id})
	}
}

// HandleGetAllPlayers lists every player
func HandleGetAllPlayers(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := svc.GetAllPlayers(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get all players", err)
			return
		}
		respondJSON(w, http.StatusOK, players)
	}
}

// HandleGetPlayer returns the economy state of one player
func HandleGetPlayer(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetIntParam(r, w, ParamPlayerID)
		if !ok {
			return
		}

		p, err := svc.GetPlayer(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get player", err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleGetAccount returns the account row of a player: join date, admin flag and discord id
func HandleGetAccount(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetIntParam(r, w, ParamPlayerID)
		if !ok {
			return
		}

		u, err := svc.GetAccount(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get account", err)
			return
		}
		respondJSON(w, http.StatusOK, u)
	}
}

// HandleGetPlayerByDiscordID resolves a discord snowflake to a player id
func HandleGetPlayerByDiscordID(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		discordID, ok := GetSnowflakeParam(r, w, ParamDiscordID)
		if !ok {
			return
		}

		id, err := svc.GetPlayerIDByDiscordID(r.Context(), discordID)
		if err != nil {
			respondServiceError(w, r, "Get player by discord id", err)
			return
		}
		respondJSON(w, http.StatusOK, PlayerIDResponse{PlayerID: id})
	}
}

type GuildMembershipResponse struct {
	GuildID *int `json:"guild_id"`
}

type SetGuildRequest struct {
	GuildID *int `json:"guild_id" validate:"omitempty,gt=0"`
}

// HandleGetGuildID returns the guild of a player, null when they have none
func HandleGetGuildID(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetIntParam(r, w, ParamPlayerID)
		if !ok {
			return
		}

		guildID, err := svc.GetGuildID(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get guild id", err)
			return
		}
		respondJSON(w, http.StatusOK, GuildMembershipResponse{GuildID: guildID})
	}
}

// HandleSetGuildID moves a player into a guild, or out of any guild when guild_id is null
func HandleSetGuildID(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetIntParam(r, w, ParamPlayerID)
		if !ok {
			return
		}

		var req SetGuildRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set guild id"); err != nil {
			return
		}

		if err := svc.SetGuildID(r.Context(), playerID, req.GuildID); err != nil {
			respondServiceError(w, r, "Set guild id", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGuildSet})
	}
}

package handler

import (
	"context"
	"net/http"

	"github.com/osse101/BrandishEconomy_Go/internal/player"
)

type SetValueRequest struct {
	Value *int64 `json:"value" validate:"required"`
}

type AddDeltaRequest struct {
	Delta *int64 `json:"delta" validate:"required"`
}

type MoneyResponse struct {
	Money int64 `json:"money"`
}

type ExperienceResponse struct {
	Experience int64 `json:"experience"`
}

// balanceOps binds one balance (money or experience) of the player service
type balanceOps struct {
	name     string
	get      func(ctx context.Context, playerID int) (int64, error)
	set      func(ctx context.Context, playerID int, value int64) error
	add      func(ctx context.Context, playerID int, delta int64) (int64, error)
	wrap     func(int64) any
	setReply string
}

func moneyOps(svc player.Service) balanceOps {
	return balanceOps{
		name: "money",
		get: func(ctx context.Context, playerID int) (int64, error) {
			return svc.GetMoney(ctx, playerID)
		},
		set: func(ctx context.Context, playerID int, value int64) error {
			return svc.SetMoney(ctx, playerID, value)
		},
		add: func(ctx context.Context, playerID int, delta int64) (int64, error) {
			return svc.AddMoney(ctx, playerID, delta)
		},
		wrap:     func(v int64) any { return MoneyResponse{Money: v} },
		setReply: MsgMoneySet,
	}
}

func experienceOps(svc player.Service) balanceOps {
	return balanceOps{
		name: "experience",
		get: func(ctx context.Context, playerID int) (int64, error) {
			return svc.GetExperience(ctx, playerID)
		},
		set: func(ctx context.Context, playerID int, value int64) error {
			return svc.SetExperience(ctx, playerID, value)
		},
		add: func(ctx context.Context, playerID int, delta int64) (int64, error) {
			return svc.AddExperience(ctx, playerID, delta)
		},
		wrap:     func(v int64) any { return ExperienceResponse{Experience: v} },
		setReply: MsgExperienceSet,
	}
}

func handleGetBalance(ops balanceOps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetIntParam(r, w, ParamPlayerID)
		if !ok {
			return
		}

		value, err := ops.get(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get "+ops.name, err)
			return
		}
		respondJSON(w, http.StatusOK, ops.wrap(value))
	}
}

func handleSetBalance(ops balanceOps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetIntParam(r, w, ParamPlayerID)
		if !ok {
			return
		}

		var req SetValueRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set "+ops.name); err != nil {
			return
		}

		if err := ops.set(r.Context(), playerID, *req.Value); err != nil {
			respondServiceError(w, r, "Set "+ops.name, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: ops.setReply})
	}
}

func handleAddBalance(ops balanceOps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetIntParam(r, w, ParamPlayerID)
		if !ok {
			return
		}

		var req AddDeltaRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add "+ops.name); err != nil {
			return
		}

		value, err := ops.add(r.Context(), playerID, *req.Delta)
		if err != nil {
			respondServiceError(w, r, "Add "+ops.name, err)
			return
		}
		respondJSON(w, http.StatusOK, ops.wrap(value))
	}
}

// HandleGetMoney returns a player's balance
func HandleGetMoney(svc player.Service) http.HandlerFunc {
	return handleGetBalance(moneyOps(svc))
}

// HandleSetMoney overwrites a player's balance
func HandleSetMoney(svc player.Service) http.HandlerFunc {
	return handleSetBalance(moneyOps(svc))
}

// HandleAddMoney applies a signed delta to a player's balance and returns the new balance
func HandleAddMoney(svc player.Service) http.HandlerFunc {
	return handleAddBalance(moneyOps(svc))
}

func HandleGetExperience(svc player.Service) http.HandlerFunc {
	return handleGetBalance(experienceOps(svc))
}

func HandleSetExperience(svc player.Service) http.HandlerFunc {
	return handleSetBalance(experienceOps(svc))
}

func HandleAddExperience(svc player.Service) http.HandlerFunc {
	return handleAddBalance(experienceOps(svc))
}

package handler

import (
	"net/http"

	"github.com/osse101/BrandishEconomy_Go/internal/dailybonus"
)

// HandleClaimDaily claims today's daily bonus.
// A second claim on the same day succeeds with a zero reward.
func HandleClaimDaily(svc dailybonus.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetIntParam(r, w, ParamPlayerID)
		if !ok {
			return
		}

		acquired, err := svc.ClaimToday(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Claim daily", err)
			return
		}

		respondJSON(w, http.StatusOK, acquired)
	}
}

// HandleGetDailyStreak returns the streak a player would see right now
func HandleGetDailyStreak(svc dailybonus.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetIntParam(r, w, ParamPlayerID)
		if !ok {
			return
		}

		streak, err := svc.GetDailyStreak(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get daily streak", err)
			return
		}
		respondJSON(w, http.StatusOK, streak)
	}
}

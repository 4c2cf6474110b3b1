package handler

import (
	"net/http"

	"github.com/osse101/BrandishEconomy_Go/internal/inventory"
)

type ModifyItemRequest struct {
	Delta *int `json:"delta" validate:"required,min=-1000000,max=1000000"`
}

// HandleGetInventory lists every line of a player's inventory
func HandleGetInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetIntParam(r, w, ParamPlayerID)
		if !ok {
			return
		}

		entries, err := svc.GetAllItems(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get inventory", err)
			return
		}
		respondJSON(w, http.StatusOK, entries)
	}
}

// HandleGetInventoryItem returns one inventory line
func HandleGetInventoryItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetIntParam(r, w, ParamPlayerID)
		if !ok {
			return
		}
		itemID, ok := GetIntParam(r, w, ParamItemID)
		if !ok {
			return
		}

		entry, err := svc.GetItem(r.Context(), playerID, itemID)
		if err != nil {
			respondServiceError(w, r, "Get inventory item", err)
			return
		}
		respondJSON(w, http.StatusOK, entry)
	}
}

// HandleModifyItem adds or removes items from a player's inventory
func HandleModifyItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetIntParam(r, w, ParamPlayerID)
		if !ok {
			return
		}
		itemID, ok := GetIntParam(r, w, ParamItemID)
		if !ok {
			return
		}

		var req ModifyItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Modify item"); err != nil {
			return
		}

		if err := svc.ModifyItem(r.Context(), playerID, itemID, *req.Delta); err != nil {
			respondServiceError(w, r, "Modify item", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgInventoryDone})
	}
}

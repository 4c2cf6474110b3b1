package handler

import (
	"net/http"

	"github.com/osse101/BrandishEconomy_Go/internal/item"
)

type CreateItemRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=100,excludesall=\x00\n\r\t"`
	Description string `json:"description" validate:"max=1000"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,notblank,max=100,excludesall=\x00\n\r\t"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

// HandleCreateItem adds an item to the catalog
func HandleCreateItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
			return
		}

		id, err := svc.CreateItem(r.Context(), req.Name, req.Description)
		if err != nil {
			respondServiceError(w, r, "Create item", err)
			return
		}
		respondJSON(w, http.StatusCreated, IDResponse{ID: id})
	}
}

// HandleGetItems lists the catalog
func HandleGetItems(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetItems(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get items", err)
			return
		}
		respondJSON(w, http.StatusOK, items)
	}
}

func HandleGetItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := GetIntParam(r, w, ParamItemID)
		if !ok {
			return
		}

		it, err := svc.GetItem(r.Context(), itemID)
		if err != nil {
			respondServiceError(w, r, "Get item", err)
			return
		}
		respondJSON(w, http.StatusOK, it)
	}
}

// HandleUpdateItem patches the fields present in the body
func HandleUpdateItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := GetIntParam(r, w, ParamItemID)
		if !ok {
			return
		}

		var req UpdateItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update item"); err != nil {
			return
		}

		if err := svc.UpdateItem(r.Context(), itemID, req.Name, req.Description); err != nil {
			respondServiceError(w, r, "Update item", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemUpdated})
	}
}

// HandleDeleteItem removes an item and every inventory line holding it
func HandleDeleteItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := GetIntParam(r, w, ParamItemID)
		if !ok {
			return
		}

		if err := svc.DeleteItem(r.Context(), itemID); err != nil {
			respondServiceError(w, r, "Delete item", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemDeleted})
	}
}

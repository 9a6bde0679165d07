package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/derangga/laundry-app-sub001/common"
	"github.com/derangga/laundry-app-sub001/model"
	"github.com/derangga/laundry-app-sub001/service"
)

type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	items, err := h.catalog.List(r.Context())
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not list services", err)
	}
	if items == nil {
		items = []*model.ServiceItem{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(items)
	return nil
}

func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateServiceItemRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	item, err := h.catalog.Create(r.Context(), &req)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create service", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
	return nil
}

func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid service id", nil)
	}

	var req model.CreateServiceItemRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	item, err := h.catalog.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.NewAppError(http.StatusNotFound, "Service not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not update service", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(item)
	return nil
}

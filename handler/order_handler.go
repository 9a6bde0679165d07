package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/derangga/laundry-app-sub001/common"
	"github.com/derangga/laundry-app-sub001/model"
	"github.com/derangga/laundry-app-sub001/service"
)

type OrderHandler struct {
	orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateOrderRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	order, err := h.orders.Create(&req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.NewAppError(http.StatusUnprocessableEntity, "Unknown customer or service in order", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not create order", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
	return nil
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid order id", nil)
	}

	order, err := h.orders.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.NewAppError(http.StatusNotFound, "Order not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve order", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(order)
	return nil
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid order id", nil)
	}

	var req model.UpdateOrderStatusRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	order, err := h.orders.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.NewAppError(http.StatusNotFound, "Order not found", nil)
		}
		if errors.Is(err, service.ErrInvalidTransition) {
			return common.NewAppError(http.StatusConflict, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not update order", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(order)
	return nil
}

func (h *OrderHandler) Receipt(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid order id", nil)
	}

	receipt, err := h.orders.Receipt(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.NewAppError(http.StatusNotFound, "Order not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not assemble receipt", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(receipt)
	return nil
}

// DailySummary reports order volume and completed revenue for one day.
// Defaults to today when no date parameter is given.
func (h *OrderHandler) DailySummary(w http.ResponseWriter, r *http.Request) *common.AppError {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", nil)
	}

	summary, err := h.orders.DailySummary(date)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not compute summary", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(summary)
	return nil
}

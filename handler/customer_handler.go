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

type CustomerHandler struct {
	customers *service.CustomerService
}

func NewCustomerHandler(customers *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateCustomerRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	customer, err := h.customers.Create(&req)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create customer", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(customer)
	return nil
}

// Search lists customers matching the q parameter by name or phone.
func (h *CustomerHandler) Search(w http.ResponseWriter, r *http.Request) *common.AppError {
	customers, err := h.customers.Search(r.URL.Query().Get("q"))
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not search customers", err)
	}
	if customers == nil {
		customers = []*model.Customer{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(customers)
	return nil
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid customer id", nil)
	}

	customer, err := h.customers.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.NewAppError(http.StatusNotFound, "Customer not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve customer", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(customer)
	return nil
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid customer id", nil)
	}

	var req model.CreateCustomerRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	customer, err := h.customers.Update(id, &req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.NewAppError(http.StatusNotFound, "Customer not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not update customer", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(customer)
	return nil
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid customer id", nil)
	}

	if err := h.customers.Delete(id); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not delete customer", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

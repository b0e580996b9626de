package v1

import (
	"errors"
	"net/http"

	"storefront-gateway/internal/usecase"
	"storefront-gateway/pkg/utils"

	"github.com/goccy/go-json"
)

type OrderHandler struct {
	checkout *usecase.CheckoutUsecase
}

func NewOrderHandler(checkout *usecase.CheckoutUsecase) *OrderHandler {
	return &OrderHandler{checkout: checkout}
}

type checkoutRequest struct {
	AddressID string `json:"addressId"`
	Note      string `json:"note"`
}

func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	order, err := h.checkout.Checkout(r.Context(), req.AddressID, req.Note)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyCart) {
			utils.WriteError(w, http.StatusBadRequest, "Cart is empty")
			return
		}
		writeUpstreamError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.checkout.MyOrders(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, orders)
}

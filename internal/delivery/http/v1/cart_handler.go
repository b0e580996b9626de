package v1

import (
	"net/http"

	"storefront-gateway/internal/usecase"
	"storefront-gateway/pkg/utils"

	"github.com/goccy/go-json"
)

type CartHandler struct {
	cart *usecase.CartStore
}

func NewCartHandler(cart *usecase.CartStore) *CartHandler {
	return &CartHandler{cart: cart}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.cart.Snapshot())
}

type addToCartRequest struct {
	Item usecase.RawPayload `json:"item"`
	Qty  int                `json:"qty"`
}

func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if len(req.Item) == 0 {
		utils.WriteError(w, http.StatusBadRequest, "Item payload is required")
		return
	}
	if req.Qty == 0 {
		req.Qty = 1
	}

	state := h.cart.AddItem(req.Item, req.Qty)
	utils.WriteJSON(w, http.StatusOK, state)
}

type setQtyRequest struct {
	Qty int `json:"qty"`
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	lineID := r.PathValue("lineId")

	var req setQtyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	state := h.cart.SetQty(lineID, req.Qty)
	utils.WriteJSON(w, http.StatusOK, state)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	lineID := r.PathValue("lineId")
	state := h.cart.RemoveItem(lineID)
	utils.WriteJSON(w, http.StatusOK, state)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.cart.Clear())
}

type couponRequest struct {
	Code string `json:"code"`
}

func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req couponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	code := utils.NormalizeCode(req.Code)
	if code == "" {
		utils.WriteError(w, http.StatusBadRequest, "Coupon code is required")
		return
	}

	utils.WriteJSON(w, http.StatusOK, h.cart.ApplyCoupon(code))
}

func (h *CartHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.cart.RemoveCoupon())
}

type cartSummary struct {
	Count    int     `json:"count"`
	Subtotal float64 `json:"subtotal"`
	Coupon   *string `json:"coupon"`
}

// GetSummary serves the lightweight header-badge view of the cart.
func (h *CartHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	state := h.cart.Snapshot()
	utils.WriteJSON(w, http.StatusOK, cartSummary{
		Count:    state.Count(),
		Subtotal: state.Subtotal(),
		Coupon:   state.Coupon,
	})
}

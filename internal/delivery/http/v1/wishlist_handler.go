package v1

import (
	"net/http"

	"storefront-gateway/internal/usecase"
	"storefront-gateway/pkg/utils"

	"github.com/goccy/go-json"
)

type WishlistHandler struct {
	wishlist *usecase.WishlistStore
}

func NewWishlistHandler(wishlist *usecase.WishlistStore) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist}
}

type wishlistView struct {
	IDs   []string `json:"ids"`
	Count int      `json:"count"`
}

func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, wishlistView{
		IDs:   h.wishlist.IDs(),
		Count: h.wishlist.Count(),
	})
}

type toggleRequest struct {
	ProductID string `json:"productId"`
}

type toggleResponse struct {
	ProductID  string `json:"productId"`
	Wishlisted bool   `json:"wishlisted"`
	Count      int    `json:"count"`
}

func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.ProductID == "" {
		utils.WriteError(w, http.StatusBadRequest, "productId is required")
		return
	}

	wishlisted := h.wishlist.Toggle(req.ProductID)
	utils.WriteJSON(w, http.StatusOK, toggleResponse{
		ProductID:  req.ProductID,
		Wishlisted: wishlisted,
		Count:      h.wishlist.Count(),
	})
}

func (h *WishlistHandler) IsWishlisted(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productId")
	utils.WriteJSON(w, http.StatusOK, map[string]bool{
		"wishlisted": h.wishlist.IsWishlisted(productID),
	})
}

package v1

import (
	"net/http"

	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/usecase"
	"storefront-gateway/pkg/utils"

	"github.com/goccy/go-json"
)

type CatalogHandler struct {
	usecase *usecase.CatalogUsecase
}

func NewCatalogHandler(usecase *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{usecase: usecase}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ProductFilter{
		Category: q.Get("category"),
		Brand:    q.Get("brand"),
		Search:   q.Get("search"),
		Sort:     q.Get("sort"),
		Page:     utils.ParseInt(q.Get("page"), 1),
		Limit:    utils.ParseInt(q.Get("limit"), 20),
	}

	list, err := h.usecase.ListProducts(r.Context(), filter)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, list)
}

func (h *CatalogHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	product, err := h.usecase.GetProductByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) GetProductDetails(w http.ResponseWriter, r *http.Request) {
	product, err := h.usecase.GetProductBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) GetRelated(w http.ResponseWriter, r *http.Request) {
	products, err := h.usecase.GetRelatedProducts(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.usecase.GetReviews(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, reviews)
}

func (h *CatalogHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	var in domain.ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	review, err := h.usecase.AddReview(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, review)
}

func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.usecase.GetCategories(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) GetBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.usecase.GetBrands(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, brands)
}

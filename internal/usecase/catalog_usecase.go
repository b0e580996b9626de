package usecase

import (
	"context"
	"fmt"

	"storefront-gateway/config"
	"storefront-gateway/internal/domain"
	"storefront-gateway/pkg/cache"
)

type catalogAPI interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) (*domain.ProductList, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	GetRelatedProducts(ctx context.Context, productID string) ([]domain.Product, error)
	ListReviews(ctx context.Context, productID string) ([]domain.Review, error)
	AddReview(ctx context.Context, productID string, in domain.ReviewInput) (*domain.Review, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListBrands(ctx context.Context) ([]domain.Brand, error)
}

// CatalogUsecase proxies catalog reads to the remote API with a
// read-through cache. The gateway never owns catalog data; cached
// entries just absorb repeated page loads.
type CatalogUsecase struct {
	api   catalogAPI
	cache cache.CacheService
	cfg   *config.Config
}

func NewCatalogUsecase(api catalogAPI, cache cache.CacheService, cfg *config.Config) *CatalogUsecase {
	return &CatalogUsecase{
		api:   api,
		cache: cache,
		cfg:   cfg,
	}
}

func (u *CatalogUsecase) ListProducts(ctx context.Context, filter domain.ProductFilter) (*domain.ProductList, error) {
	key := fmt.Sprintf("products:%s:%s:%s:%s:%d:%d",
		filter.Category, filter.Brand, filter.Search, filter.Sort, filter.Page, filter.Limit)
	if val, found := u.cache.Get(key); found {
		return val.(*domain.ProductList), nil
	}

	list, err := u.api.ListProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	u.cache.Set(key, list, u.cfg.CacheProductTTL)
	return list, nil
}

func (u *CatalogUsecase) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	key := "product:id:" + id
	if val, found := u.cache.Get(key); found {
		return val.(*domain.Product), nil
	}

	product, err := u.api.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.cache.Set(key, product, u.cfg.CacheProductTTL)
	return product, nil
}

func (u *CatalogUsecase) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	key := "product:slug:" + slug
	if val, found := u.cache.Get(key); found {
		return val.(*domain.Product), nil
	}

	product, err := u.api.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	u.cache.Set(key, product, u.cfg.CacheProductTTL)
	return product, nil
}

func (u *CatalogUsecase) GetRelatedProducts(ctx context.Context, productID string) ([]domain.Product, error) {
	key := "product:related:" + productID
	if val, found := u.cache.Get(key); found {
		return val.([]domain.Product), nil
	}

	products, err := u.api.GetRelatedProducts(ctx, productID)
	if err != nil {
		return nil, err
	}

	u.cache.Set(key, products, u.cfg.CacheProductTTL)
	return products, nil
}

func (u *CatalogUsecase) GetReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	key := "reviews:" + productID
	if val, found := u.cache.Get(key); found {
		return val.([]domain.Review), nil
	}

	reviews, err := u.api.ListReviews(ctx, productID)
	if err != nil {
		return nil, err
	}

	u.cache.Set(key, reviews, u.cfg.CacheReviewTTL)
	return reviews, nil
}

func (u *CatalogUsecase) AddReview(ctx context.Context, productID string, in domain.ReviewInput) (*domain.Review, error) {
	review, err := u.api.AddReview(ctx, productID, in)
	if err != nil {
		return nil, err
	}

	// The list for this product is stale now.
	u.cache.Delete("reviews:" + productID)
	return review, nil
}

func (u *CatalogUsecase) GetCategories(ctx context.Context) ([]domain.Category, error) {
	key := "categories:all"
	if val, found := u.cache.Get(key); found {
		return val.([]domain.Category), nil
	}

	categories, err := u.api.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	u.cache.Set(key, categories, u.cfg.CacheCategoryTTL)
	return categories, nil
}

func (u *CatalogUsecase) GetBrands(ctx context.Context) ([]domain.Brand, error) {
	key := "brands:all"
	if val, found := u.cache.Get(key); found {
		return val.([]domain.Brand), nil
	}

	brands, err := u.api.ListBrands(ctx)
	if err != nil {
		return nil, err
	}

	u.cache.Set(key, brands, u.cfg.CacheCategoryTTL)
	return brands, nil
}

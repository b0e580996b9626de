package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"storefront-gateway/internal/domain"
)

// Catalog read endpoints. All of these are anonymous; the bearer token is
// attached anyway when present, which the remote API ignores for reads.

func (c *Client) ListProducts(ctx context.Context, filter domain.ProductFilter) (*domain.ProductList, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Brand != "" {
		query.Set("brand", filter.Brand)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Sort != "" {
		query.Set("sort", filter.Sort)
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	var list domain.ProductList
	if err := c.get(ctx, "/products", query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := c.get(ctx, "/product/"+url.PathEscape(id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	var product domain.Product
	if err := c.get(ctx, "/products/"+url.PathEscape(slug), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) GetRelatedProducts(ctx context.Context, productID string) ([]domain.Product, error) {
	var products []domain.Product
	path := fmt.Sprintf("/products/%s/related", url.PathEscape(productID))
	if err := c.get(ctx, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) ListReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	var reviews []domain.Review
	path := fmt.Sprintf("/products/%s/reviews", url.PathEscape(productID))
	if err := c.get(ctx, path, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) AddReview(ctx context.Context, productID string, in domain.ReviewInput) (*domain.Review, error) {
	var review domain.Review
	path := fmt.Sprintf("/products/%s/reviews", url.PathEscape(productID))
	if err := c.post(ctx, path, in, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.get(ctx, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	var brands []domain.Brand
	if err := c.get(ctx, "/brands", nil, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

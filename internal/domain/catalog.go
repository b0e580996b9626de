package domain

import "time"

// Wire shapes for the remote storefront API. The gateway consumes these;
// it never owns them. Field sets mirror what the catalog endpoints return.

type Category struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	ParentID *string    `json:"parentId"`
	Children []Category `json:"children"`
	Icon     string     `json:"icon"`
	Image    string     `json:"image"`
	IsActive bool       `json:"isActive"`
}

type Brand struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
}

type Product struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Slug         string            `json:"slug"`
	Description  string            `json:"description"`
	Category     string            `json:"category"`
	Brand        string            `json:"brand"`
	RegularPrice *float64          `json:"regularPrice"`
	SalePrice    *float64          `json:"salePrice"`
	Stock        *int              `json:"stock"`
	SKU          *string           `json:"sku"`
	Images       []string          `json:"images"`
	Attributes   map[string]string `json:"attributes"`
	Variants     []Variant         `json:"variants"`
	IsFeatured   bool              `json:"isFeatured"`
	IsActive     bool              `json:"isActive"`
}

type Variant struct {
	ID           string            `json:"id"`
	ProductID    string            `json:"productId"`
	Name         string            `json:"name"`
	SKU          *string           `json:"sku"`
	RegularPrice *float64          `json:"regularPrice"`
	SalePrice    *float64          `json:"salePrice"`
	Stock        *int              `json:"stock"`
	Attributes   map[string]string `json:"attributes"`
	Images       []string          `json:"images"`
}

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ProductList is a paginated product listing response.
type ProductList struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// ProductFilter carries listing query parameters through to the remote API.
type ProductFilter struct {
	Category string
	Brand    string
	Search   string
	Sort     string
	Page     int
	Limit    int
}

// Order shapes: placement goes straight to the remote API; the gateway
// only shuttles them.
type OrderItemInput struct {
	ProductID string  `json:"productId"`
	VariantID *string `json:"variantId,omitempty"`
	Qty       int     `json:"qty"`
}

type OrderInput struct {
	Items     []OrderItemInput `json:"items"`
	Coupon    *string          `json:"coupon,omitempty"`
	AddressID string           `json:"addressId,omitempty"`
	Note      string           `json:"note,omitempty"`
}

type Order struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	Coupon    *string   `json:"coupon"`
	CreatedAt time.Time `json:"createdAt"`
}

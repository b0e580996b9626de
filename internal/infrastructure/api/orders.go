package api

import (
	"context"

	"storefront-gateway/internal/domain"
)

// PlaceOrder submits a checkout to the remote API. Pricing, stock and
// coupon validation all happen server-side; the gateway only shuttles
// the cart contents across.
func (c *Client) PlaceOrder(ctx context.Context, in domain.OrderInput) (*domain.Order, error) {
	var order domain.Order
	if err := c.post(ctx, "/orders", in, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) MyOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.get(ctx, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

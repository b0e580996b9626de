package usecase

import (
	"context"
	"errors"

	"storefront-gateway/internal/domain"
)

// ErrEmptyCart is returned when checkout is attempted with no line items.
var ErrEmptyCart = errors.New("cart is empty")

type ordersAPI interface {
	PlaceOrder(ctx context.Context, in domain.OrderInput) (*domain.Order, error)
	MyOrders(ctx context.Context) ([]domain.Order, error)
}

// CheckoutUsecase turns the local cart into a remote order. The remote
// API re-prices, re-checks stock and validates the coupon; the gateway's
// snapshot is only user intent. On success the local cart is cleared.
type CheckoutUsecase struct {
	cart *CartStore
	api  ordersAPI
}

func NewCheckoutUsecase(cart *CartStore, api ordersAPI) *CheckoutUsecase {
	return &CheckoutUsecase{cart: cart, api: api}
}

func (u *CheckoutUsecase) Checkout(ctx context.Context, addressID, note string) (*domain.Order, error) {
	state := u.cart.Snapshot()
	if len(state.Items) == 0 {
		return nil, ErrEmptyCart
	}

	in := domain.OrderInput{
		Items:     make([]domain.OrderItemInput, 0, len(state.Items)),
		Coupon:    state.Coupon,
		AddressID: addressID,
		Note:      note,
	}
	for _, item := range state.Items {
		in.Items = append(in.Items, domain.OrderItemInput{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Qty:       item.Qty,
		})
	}

	order, err := u.api.PlaceOrder(ctx, in)
	if err != nil {
		return nil, err
	}

	u.cart.Clear()
	return order, nil
}

func (u *CheckoutUsecase) MyOrders(ctx context.Context) ([]domain.Order, error) {
	return u.api.MyOrders(ctx)
}

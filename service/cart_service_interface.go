package service

import (
	"context"

	"product-helium-addon/models"
)

// CartServiceInterface defines the contract for cart and checkout operations
type CartServiceInterface interface {
	AddToCart(ctx context.Context, scope Scope, req models.AddToCartRequest) (*models.CartLine, error)
	GetCart(ctx context.Context, scope Scope) (*models.Cart, error)
	Checkout(ctx context.Context, scope Scope) (*models.Order, error)
}

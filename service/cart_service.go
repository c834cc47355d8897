package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"product-helium-addon/addon"
	"product-helium-addon/errx"
	"product-helium-addon/logx"
	"product-helium-addon/models"
	"product-helium-addon/repository"
)

// ErrEmptyCart is returned when checking out a cart without lines
var ErrEmptyCart = errors.New("cart is empty")

// CartService handles the cart and checkout flow. It calls the addon handlers at the
// points where the storefront would fire its cart events.
type CartService struct {
	factory  *AddonFactory
	sessions repository.CartSessionRepositoryInterface
	products repository.ProductRepositoryInterface
	orders   repository.OrderRepositoryInterface
}

// NewCartService creates a new CartService
func NewCartService(
	factory *AddonFactory,
	sessions repository.CartSessionRepositoryInterface,
	products repository.ProductRepositoryInterface,
	orders repository.OrderRepositoryInterface,
) *CartService {
	return &CartService{
		factory:  factory,
		sessions: sessions,
		products: products,
		orders:   orders,
	}
}

// Ensure CartService implements CartServiceInterface
var _ CartServiceInterface = (*CartService)(nil)

// AddToCart adds a product to the session cart, flagging and pricing the helium addon
// when the shopper opted in
func (s *CartService) AddToCart(ctx context.Context, scope Scope, req models.AddToCartRequest) (*models.CartLine, error) {
	logx.Info().Str("session_id", scope.SessionID).Int64("product_id", req.ProductID).Str("helium_add", string(req.HeliumAdd)).
		Msg("🛒 AddToCart: adding product")

	if req.ProductID <= 0 {
		return nil, errx.BadRequest(fmt.Errorf("invalid product_id %d", req.ProductID), "product_id must be greater than 0")
	}
	if req.Quantity < 0 {
		return nil, errx.BadRequest(fmt.Errorf("invalid quantity %d", req.Quantity), "quantity must be greater than 0")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	line := &models.CartLine{
		Key:         uuid.NewString(),
		ProductID:   req.ProductID,
		VariationID: req.VariationID,
		Quantity:    req.Quantity,
	}
	product, err := s.products.GetProduct(ctx, line.LookupID())
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errx.NotFound(err, "product not found")
		}
		return nil, errx.WrapDatabase(err)
	}
	a := s.factory.ForRequest(ctx, scope.Currency, scope.Lang)
	line.Data = cartItem(a, product)

	data := a.AttachOnAdd(ctx, models.CartItemData{}, req.ProductID, string(req.HeliumAdd))
	line.Helium = data.Helium
	a.Decorate(ctx, line)
	line.ItemData = a.ItemData(nil, line)

	stored, err := s.loadSession(ctx, scope.SessionID)
	if err != nil {
		return nil, err
	}
	stored = append(stored, models.SessionValues{
		Key:         line.Key,
		ProductID:   line.ProductID,
		VariationID: line.VariationID,
		Quantity:    line.Quantity,
		HeliumAdd:   data.HeliumAdded(),
	})
	if err := s.sessions.Save(ctx, scope.SessionID, stored); err != nil {
		logx.Error().Err(err).Str("session_id", scope.SessionID).Msg("❌ AddToCart: error saving session")
		return nil, errx.WrapRedis(err)
	}

	logx.Info().Str("line_key", line.Key).Bool("helium", line.HeliumAdded()).Str("price", line.Data.Price.String()).
		Msg("✅ AddToCart: line added")
	return line, nil
}

// GetCart rebuilds the session cart from live products, restoring helium state and totals.
// Lines whose product is no longer available are dropped.
func (s *CartService) GetCart(ctx context.Context, scope Scope) (*models.Cart, error) {
	stored, err := s.loadSession(ctx, scope.SessionID)
	if err != nil {
		return nil, err
	}

	a := s.factory.ForRequest(ctx, scope.Currency, scope.Lang)
	cart := &models.Cart{
		SessionID:   scope.SessionID,
		Currency:    a.ActiveCurrency(),
		Lines:       make([]models.CartLine, 0, len(stored)),
		Subtotal:    decimal.Zero,
		TotalWeight: decimal.Zero,
	}

	for _, values := range stored {
		line, ok := s.restoreLine(ctx, a, values)
		if !ok {
			continue
		}
		qty := decimal.NewFromInt(int64(line.Quantity))
		cart.Subtotal = cart.Subtotal.Add(line.LineTotal())
		cart.TotalWeight = cart.TotalWeight.Add(line.Data.Weight.Mul(qty))
		cart.Lines = append(cart.Lines, *line)
	}
	return cart, nil
}

func (s *CartService) restoreLine(ctx context.Context, a *addon.Addon, values models.SessionValues) (*models.CartLine, bool) {
	line := &models.CartLine{
		Key:         values.Key,
		ProductID:   values.ProductID,
		VariationID: values.VariationID,
		Quantity:    values.Quantity,
	}
	product, err := s.products.GetProduct(ctx, line.LookupID())
	if err != nil {
		logx.Warn().Err(err).Str("line_key", values.Key).Int64("product_id", values.ProductID).
			Msg("⚠️  GetCart: product unavailable, line dropped")
		return nil, false
	}
	line.Data = cartItem(a, product)

	a.Rehydrate(ctx, line, values)
	line.ItemData = a.ItemData(nil, line)
	return line, true
}

// Checkout turns the session cart into an order, annotates helium lines and clears the session.
// A failed annotation is logged and does not fail the checkout.
func (s *CartService) Checkout(ctx context.Context, scope Scope) (*models.Order, error) {
	cart, err := s.GetCart(ctx, scope)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, errx.BadRequest(ErrEmptyCart, ErrEmptyCart.Error())
	}

	order := &models.Order{
		ID:        uuid.New(),
		SessionID: scope.SessionID,
		Currency:  cart.Currency,
		Total:     cart.Subtotal,
		Weight:    cart.TotalWeight,
		Lines:     make([]models.OrderLine, 0, len(cart.Lines)),
	}
	for _, line := range cart.Lines {
		order.Lines = append(order.Lines, models.OrderLine{
			ProductID:   line.ProductID,
			VariationID: line.VariationID,
			Name:        line.Data.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.Data.Price,
			LineTotal:   line.LineTotal(),
			Weight:      line.Data.Weight,
		})
	}

	order, err = s.orders.Create(ctx, order)
	if err != nil {
		logx.Error().Err(err).Str("session_id", scope.SessionID).Msg("❌ Checkout: error creating order")
		return nil, errx.WrapDatabase(err)
	}

	a := s.factory.ForRequest(ctx, scope.Currency, scope.Lang)
	for i := range order.Lines {
		ann, err := a.Annotate(ctx, order.Lines[i].ID, &cart.Lines[i])
		if err != nil {
			logx.Error().Err(err).Int64("order_line_id", order.Lines[i].ID).Msg("❌ Checkout: error annotating order line")
			continue
		}
		if ann != nil {
			order.Lines[i].Meta = append(order.Lines[i].Meta, *ann)
		}
	}

	if err := s.sessions.Clear(ctx, scope.SessionID); err != nil {
		logx.Warn().Err(err).Str("session_id", scope.SessionID).Msg("⚠️  Checkout: cart session not cleared")
	}

	logx.Info().Str("order_id", order.ID.String()).Str("total", order.Total.String()).Msg("✅ Checkout: order placed")
	return order, nil
}

// loadSession returns the stored lines of a session; a missing session is an empty cart
func (s *CartService) loadSession(ctx context.Context, sessionID string) ([]models.SessionValues, error) {
	stored, err := s.sessions.Load(ctx, sessionID)
	if errors.Is(err, repository.ErrCartNotFound) {
		return nil, nil
	}
	if err != nil {
		logx.Error().Err(err).Str("session_id", sessionID).Msg("❌ loadSession: error loading cart session")
		return nil, errx.WrapRedis(err)
	}
	return stored, nil
}

// cartItem prices p in the active currency of a
func cartItem(a *addon.Addon, p *models.Product) *models.CartItem {
	return &models.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     a.ConvertPrice(p.Price),
		Weight:    p.Weight,
	}
}

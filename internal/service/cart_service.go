package service

import (
	"sync"

	"github.com/NoroffFEU/online-shop/internal/domain/entity"
	"github.com/NoroffFEU/online-shop/internal/platform/logger"
)

// CartService owns the session cart. All mutations go through the
// entity's reducer so the four transition kinds stay a closed set.
// Totals are derived from the line items on every read.
type CartService interface {
	AddItem(item entity.CartItem)
	AddProduct(product *entity.Product, quantity int)
	RemoveItem(productID string)
	SetQuantity(productID string, quantity int)
	Clear()

	Items() []entity.CartItem
	TotalQty() int
	TotalCost() float64
	IsEmpty() bool
}

type cartService struct {
	mu   sync.Mutex
	cart *entity.Cart
	log  logger.Logger
}

// NewCartService creates an empty session cart. The cart lives exactly
// as long as the service instance; nothing is persisted.
func NewCartService(log logger.Logger) CartService {
	if log == nil {
		log = logger.NoOp()
	}
	return &cartService{
		cart: entity.NewCart(),
		log:  log,
	}
}

func (s *cartService) AddItem(item entity.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Apply(entity.AddAction(item))
	s.log.Infof("cart: added %q x%d, cart now holds %d items", item.ProductID, item.Quantity, s.cart.TotalQty())
}

// AddProduct snapshots the product at its current effective price and
// adds it as a line item.
func (s *cartService) AddProduct(product *entity.Product, quantity int) {
	if product == nil {
		return
	}
	s.AddItem(entity.CartItem{
		ProductID: product.ID,
		Title:     product.Title,
		UnitPrice: product.EffectivePrice(),
		ImageURL:  product.Image.URL,
		Quantity:  quantity,
	})
}

func (s *cartService) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Apply(entity.RemoveAction(productID))
	s.log.Infof("cart: removed %q", productID)
}

func (s *cartService) SetQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Apply(entity.SetQuantityAction(productID, quantity))
	s.log.Debugf("cart: set %q quantity to %d", productID, quantity)
}

func (s *cartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Apply(entity.ClearAction())
	s.log.Info("cart: cleared")
}

// Items returns a copy of the current lines in first-add order.
func (s *cartService) Items() []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]entity.CartItem, len(s.cart.Items))
	copy(items, s.cart.Items)
	return items
}

func (s *cartService) TotalQty() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalQty()
}

func (s *cartService) TotalCost() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalCost()
}

func (s *cartService) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.IsEmpty()
}

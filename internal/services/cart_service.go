package services

import (
	"pickl/internal/repos"
)

type CartService struct {
	Carts *repos.CartRepo
	Prods *repos.ProductRepo
}

func NewCartService(carts *repos.CartRepo, prods *repos.ProductRepo) *CartService {
	return &CartService{Carts: carts, Prods: prods}
}

// Add puts a product in the session's bag. Adding the same product
// again leaves the bag unchanged.
func (s *CartService) Add(sessionID, productID string) error {
	// Entries reference catalog rows, so the product must exist.
	if _, err := s.Prods.Get(productID); err != nil {
		return err
	}
	return s.Carts.Add(sessionID, productID)
}

// Remove is a no-op for products not in the bag.
func (s *CartService) Remove(sessionID, productID string) error {
	return s.Carts.Remove(sessionID, productID)
}

type CartView struct {
	Items []repos.CartItemRow
	Total float64
}

// View returns the bag plus its total, recomputed on every read.
func (s *CartService) View(sessionID string) (CartView, error) {
	items, err := s.Carts.Items(sessionID)
	if err != nil {
		return CartView{}, err
	}
	total := 0.0
	for _, it := range items {
		total += it.Price
	}
	return CartView{Items: items, Total: total}, nil
}

func (s *CartService) Count(sessionID string) (int, error) {
	return s.Carts.Count(sessionID)
}

// Checkout empties the bag. No payment happens anywhere; the caller
// shows the simulated confirmation and returns to the feed.
func (s *CartService) Checkout(sessionID string) error {
	return s.Carts.Clear(sessionID)
}

package cart

import (
	"context"
	"log"

	"sifted_back_end/internal/models"
)

// Store holds shopping carts keyed by an anonymous session id. Every mutation
// is written through to Storage so the cart survives a reload; a cart whose
// stored form is missing or corrupt comes back empty rather than erroring.
type Store struct {
	storage Storage
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

func (s *Store) load(ctx context.Context, cartID string) []models.CartItem {
	items, err := s.storage.Load(ctx, cartID)
	if err != nil {
		log.Printf("⚠️ Cart %s unreadable, starting empty: %v", cartID, err)
		return nil
	}
	return items
}

func (s *Store) save(ctx context.Context, cartID string, items []models.CartItem) {
	if err := s.storage.Save(ctx, cartID, items); err != nil {
		log.Printf("⚠️ Cart %s not persisted: %v", cartID, err)
	}
}

// Items returns the current cart contents.
func (s *Store) Items(ctx context.Context, cartID string) []models.CartItem {
	return s.load(ctx, cartID)
}

// AddToCart increments the product's quantity by one, inserting it with
// quantity 1 when it is not in the cart yet. It always succeeds.
func (s *Store) AddToCart(ctx context.Context, cartID string, p models.Product) []models.CartItem {
	items := s.load(ctx, cartID)

	found := false
	for i := range items {
		if items[i].ProductID == p.ID.String() {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{
			ProductID:   p.ID.String(),
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
			ImageURL:    p.ImageURL,
			Quantity:    1,
		})
	}

	s.save(ctx, cartID, items)
	return items
}

// RemoveFromCart decrements the product's quantity by one and drops the line
// entirely when it reaches zero. Removing an absent product is a no-op.
func (s *Store) RemoveFromCart(ctx context.Context, cartID, productID string) []models.CartItem {
	items := s.load(ctx, cartID)

	for i := range items {
		if items[i].ProductID != productID {
			continue
		}
		if items[i].Quantity > 1 {
			items[i].Quantity--
		} else {
			items = append(items[:i], items[i+1:]...)
		}
		s.save(ctx, cartID, items)
		return items
	}

	return items
}

// GetItemQuantity returns the quantity for a product, 0 when absent.
func (s *Store) GetItemQuantity(ctx context.Context, cartID, productID string) int {
	for _, item := range s.load(ctx, cartID) {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}

// Clear empties the cart. Used after a successful order submission and by the
// explicit "kosongkan keranjang" action.
func (s *Store) Clear(ctx context.Context, cartID string) {
	if err := s.storage.Clear(ctx, cartID); err != nil {
		log.Printf("⚠️ Cart %s not cleared: %v", cartID, err)
	}
}

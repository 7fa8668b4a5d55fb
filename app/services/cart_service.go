package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gbvars988/SoilFullStack/app/models"
	"github.com/gbvars988/SoilFullStack/app/repositories"
)

// CartService implements the cart semantics: lazy cart creation, accumulate
// on add, exact set on update with delete-on-zero, and bulk clear.
type CartService struct {
	carts *repositories.CartRepository
}

func NewCartService(carts *repositories.CartRepository) *CartService {
	return &CartService{carts: carts}
}

// AddItem finds or creates the user's cart, then creates the (cart, product)
// line with the given quantity, or adds the quantity to a pre-existing line.
// Returns the resulting line with its product preloaded.
func (s *CartService) AddItem(username string, productID uint, quantity int) (models.CartItem, error) {
	cart, err := s.carts.FindOrCreate(username)
	if err != nil {
		return models.CartItem{}, err
	}

	if _, err := s.carts.UpsertItem(cart.CartID, productID, quantity); err != nil {
		return models.CartItem{}, err
	}

	return s.carts.ItemWithProduct(cart.CartID, productID)
}

// GetCart returns the cart's lines joined with product details; an empty
// slice (never nil) when the cart has no lines, so the wire shape stays [].
// ErrCartNotFound when no cart row exists for the username.
func (s *CartService) GetCart(username string) ([]models.CartItem, error) {
	cart, err := s.carts.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := s.carts.ItemsWithProducts(cart.CartID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items, nil
}

// RemoveItem deletes exactly one line.
func (s *CartService) RemoveItem(username string, productID uint) error {
	cart, err := s.carts.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCartNotFound
	}
	if err != nil {
		return err
	}

	if _, err := s.carts.FindItem(cart.CartID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartItemNotFound
		}
		return err
	}

	return s.carts.DeleteItem(cart.CartID, productID)
}

// UpdateQuantity sets a line to the exact given quantity. A quantity <= 0
// deletes the line instead; a line must never persist at zero or below.
// The removed return value tells the caller which path was taken.
func (s *CartService) UpdateQuantity(username string, productID uint, quantity int) (item models.CartItem, removed bool, err error) {
	cart, err := s.carts.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CartItem{}, false, ErrCartNotFound
	}
	if err != nil {
		return models.CartItem{}, false, err
	}

	item, err = s.carts.FindItem(cart.CartID, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CartItem{}, false, ErrCartItemNotFound
	}
	if err != nil {
		return models.CartItem{}, false, err
	}

	if quantity <= 0 {
		if err := s.carts.DeleteItem(cart.CartID, productID); err != nil {
			return models.CartItem{}, false, err
		}
		return models.CartItem{}, true, nil
	}

	item.Quantity = quantity
	if err := s.carts.SaveItem(&item); err != nil {
		return models.CartItem{}, false, err
	}
	return item, false, nil
}

// ClearCart deletes all lines of the user's cart. Clearing an empty cart
// succeeds; a missing cart is ErrCartNotFound.
func (s *CartService) ClearCart(username string) error {
	cart, err := s.carts.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCartNotFound
	}
	if err != nil {
		return err
	}

	return s.carts.ClearItems(cart.CartID)
}

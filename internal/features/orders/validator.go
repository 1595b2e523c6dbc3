package orders

import (
	"errors"

	"github.com/xyz-asif/storefront/internal/features/carts"
)

var (
	ErrInvalidAmount  = errors.New("amount must be greater than zero")
	ErrMissingAddress = errors.New("address is required")
	ErrInvalidStatus  = errors.New("status must be one of pending, processing, shipped, delivered, cancelled")
	ErrEmptyUpdate    = errors.New("no fields to update")
)

var validStatuses = map[string]bool{
	StatusPending:    true,
	StatusProcessing: true,
	StatusShipped:    true,
	StatusDelivered:  true,
	StatusCancelled:  true,
}

func ValidateCreate(req *CreateOrderRequest) error {
	if err := carts.ValidateItems(req.Products); err != nil {
		return err
	}
	if len(req.Products) == 0 {
		return carts.ErrNoProducts
	}
	if req.Amount <= 0 {
		return ErrInvalidAmount
	}
	if len(req.Address) == 0 {
		return ErrMissingAddress
	}
	return nil
}

// ValidateUpdate checks req and returns the $set document for it.
func ValidateUpdate(req *UpdateOrderRequest) (map[string]interface{}, error) {
	set := map[string]interface{}{}
	if req.Products != nil {
		if err := carts.ValidateItems(*req.Products); err != nil {
			return nil, err
		}
		set["products"] = *req.Products
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, ErrInvalidAmount
		}
		set["amount"] = *req.Amount
	}
	if req.Address != nil {
		if len(req.Address) == 0 {
			return nil, ErrMissingAddress
		}
		set["address"] = req.Address
	}
	if req.Status != nil {
		if !validStatuses[*req.Status] {
			return nil, ErrInvalidStatus
		}
		set["status"] = *req.Status
	}
	if len(set) == 0 {
		return nil, ErrEmptyUpdate
	}
	return set, nil
}

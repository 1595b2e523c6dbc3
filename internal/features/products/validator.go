package products

import (
	"errors"
	"strings"
)

const maxTitleLength = 200

var (
	ErrMissingTitle = errors.New("title is required")
	ErrMissingDesc  = errors.New("desc is required")
	ErrInvalidPrice = errors.New("price must be greater than zero")
	ErrTitleTooLong = errors.New("title cannot exceed 200 characters")
	ErrEmptyUpdate  = errors.New("no fields to update")
)

func ValidateCreate(req *CreateProductRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	req.Desc = strings.TrimSpace(req.Desc)
	if req.Title == "" {
		return ErrMissingTitle
	}
	if len(req.Title) > maxTitleLength {
		return ErrTitleTooLong
	}
	if req.Desc == "" {
		return ErrMissingDesc
	}
	if req.Price <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

// ValidateUpdate checks req and returns the $set document for it.
func ValidateUpdate(req *UpdateProductRequest) (map[string]interface{}, error) {
	set := map[string]interface{}{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ErrMissingTitle
		}
		if len(title) > maxTitleLength {
			return nil, ErrTitleTooLong
		}
		set["title"] = title
	}
	if req.Desc != nil {
		desc := strings.TrimSpace(*req.Desc)
		if desc == "" {
			return nil, ErrMissingDesc
		}
		set["desc"] = desc
	}
	if req.Img != nil {
		set["img"] = strings.TrimSpace(*req.Img)
	}
	if req.Categories != nil {
		set["categories"] = nonNil(*req.Categories)
	}
	if req.Size != nil {
		set["size"] = nonNil(*req.Size)
	}
	if req.Color != nil {
		set["color"] = nonNil(*req.Color)
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, ErrInvalidPrice
		}
		set["price"] = *req.Price
	}
	if req.InStock != nil {
		set["inStock"] = *req.InStock
	}
	if len(set) == 0 {
		return nil, ErrEmptyUpdate
	}
	return set, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

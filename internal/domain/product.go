package domain

import (
	"strings"
	"time"
)

// Product is a catalog item. Price and Stock are optional; a nil pointer
// means the value was never provided, which is distinct from zero.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Stock       *int      `json:"stock,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Clone returns an owned copy. Optional fields are re-pointed so the caller
// can never reach store-internal state through the result.
func (p Product) Clone() Product {
	c := p
	if p.Price != nil {
		v := *p.Price
		c.Price = &v
	}
	if p.Stock != nil {
		v := *p.Stock
		c.Stock = &v
	}
	return c
}

// ProductInput carries the caller-supplied fields for a new product.
// The registry assigns the id.
type ProductInput struct {
	Name        string   `json:"name"`
	SKU         string   `json:"sku,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Description string   `json:"description,omitempty"`
}

func (in ProductInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewValidationError("product name is required")
	}
	if in.Price != nil && *in.Price < 0 {
		return NewValidationError("product price must not be negative")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return NewValidationError("product stock must not be negative")
	}
	return nil
}

// ProductPatch is a partial update. Nil fields are left untouched.
type ProductPatch struct {
	Name        *string  `json:"name,omitempty"`
	SKU         *string  `json:"sku,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Description *string  `json:"description,omitempty"`
}

func (p ProductPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return NewValidationError("product name must not be empty")
	}
	if p.Price != nil && *p.Price < 0 {
		return NewValidationError("product price must not be negative")
	}
	if p.Stock != nil && *p.Stock < 0 {
		return NewValidationError("product stock must not be negative")
	}
	return nil
}

// Apply merges the provided fields into p and bumps UpdatedAt.
func (p *Product) Apply(patch ProductPatch) {
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.Price != nil {
		v := *patch.Price
		p.Price = &v
	}
	if patch.Stock != nil {
		v := *patch.Stock
		p.Stock = &v
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	p.UpdatedAt = time.Now()
}

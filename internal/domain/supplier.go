package domain

import (
	"strings"
	"time"
)

// Supplier is a directory entry for a vendor the company orders from.
type Supplier struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contactName,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Clone returns an owned copy.
func (s Supplier) Clone() Supplier {
	return s
}

type SupplierInput struct {
	Name        string `json:"name"`
	ContactName string `json:"contactName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
}

func (in SupplierInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewValidationError("supplier name is required")
	}
	return nil
}

// SupplierPatch is a partial update. Nil fields are left untouched.
type SupplierPatch struct {
	Name        *string `json:"name,omitempty"`
	ContactName *string `json:"contactName,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
}

func (p SupplierPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return NewValidationError("supplier name must not be empty")
	}
	return nil
}

// Apply merges the provided fields into s and bumps UpdatedAt.
func (s *Supplier) Apply(patch SupplierPatch) {
	if patch.Name != nil {
		s.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.ContactName != nil {
		s.ContactName = *patch.ContactName
	}
	if patch.Email != nil {
		s.Email = *patch.Email
	}
	if patch.Phone != nil {
		s.Phone = *patch.Phone
	}
	if patch.Address != nil {
		s.Address = *patch.Address
	}
	s.UpdatedAt = time.Now()
}

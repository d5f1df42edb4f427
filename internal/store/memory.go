package store

import (
	"strings"
	"sync"
	"time"

	"github.com/opsline/stockpile/internal/domain"
	"github.com/opsline/stockpile/pkg/common"
)

// Compile-time contract assertions for the in-memory registries.
var (
	_ ProductRepository  = (*MemoryProductStore)(nil)
	_ SupplierRepository = (*MemorySupplierStore)(nil)
	_ OrderRepository    = (*MemoryOrderStore)(nil)
)

// MemoryProductStore keeps products in insertion order behind one mutex.
// Every value crossing the boundary is cloned in both directions.
type MemoryProductStore struct {
	mu    sync.RWMutex
	items []domain.Product
	index map[string]int
	idgen common.IDGenerator
}

func NewMemoryProductStore(idgen common.IDGenerator) *MemoryProductStore {
	return &MemoryProductStore{
		index: make(map[string]int),
		idgen: idgen,
	}
}

func (s *MemoryProductStore) List() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.items))
	for i, p := range s.items {
		out[i] = p.Clone()
	}
	return out
}

func (s *MemoryProductStore) GetByID(id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return s.items[i].Clone(), nil
}

func (s *MemoryProductStore) Create(input domain.ProductInput) (domain.Product, error) {
	if err := input.Validate(); err != nil {
		return domain.Product{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	p := domain.Product{
		ID:          s.idgen.NextID(),
		Name:        strings.TrimSpace(input.Name),
		SKU:         input.SKU,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Price != nil {
		v := *input.Price
		p.Price = &v
	}
	if input.Stock != nil {
		v := *input.Stock
		p.Stock = &v
	}
	s.index[p.ID] = len(s.items)
	s.items = append(s.items, p)
	return p.Clone(), nil
}

func (s *MemoryProductStore) Update(id string, patch domain.ProductPatch) (domain.Product, error) {
	if err := patch.Validate(); err != nil {
		return domain.Product{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	s.items[i].Apply(patch)
	return s.items[i].Clone(), nil
}

func (s *MemoryProductStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].ID] = j
	}
	return true
}

// MemorySupplierStore mirrors MemoryProductStore for suppliers.
type MemorySupplierStore struct {
	mu    sync.RWMutex
	items []domain.Supplier
	index map[string]int
	idgen common.IDGenerator
}

func NewMemorySupplierStore(idgen common.IDGenerator) *MemorySupplierStore {
	return &MemorySupplierStore{
		index: make(map[string]int),
		idgen: idgen,
	}
}

func (s *MemorySupplierStore) List() []domain.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Supplier, len(s.items))
	for i, sp := range s.items {
		out[i] = sp.Clone()
	}
	return out
}

func (s *MemorySupplierStore) GetByID(id string) (domain.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return domain.Supplier{}, domain.ErrNotFound
	}
	return s.items[i].Clone(), nil
}

func (s *MemorySupplierStore) Create(input domain.SupplierInput) (domain.Supplier, error) {
	if err := input.Validate(); err != nil {
		return domain.Supplier{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	sp := domain.Supplier{
		ID:          s.idgen.NextID(),
		Name:        strings.TrimSpace(input.Name),
		ContactName: input.ContactName,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.index[sp.ID] = len(s.items)
	s.items = append(s.items, sp)
	return sp.Clone(), nil
}

func (s *MemorySupplierStore) Update(id string, patch domain.SupplierPatch) (domain.Supplier, error) {
	if err := patch.Validate(); err != nil {
		return domain.Supplier{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return domain.Supplier{}, domain.ErrNotFound
	}
	s.items[i].Apply(patch)
	return s.items[i].Clone(), nil
}

func (s *MemorySupplierStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].ID] = j
	}
	return true
}

// MemoryOrderStore keeps orders in insertion order. Append and UpdateStatus
// run under one mutex, so readers never observe a half-written order.
type MemoryOrderStore struct {
	mu    sync.RWMutex
	items []domain.Order
	index map[string]int
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{index: make(map[string]int)}
}

func (s *MemoryOrderStore) List() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, len(s.items))
	for i, o := range s.items {
		out[i] = o.Clone()
	}
	return out
}

func (s *MemoryOrderStore) GetByID(id string) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return domain.Order{}, domain.ErrNotFound
	}
	return s.items[i].Clone(), nil
}

func (s *MemoryOrderStore) Append(order domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := order.Clone()
	s.index[stored.ID] = len(s.items)
	s.items = append(s.items, stored)
}

func (s *MemoryOrderStore) UpdateStatus(id string, status domain.OrderStatus) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return domain.Order{}, domain.ErrNotFound
	}
	s.items[i].Status = status
	return s.items[i].Clone(), nil
}

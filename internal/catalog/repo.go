// Package catalog provides the repository interface plus in-memory and
// PostgreSQL implementations for managing products and categories.
package catalog

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("product not found")
)

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) (*Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// MemRepo is the default backing store: a mutex-guarded slice standing
// in for a database table. Writes are serialized per store so two
// concurrent updates cannot silently overwrite each other.
type MemRepo struct {
	mu    sync.Mutex
	items []Product
}

func NewMemRepo(seed []Product) *MemRepo {
	return &MemRepo{items: append([]Product(nil), seed...)}
}

func (r *MemRepo) List(ctx context.Context) ([]Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Product(nil), r.items...), nil
}

func (r *MemRepo) GetByID(ctx context.Context, id int64) (*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			cp := r.items[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemRepo) Create(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = nextID(r.items)
	r.items = append(r.items, *p)
	return nil
}

// Update replaces the mutable fields of the stored record. Empty fields
// keep their current value (partial update, same contract as PUT).
func (r *MemRepo) Update(ctx context.Context, p *Product) (*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID != p.ID {
			continue
		}
		cur := &r.items[i]
		if p.Name != "" {
			cur.Name = p.Name
		}
		if p.Description != "" {
			cur.Description = p.Description
		}
		if p.Price != "" {
			cur.Price = p.Price
		}
		if p.Image != "" {
			cur.Image = p.Image
		}
		if p.Category != "" {
			cur.Category = p.Category
		}
		if p.Subcategory != "" {
			cur.Subcategory = p.Subcategory
		}
		cp := *cur
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (r *MemRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// nextID assigns max(existing)+1. Unlike len+1 it stays unique after
// deletions.
func nextID(items []Product) int64 {
	var max int64
	for i := range items {
		if items[i].ID > max {
			max = items[i].ID
		}
	}
	return max + 1
}

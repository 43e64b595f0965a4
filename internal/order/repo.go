// Package order is the order ledger: creation, lookup and guarded
// status transitions. Orders are never deleted.
package order

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrBadTransition = errors.New("status transition not allowed")
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id int64) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, id int64, status Status) (*Order, error)
}

type MemRepo struct {
	mu     sync.Mutex
	orders []Order
}

func NewMemRepo(seed []Order) *MemRepo {
	cp := make([]Order, len(seed))
	for i, o := range seed {
		o.Items = append([]Item(nil), o.Items...)
		cp[i] = o
	}
	return &MemRepo{orders: cp}
}

func (r *MemRepo) Create(ctx context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var max int64
	for i := range r.orders {
		if r.orders[i].ID > max {
			max = r.orders[i].ID
		}
	}
	o.ID = max + 1
	if o.Status == "" {
		o.Status = StatusNew
	}
	cp := *o
	cp.Items = append([]Item(nil), o.Items...)
	r.orders = append(r.orders, cp)
	return nil
}

func (r *MemRepo) GetByID(ctx context.Context, id int64) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			cp := r.orders[i]
			cp.Items = append([]Item(nil), r.orders[i].Items...)
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// List returns every order in stable insertion order.
func (r *MemRepo) List(ctx context.Context) ([]Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Order, len(r.orders))
	for i, o := range r.orders {
		o.Items = append([]Item(nil), o.Items...)
		out[i] = o
	}
	return out, nil
}

// UpdateStatus applies the transition table: an order moves only along
// an allowed edge, and terminal states stay terminal.
func (r *MemRepo) UpdateStatus(ctx context.Context, id int64, status Status) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID != id {
			continue
		}
		cur := &r.orders[i]
		if !CanTransition(cur.Status, status) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrBadTransition, cur.Status, status)
		}
		cur.Status = status
		cp := *cur
		cp.Items = append([]Item(nil), cur.Items...)
		return &cp, nil
	}
	return nil, ErrNotFound
}

// Package newsletter keeps the mailing-list subscribers shown in the
// admin console.
package newsletter

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNotFound      = errors.New("subscriber not found")
	ErrEmailRequired = errors.New("email is required")
)

type Subscriber struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type Repository interface {
	List(ctx context.Context) ([]Subscriber, error)
	Subscribe(ctx context.Context, email string) (*Subscriber, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type MemRepo struct {
	mu    sync.Mutex
	items []Subscriber
}

func NewMemRepo() *MemRepo { return &MemRepo{} }

func (r *MemRepo) List(ctx context.Context) ([]Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Subscriber(nil), r.items...), nil
}

func (r *MemRepo) Subscribe(ctx context.Context, email string) (*Subscriber, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var max int64
	for i := range r.items {
		if r.items[i].ID > max {
			max = r.items[i].ID
		}
	}
	s := Subscriber{ID: max + 1, Email: email}
	r.items = append(r.items, s)
	return &s, nil
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

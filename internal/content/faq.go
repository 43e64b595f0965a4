package content

import (
	"context"
	"errors"
	"sync"
)

var ErrFAQNotFound = errors.New("faq not found")

type FAQRepository interface {
	List(ctx context.Context) ([]FAQ, error)
	Create(ctx context.Context, f *FAQ) error
	Update(ctx context.Context, f *FAQ) (*FAQ, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type FAQMemRepo struct {
	mu    sync.Mutex
	items []FAQ
}

func NewFAQMemRepo(seed []FAQ) *FAQMemRepo {
	return &FAQMemRepo{items: append([]FAQ(nil), seed...)}
}

func (r *FAQMemRepo) List(ctx context.Context) ([]FAQ, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]FAQ(nil), r.items...), nil
}

func (r *FAQMemRepo) Create(ctx context.Context, f *FAQ) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var max int64
	for i := range r.items {
		if r.items[i].ID > max {
			max = r.items[i].ID
		}
	}
	f.ID = max + 1
	r.items = append(r.items, *f)
	return nil
}

func (r *FAQMemRepo) Update(ctx context.Context, f *FAQ) (*FAQ, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID != f.ID {
			continue
		}
		cur := &r.items[i]
		if f.Question != "" {
			cur.Question = f.Question
		}
		if f.Answer != "" {
			cur.Answer = f.Answer
		}
		cp := *cur
		return &cp, nil
	}
	return nil, ErrFAQNotFound
}

func (r *FAQMemRepo) Delete(ctx context.Context, id int64) (bool, error) {
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

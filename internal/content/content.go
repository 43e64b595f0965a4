// Package content holds the static content sections and FAQs managed
// from the admin console.
package content

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("content not found")
)

// Section is a block of page copy looked up by slug from the public
// site ("about-us", "terms-conditions"). Slug uniqueness is expected
// but not enforced; GetBySlug returns the first match.
type Section struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Body  string `json:"content"`
}

type FAQ struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type SectionRepository interface {
	List(ctx context.Context) ([]Section, error)
	GetBySlug(ctx context.Context, slug string) (*Section, error)
	Create(ctx context.Context, s *Section) error
	Update(ctx context.Context, s *Section) (*Section, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type SectionMemRepo struct {
	mu    sync.Mutex
	items []Section
}

func NewSectionMemRepo(seed []Section) *SectionMemRepo {
	return &SectionMemRepo{items: append([]Section(nil), seed...)}
}

func (r *SectionMemRepo) List(ctx context.Context) ([]Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Section(nil), r.items...), nil
}

func (r *SectionMemRepo) GetBySlug(ctx context.Context, slug string) (*Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].Slug == slug {
			cp := r.items[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *SectionMemRepo) Create(ctx context.Context, s *Section) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var max int64
	for i := range r.items {
		if r.items[i].ID > max {
			max = r.items[i].ID
		}
	}
	s.ID = max + 1
	r.items = append(r.items, *s)
	return nil
}

func (r *SectionMemRepo) Update(ctx context.Context, s *Section) (*Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID != s.ID {
			continue
		}
		cur := &r.items[i]
		if s.Title != "" {
			cur.Title = s.Title
		}
		if s.Slug != "" {
			cur.Slug = s.Slug
		}
		if s.Body != "" {
			cur.Body = s.Body
		}
		cp := *cur
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (r *SectionMemRepo) Delete(ctx context.Context, id int64) (bool, error) {
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

package catalog

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
)

// CategoryRepository mirrors the product CRUD contract with one twist:
// operations that carry a parentID target a subcategory of that parent
// instead of a top-level category.
type CategoryRepository interface {
	List(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, name string) (*Category, error)
	CreateSub(ctx context.Context, parentID int64, name string) (*Subcategory, error)
	Rename(ctx context.Context, id int64, name string) (*Category, error)
	RenameSub(ctx context.Context, parentID, id int64, name string) (*Subcategory, error)
	Delete(ctx context.Context, id int64) error
	DeleteSub(ctx context.Context, parentID, id int64) error
	GetSub(ctx context.Context, parentID, id int64) (*Subcategory, error)
}

type CategoryMemRepo struct {
	mu    sync.Mutex
	items []Category
}

func NewCategoryMemRepo(seed []Category) *CategoryMemRepo {
	cp := make([]Category, len(seed))
	for i, c := range seed {
		c.Subcategories = append([]Subcategory(nil), c.Subcategories...)
		cp[i] = c
	}
	return &CategoryMemRepo{items: cp}
}

func (r *CategoryMemRepo) List(ctx context.Context) ([]Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Category, len(r.items))
	for i, c := range r.items {
		c.Subcategories = append([]Subcategory(nil), c.Subcategories...)
		out[i] = c
	}
	return out, nil
}

func (r *CategoryMemRepo) Create(ctx context.Context, name string) (*Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var max int64
	for i := range r.items {
		if r.items[i].ID > max {
			max = r.items[i].ID
		}
	}
	c := Category{ID: max + 1, Name: name, Subcategories: []Subcategory{}}
	r.items = append(r.items, c)
	return &c, nil
}

func (r *CategoryMemRepo) CreateSub(ctx context.Context, parentID int64, name string) (*Subcategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	parent := r.find(parentID)
	if parent == nil {
		return nil, ErrCategoryNotFound
	}
	var max int64
	for _, s := range parent.Subcategories {
		if s.ID > max {
			max = s.ID
		}
	}
	sub := Subcategory{ID: max + 1, Name: name}
	parent.Subcategories = append(parent.Subcategories, sub)
	return &sub, nil
}

func (r *CategoryMemRepo) Rename(ctx context.Context, id int64, name string) (*Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.find(id)
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	c.Name = name
	cp := *c
	cp.Subcategories = append([]Subcategory(nil), c.Subcategories...)
	return &cp, nil
}

func (r *CategoryMemRepo) RenameSub(ctx context.Context, parentID, id int64, name string) (*Subcategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	parent := r.find(parentID)
	if parent == nil {
		return nil, ErrCategoryNotFound
	}
	for i := range parent.Subcategories {
		if parent.Subcategories[i].ID == id {
			parent.Subcategories[i].Name = name
			cp := parent.Subcategories[i]
			return &cp, nil
		}
	}
	return nil, ErrSubcategoryNotFound
}

// Delete removes the category and, with it, every nested subcategory
// (cascade: subcategories have no life outside their parent).
func (r *CategoryMemRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrCategoryNotFound
}

func (r *CategoryMemRepo) DeleteSub(ctx context.Context, parentID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	parent := r.find(parentID)
	if parent == nil {
		return ErrCategoryNotFound
	}
	for i := range parent.Subcategories {
		if parent.Subcategories[i].ID == id {
			parent.Subcategories = append(parent.Subcategories[:i], parent.Subcategories[i+1:]...)
			return nil
		}
	}
	return ErrSubcategoryNotFound
}

func (r *CategoryMemRepo) GetSub(ctx context.Context, parentID, id int64) (*Subcategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	parent := r.find(parentID)
	if parent == nil {
		return nil, ErrCategoryNotFound
	}
	for i := range parent.Subcategories {
		if parent.Subcategories[i].ID == id {
			cp := parent.Subcategories[i]
			return &cp, nil
		}
	}
	return nil, ErrSubcategoryNotFound
}

func (r *CategoryMemRepo) find(id int64) *Category {
	for i := range r.items {
		if r.items[i].ID == id {
			return &r.items[i]
		}
	}
	return nil
}

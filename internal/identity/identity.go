// Package identity holds registered users, guest users and login
// sessions. Registered and guest users live in independent stores with
// independent id sequences.
package identity

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrAlreadyExist = errors.New("user already exists")
)

type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

type GuestUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Repository interface {
	Register(ctx context.Context, name, email, password string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context) ([]User, error)
}

type MemRepo struct {
	mu    sync.Mutex
	users []User
}

func NewMemRepo(seed []User) *MemRepo {
	return &MemRepo{users: append([]User(nil), seed...)}
}

// Register fails with ErrAlreadyExist when the email is taken. The
// match is a case-sensitive exact comparison, same as the lookup.
func (r *MemRepo) Register(ctx context.Context, name, email, password string) (*User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	var max int64
	for i := range r.users {
		if r.users[i].Email == email {
			return nil, ErrAlreadyExist
		}
		if r.users[i].ID > max {
			max = r.users[i].ID
		}
	}
	u := User{ID: max + 1, Name: name, Email: email, PasswordHash: hash}
	r.users = append(r.users, u)
	return &u, nil
}

func (r *MemRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].Email == email {
			cp := r.users[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemRepo) FindByID(ctx context.Context, id int64) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			cp := r.users[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemRepo) List(ctx context.Context) ([]User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]User(nil), r.users...), nil
}

// GuestRepo is uncorrelated with the registered-user store: its own
// records, its own id sequence.
type GuestRepo struct {
	mu     sync.Mutex
	guests []GuestUser
}

func NewGuestRepo(seed []GuestUser) *GuestRepo {
	return &GuestRepo{guests: append([]GuestUser(nil), seed...)}
}

func (r *GuestRepo) List(ctx context.Context) ([]GuestUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]GuestUser(nil), r.guests...), nil
}

func (r *GuestRepo) Create(ctx context.Context, name, email string) (*GuestUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var max int64
	for i := range r.guests {
		if r.guests[i].ID > max {
			max = r.guests[i].ID
		}
	}
	g := GuestUser{ID: max + 1, Name: name, Email: email}
	r.guests = append(r.guests, g)
	return &g, nil
}

func (r *GuestRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.guests {
		if r.guests[i].ID == id {
			r.guests = append(r.guests[:i], r.guests[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

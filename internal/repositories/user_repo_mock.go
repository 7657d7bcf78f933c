package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"pasar/internal/models"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users map[string]models.User
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]models.User),
	}
}

// Create adds a new user.
func (r *MockUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Products == nil {
		user.Products = []string{}
	}
	if user.Cart == nil {
		user.Cart = []string{}
	}
	r.users[user.ID] = *user
	return nil
}

// GetByID returns a user by id, or nil when absent.
func (r *MockUserRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// GetByEmail returns a user by email, or nil when absent.
func (r *MockUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

// UpdateCart overwrites the cart of a user. A missing user is a no-op,
// matching the targeted-update semantics of the document store.
func (r *MockUserRepository) UpdateCart(_ context.Context, userID string, cart []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return nil
	}
	user.Cart = append([]string{}, cart...)
	r.users[userID] = user
	return nil
}

// AddProduct appends productID to the user's owned-products list.
func (r *MockUserRepository) AddProduct(_ context.Context, userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return nil
	}
	for _, id := range user.Products {
		if id == productID {
			return nil
		}
	}
	user.Products = append(user.Products, productID)
	r.users[userID] = user
	return nil
}

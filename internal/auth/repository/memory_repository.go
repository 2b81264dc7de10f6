package repository

import (
	"sync"
	"time"

	"auth-service/internal/auth/domain"

	"github.com/google/uuid"
)

// memoryRepository keeps users in process memory, indexed by email and id.
// The write lock spans the duplicate check and the insert, so at most one of
// two concurrent Create calls for the same email can win.
type memoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
}

// NewMemoryRepository creates an empty in-memory user repository.
func NewMemoryRepository() UserRepository {
	return &memoryRepository{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
	}
}

func (r *memoryRepository) Create(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Email comparison is case-sensitive, matching lookup semantics.
	if _, exists := r.byEmail[user.Email]; exists {
		return domain.ErrEmailTaken
	}

	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	stored := *user
	r.byEmail[stored.Email] = &stored
	r.byID[stored.ID] = &stored
	return nil
}

func (r *memoryRepository) FindByEmail(email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *memoryRepository) FindByID(id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

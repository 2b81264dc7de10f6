package repository

import "auth-service/internal/auth/domain"

// UserRepository is the credential store. Lookups return (nil, nil) when no
// record matches. Create must be atomic per email: two concurrent calls with
// the same address cannot both succeed.
type UserRepository interface {
	Create(user *domain.User) error
	FindByEmail(email string) (*domain.User, error)
	FindByID(id string) (*domain.User, error)
}

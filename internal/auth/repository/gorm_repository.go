package repository

import (
	"errors"
	"time"

	"auth-service/internal/auth/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormRepository backs the credential store with a relational database. The
// unique index on email makes the duplicate check atomic at the database
// level; the pre-insert lookup in the usecase is only a fast path.
type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a user repository on top of a gorm connection.
// The connection must be opened with error translation enabled so duplicate
// key violations surface as gorm.ErrDuplicatedKey.
func NewGormRepository(db *gorm.DB) UserRepository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(user *domain.User) error {
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *gormRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *gormRepository) FindByID(id string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

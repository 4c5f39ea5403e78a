package repositories

import (
	"Ensurance/insurance/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create stores a new user after checking that neither the email nor the
// CUI is already taken. Without paid service the policy and expiration
// date are cleared.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	taken, err := r.emailOrCUITaken(ctx, user.Email, user.CUI, 0)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("user with same email or cui already exists: %w", ErrConflict)
	}

	if user.PaidService == nil || !*user.PaidService {
		user.IDPolicy = nil
		user.Policy = nil
		user.ExpirationDate = nil
	}

	if err := r.db.WithContext(ctx).Omit("Policy").Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Policy").First(&user, "id_user = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Policy").First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Preload("Policy").Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, nil
}

// Update replaces the stored record with the given one.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	if _, err := r.GetByID(ctx, user.IDUser); err != nil {
		return err
	}

	taken, err := r.emailOrCUITaken(ctx, user.Email, user.CUI, user.IDUser)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("email or cui already in use by another user: %w", ErrConflict)
	}

	if user.PaidService == nil || !*user.PaidService {
		user.IDPolicy = nil
		user.Policy = nil
		user.ExpirationDate = nil
	}

	if err := r.db.WithContext(ctx).Omit("Policy").Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// Login looks up a user by exact email and password match.
func (r *UserRepository) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Policy").
		First(&user, "email = ? AND password = ?", email, password).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) emailOrCUITaken(ctx context.Context, email string, cui int64, excludeID int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ? OR cui = ?", email, cui)
	if excludeID != 0 {
		query = query.Where("id_user <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check for existing user: %w", err)
	}
	return count > 0, nil
}

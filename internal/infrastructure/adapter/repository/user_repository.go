package repository

import (
	"context"

	"github.com/mazebank/transaction-service/internal/domain/entity"
	coreport "github.com/mazebank/transaction-service/internal/domain/port/core"
	"github.com/mazebank/transaction-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements the UserRepository port using GORM
type UserRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

// modelToEntity converts a user row to a domain entity. The credential tag
// is decided here, once, so the domain never re-inspects the stored string.
func modelToEntity(row *model.User) *entity.User {
	return &entity.User{
		ID:         row.UserID,
		Name:       row.Name,
		Email:      row.Email,
		RoleID:     entity.Role(row.RoleID),
		Credential: entity.ParseCredential(row.Password),
	}
}

// FindByEmail retrieves a user by normalized email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var row model.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&row)
	if result.Error != nil {
		r.logger.Debug("User lookup by email failed", map[string]any{
			"email": email,
			"error": result.Error.Error(),
		})
		return nil, classifyUserError(result.Error)
	}
	return modelToEntity(&row), nil
}

// FindByID retrieves a user by numeric id
func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*entity.User, error) {
	var row model.User
	result := r.db.WithContext(ctx).First(&row, "user_id = ?", id)
	if result.Error != nil {
		r.logger.Debug("User lookup by id failed", map[string]any{
			"user_id": id,
			"error":   result.Error.Error(),
		})
		return nil, classifyUserError(result.Error)
	}
	return modelToEntity(&row), nil
}

// UpdateCredential replaces the stored password value with a bcrypt hash.
func (r *UserRepository) UpdateCredential(ctx context.Context, userID uint64, hashed string) error {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("user_id = ?", userID).
		Update("password", hashed)
	if result.Error != nil {
		r.logger.Error("Credential update failed", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return classifyUserError(result.Error)
	}

	r.logger.Info("Credential migrated to hash", map[string]any{
		"user_id": userID,
	})
	return nil
}

package postgres

import (
	"context"
	"strings"

	"ucsbapi/internal/domain/entity"
	domainerrors "ucsbapi/internal/domain/errors"
	"ucsbapi/internal/domain/repository"
	"ucsbapi/internal/domain/resource"
	"ucsbapi/internal/errors"
	"ucsbapi/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	repository.ResourceRepository[entity.User, int64]
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		ResourceRepository: NewResourceRepository[entity.User, int64, model.UserModel](db, resource.Users),
		db:                 db,
	}
}

// FindByEmail retrieves a user by email, case-insensitively.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := reader(ctx, repo.db).
		Where("email = ?", normalizeEmail(email)).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return userM.ToDomain(), nil
}

// Upsert inserts the user, or refreshes every profile column of the row with the same email.
func (repo *userRepository) Upsert(ctx context.Context, user *entity.User) (*entity.User, error) {
	var userM model.UserModel
	userM.FromDomain(user)
	userM.ID = 0
	userM.Email = normalizeEmail(user.Email)

	if err := writer(ctx, repo.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"google_sub", "picture_url", "full_name", "given_name", "family_name",
				"email_verified", "locale", "hosted_domain", "admin", "updated_at",
			}),
		}).
		Create(&userM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert user")
	}

	// The returned id is unreliable on conflict for some dialects; re-read by email.
	return repo.FindByEmail(ctx, userM.Email)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

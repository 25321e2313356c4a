package postgres

import (
	"context"

	domainerrors "ucsbapi/internal/domain/errors"
	"ucsbapi/internal/domain/repository"
	"ucsbapi/internal/domain/resource"
	"ucsbapi/internal/errors"
	"ucsbapi/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// resourceRepository implements repository.ResourceRepository for any row type PM
// whose key column is named after the descriptor's key parameter.
type resourceRepository[T any, K resource.Key, M any, PM model.Model[T, M]] struct {
	db        *gorm.DB
	desc      resource.Descriptor[T, K]
	keyColumn string
}

// NewResourceRepository is the constructor for resourceRepository.
func NewResourceRepository[T any, K resource.Key, M any, PM model.Model[T, M]](
	db *gorm.DB,
	desc resource.Descriptor[T, K],
) repository.ResourceRepository[T, K] {
	return &resourceRepository[T, K, M, PM]{
		db:        db,
		desc:      desc,
		keyColumn: desc.KeyParam,
	}
}

func (repo *resourceRepository[T, K, M, PM]) FindAll(ctx context.Context) ([]*T, error) {
	var rows []*M

	if err := reader(ctx, repo.db).
		Order(repo.keyColumn).
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list "+repo.desc.Path)
	}

	records := make([]*T, 0, len(rows))
	for _, row := range rows {
		records = append(records, PM(row).ToDomain())
	}

	return records, nil
}

func (repo *resourceRepository[T, K, M, PM]) FindByID(ctx context.Context, key K) (*T, error) {
	var row M

	if err := reader(ctx, repo.db).
		Where(repo.keyColumn+" = ?", key).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find "+repo.desc.Name)
	}

	return PM(&row).ToDomain(), nil
}

func (repo *resourceRepository[T, K, M, PM]) Create(ctx context.Context, record *T) (*T, error) {
	var row M
	PM(&row).FromDomain(record)

	if err := writer(ctx, repo.db).Create(&row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, repository.ErrDuplicateKey
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create "+repo.desc.Name)
	}

	return PM(&row).ToDomain(), nil
}

// Update replaces every column except the key and created_at.
func (repo *resourceRepository[T, K, M, PM]) Update(ctx context.Context, record *T) (*T, error) {
	var row M
	PM(&row).FromDomain(record)

	result := writer(ctx, repo.db).
		Model(&row).
		Select("*").
		Omit(repo.keyColumn, "created_at").
		Where(repo.keyColumn+" = ?", repo.desc.KeyOf(record)).
		Updates(&row)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, repository.ErrDuplicateKey
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update "+repo.desc.Name)
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrRecordNotFound
	}

	return repo.FindByID(ctx, repo.desc.KeyOf(record))
}

func (repo *resourceRepository[T, K, M, PM]) Delete(ctx context.Context, key K) error {
	var row M

	result := writer(ctx, repo.db).
		Where(repo.keyColumn+" = ?", key).
		Delete(&row)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete "+repo.desc.Name)
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

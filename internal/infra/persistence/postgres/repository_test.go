package postgres

import (
	"context"
	"testing"

	"ucsbapi/internal/domain/entity"
	domainerrors "ucsbapi/internal/domain/errors"
	"ucsbapi/internal/domain/repository"
	"ucsbapi/internal/errors"
	"ucsbapi/internal/infra/persistence/model"
	"ucsbapi/internal/infra/persistence/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := sqlite.Open(sqlite.MemoryDSN, logger.Discard)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestResourceRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalRepository(newTestDB(t))

	created, err := repo.Create(ctx, &entity.Animal{Name: "Rex", Color: "brown", Height: 40})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Rex", created.Name)

	second, err := repo.Create(ctx, &entity.Animal{Name: "Tom", Color: "grey", Height: 25})
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, created.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	updated, err := repo.Update(ctx, &entity.Animal{ID: created.ID, Name: "Rex", Color: "black", Height: 0})
	require.NoError(t, err)
	assert.Equal(t, "black", updated.Color)
	assert.Equal(t, 0, updated.Height)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.FindByID(ctx, created.ID)
	assert.True(t, errors.Is(err, repository.ErrRecordNotFound))
}

func TestResourceRepository_MissingKey(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository(newTestDB(t))

	_, err := repo.FindByID(ctx, 999)
	assert.True(t, errors.Is(err, repository.ErrRecordNotFound))

	_, err = repo.Update(ctx, &entity.Student{ID: 999, Name: "Chris", Major: "CS", Year: 2})
	assert.True(t, errors.Is(err, repository.ErrRecordNotFound))

	err = repo.Delete(ctx, 999)
	assert.True(t, errors.Is(err, repository.ErrRecordNotFound))
}

func TestResourceRepository_EmptyList(t *testing.T) {
	all, err := NewCarRepository(newTestDB(t)).FindAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestResourceRepository_NaturalKeyDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewUCSBDiningCommonsRepository(newTestDB(t))

	ortega := &entity.UCSBDiningCommons{Code: "ortega", Name: "Ortega", HasTakeOutMeal: true, Latitude: 34.41, Longitude: -119.84}
	created, err := repo.Create(ctx, ortega)
	require.NoError(t, err)
	assert.Equal(t, "ortega", created.Code)

	_, err = repo.Create(ctx, &entity.UCSBDiningCommons{Code: "ortega", Name: "Other"})
	assert.True(t, errors.Is(err, repository.ErrDuplicateKey))

	found, err := repo.FindByID(ctx, "ortega")
	require.NoError(t, err)
	assert.Equal(t, "Ortega", found.Name)
	assert.True(t, found.HasTakeOutMeal)
}

func TestResourceRepository_LocalDateTimeRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewUCSBDateRepository(newTestDB(t))

	when, err := entity.ParseLocalDateTime("2022-01-03T00:00:00")
	require.NoError(t, err)

	created, err := repo.Create(ctx, &entity.UCSBDate{QuarterYYYYQ: "20221", Name: "firstDayOfClasses", LocalDateTime: when})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "20221", found.QuarterYYYYQ)
	assert.Equal(t, "2022-01-03T00:00:00", found.LocalDateTime.String())
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewCourseRepository(db)
	txManager := NewTransactionManager(db)

	boom := errors.New("boom")
	err := txManager.Execute(ctx, func(txCtx context.Context) error {
		if _, err := repo.Create(txCtx, &entity.Course{Name: "CMPSC 156", School: "UCSB", Term: "F23"}); err != nil {
			return err
		}

		return boom
	})
	assert.True(t, errors.Is(err, boom))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTransactionManager_Commits(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)
	txManager := NewTransactionManager(db)

	var id int64
	err := txManager.Execute(ctx, func(txCtx context.Context) error {
		created, err := repo.Create(txCtx, &entity.Restaurant{PhoneNumber: 8055551234, City: "Goleta", State: "CA"})
		if err != nil {
			return err
		}
		id = created.ID

		_, err = repo.FindByID(txCtx, id)

		return err
	})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Goleta", found.City)
}

func TestUserRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	first, err := repo.Upsert(ctx, &entity.User{Email: "CGaucho@ucsb.edu", GoogleSub: "sub-1", FullName: "Chris Gaucho", HostedDomain: "ucsb.edu"})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.Equal(t, "cgaucho@ucsb.edu", first.Email)

	second, err := repo.Upsert(ctx, &entity.User{Email: "cgaucho@ucsb.edu", GoogleSub: "sub-1", FullName: "Chris G.", Admin: true})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Chris G.", second.FullName)
	assert.True(t, second.Admin)

	byEmail, err := repo.FindByEmail(ctx, "CGAUCHO@ucsb.edu")
	require.NoError(t, err)
	assert.Equal(t, second, byEmail)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = repo.FindByEmail(ctx, "nobody@ucsb.edu")
	assert.True(t, errors.Is(err, repository.ErrRecordNotFound))
}

func TestDatabaseErrorsAreAppErrors(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&model.BookModel{}))

	_, err := NewBookRepository(db).FindAll(context.Background())

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.TypeDatabaseExecute, appErr.ErrorCode())
}

package postgres

import (
	"ucsbapi/internal/domain/entity"
	"ucsbapi/internal/domain/repository"
	"ucsbapi/internal/domain/resource"
	"ucsbapi/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Constructors binding each catalog descriptor to its row type.

func NewAnimalRepository(db *gorm.DB) repository.ResourceRepository[entity.Animal, int64] {
	return NewResourceRepository[entity.Animal, int64, model.AnimalModel](db, resource.Animals)
}

func NewBookRepository(db *gorm.DB) repository.ResourceRepository[entity.Book, int64] {
	return NewResourceRepository[entity.Book, int64, model.BookModel](db, resource.Books)
}

func NewCarRepository(db *gorm.DB) repository.ResourceRepository[entity.Car, int64] {
	return NewResourceRepository[entity.Car, int64, model.CarModel](db, resource.Cars)
}

func NewCourseRepository(db *gorm.DB) repository.ResourceRepository[entity.Course, int64] {
	return NewResourceRepository[entity.Course, int64, model.CourseModel](db, resource.Courses)
}

func NewRestaurantRepository(db *gorm.DB) repository.ResourceRepository[entity.Restaurant, int64] {
	return NewResourceRepository[entity.Restaurant, int64, model.RestaurantModel](db, resource.Restaurants)
}

func NewStudentRepository(db *gorm.DB) repository.ResourceRepository[entity.Student, int64] {
	return NewResourceRepository[entity.Student, int64, model.StudentModel](db, resource.Students)
}

func NewUCSBDateRepository(db *gorm.DB) repository.ResourceRepository[entity.UCSBDate, int64] {
	return NewResourceRepository[entity.UCSBDate, int64, model.UCSBDateModel](db, resource.UCSBDates)
}

func NewUCSBDiningCommonsRepository(db *gorm.DB) repository.ResourceRepository[entity.UCSBDiningCommons, string] {
	return NewResourceRepository[entity.UCSBDiningCommons, string, model.UCSBDiningCommonsModel](db, resource.UCSBDiningCommons)
}

// NewUserResourceRepository exposes the user store to the generic CRUD engine.
func NewUserResourceRepository(users repository.UserRepository) repository.ResourceRepository[entity.User, int64] {
	return users
}

// Package model holds the GORM row types. They are exported so the GORM Gen
// tool can generate query code for them from cmd/gen.
package model

// Model is implemented by *M for every row type M that maps to entity T.
type Model[T any, M any] interface {
	*M
	ToDomain() *T
	FromDomain(*T)
}

// All lists one value of every row type, for AutoMigrate and code generation.
func All() []any {
	return []any{
		&AnimalModel{},
		&BookModel{},
		&CarModel{},
		&CourseModel{},
		&RestaurantModel{},
		&StudentModel{},
		&UCSBDateModel{},
		&UCSBDiningCommonsModel{},
		&UserModel{},
	}
}

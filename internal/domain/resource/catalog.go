package resource

import "ucsbapi/internal/domain/entity"

var (
	Animals = Descriptor[entity.Animal, int64]{
		Meta:   Meta{Name: "Animal", Path: "animals", KeyParam: "id", Operations: AllOperations},
		KeyOf:  func(a *entity.Animal) int64 { return a.ID },
		SetKey: func(a *entity.Animal, id int64) { a.ID = id },
	}

	Books = Descriptor[entity.Book, int64]{
		Meta:   Meta{Name: "Book", Path: "books", KeyParam: "id", AdminOnly: true, Operations: AllOperations},
		KeyOf:  func(b *entity.Book) int64 { return b.ID },
		SetKey: func(b *entity.Book, id int64) { b.ID = id },
	}

	Cars = Descriptor[entity.Car, int64]{
		Meta:   Meta{Name: "Car", Path: "cars", KeyParam: "id", Operations: AllOperations},
		KeyOf:  func(c *entity.Car) int64 { return c.ID },
		SetKey: func(c *entity.Car, id int64) { c.ID = id },
	}

	Courses = Descriptor[entity.Course, int64]{
		Meta:   Meta{Name: "Course", Path: "courses", KeyParam: "id", Operations: AllOperations},
		KeyOf:  func(c *entity.Course) int64 { return c.ID },
		SetKey: func(c *entity.Course, id int64) { c.ID = id },
	}

	Restaurants = Descriptor[entity.Restaurant, int64]{
		Meta:   Meta{Name: "Restaurant", Path: "restaurants", KeyParam: "id", Operations: AllOperations},
		KeyOf:  func(r *entity.Restaurant) int64 { return r.ID },
		SetKey: func(r *entity.Restaurant, id int64) { r.ID = id },
	}

	Students = Descriptor[entity.Student, int64]{
		Meta:   Meta{Name: "Student", Path: "students", KeyParam: "id", Operations: AllOperations},
		KeyOf:  func(s *entity.Student) int64 { return s.ID },
		SetKey: func(s *entity.Student, id int64) { s.ID = id },
	}

	UCSBDates = Descriptor[entity.UCSBDate, int64]{
		Meta:   Meta{Name: "UCSBDate", Path: "ucsbdates", KeyParam: "id", Operations: AllOperations},
		KeyOf:  func(d *entity.UCSBDate) int64 { return d.ID },
		SetKey: func(d *entity.UCSBDate, id int64) { d.ID = id },
	}

	UCSBDiningCommons = Descriptor[entity.UCSBDiningCommons, string]{
		Meta: Meta{
			Name:       "UCSBDiningCommons",
			Path:       "ucsbdiningcommons",
			KeyParam:   "code",
			ClientKey:  true,
			Operations: AllOperations,
		},
		KeyOf:  func(c *entity.UCSBDiningCommons) string { return c.Code },
		SetKey: func(c *entity.UCSBDiningCommons, code string) { c.Code = code },
	}

	// Users are created on sign-in; admins may only list, inspect and remove them.
	Users = Descriptor[entity.User, int64]{
		Meta: Meta{
			Name:       "User",
			Path:       "admin/users",
			KeyParam:   "id",
			AdminOnly:  true,
			Operations: []Operation{OpList, OpGet, OpDelete},
		},
		KeyOf:  func(u *entity.User) int64 { return u.ID },
		SetKey: func(u *entity.User, id int64) { u.ID = id },
	}
)

// All returns the metadata of every resource, in registration order.
func All() []Meta {
	return []Meta{
		Animals.Meta,
		Books.Meta,
		Cars.Meta,
		Courses.Meta,
		Restaurants.Meta,
		Students.Meta,
		UCSBDates.Meta,
		UCSBDiningCommons.Meta,
		Users.Meta,
	}
}

package service

// StructValidator validates tagged input structs. Failures are returned as
// AppErrors carrying a readable message.
type StructValidator interface {
	Validate(i any) error
}

package user

import "context"

// Repository persists the users collection with whole-value replace
// semantics: All returns the full collection, ReplaceAll overwrites it.
type Repository interface {
	All(ctx context.Context) ([]User, error)
	ReplaceAll(ctx context.Context, users []User) error
}

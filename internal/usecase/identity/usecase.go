package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agrifund-backend/internal/domain/user"
	"agrifund-backend/pkg/id"
)

type Usecase struct{ users user.Repository }

func NewUsecase(r user.Repository) *Usecase { return &Usecase{users: r} }

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

// Register creates a user after rejecting duplicate emails. The email
// match is exact and case-sensitive, as stored.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	role := user.Role(in.Role)
	if in.Name == "" || in.Email == "" || in.Password == "" || !role.Valid() {
		return nil, user.ErrInvalidInput
	}

	users, err := u.users.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	for i := range users {
		if users[i].Email == in.Email {
			return nil, user.ErrDuplicateEmail
		}
	}

	created := user.User{
		ID:        id.NewID32(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  in.Password,
		Role:      role,
		Phone:     in.Phone,
		CreatedAt: time.Now().UTC(),
	}
	users = append(users, created)
	if err := u.users.ReplaceAll(ctx, users); err != nil {
		return nil, fmt.Errorf("persist users: %w", err)
	}
	return &created, nil
}

// Authenticate returns the stored user matching email, password and role
// exactly. Plaintext comparison is a placeholder; credential hashing
// belongs to a collaborator outside this core.
func (u *Usecase) Authenticate(ctx context.Context, email, password string, role user.Role) (*user.User, error) {
	users, err := u.users.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	for i := range users {
		if users[i].Email == email && users[i].Password == password && users[i].Role == role {
			out := users[i]
			return &out, nil
		}
	}
	return nil, user.ErrInvalidCredentials
}

// Find resolves an id to a stored user; nil when absent. The HTTP layer
// uses it to turn the caller-supplied identity header into an actor.
func (u *Usecase) Find(ctx context.Context, userID string) (*user.User, error) {
	users, err := u.users.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	for i := range users {
		if users[i].ID == userID {
			out := users[i]
			return &out, nil
		}
	}
	return nil, nil
}

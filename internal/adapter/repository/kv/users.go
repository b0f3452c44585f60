package kv

import (
	"context"

	userDomain "agrifund-backend/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) All(ctx context.Context) ([]userDomain.User, error) {
	var users []userDomain.User
	if err := load(ctx, r.db, colUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) ReplaceAll(ctx context.Context, users []userDomain.User) error {
	if users == nil {
		users = []userDomain.User{}
	}
	return save(ctx, r.db, colUsers, users)
}

package service

import (
	"context"

	"quizzle-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService struct {
	Users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{Users: users}
}

// AddUser inserts a user unless the username is taken. The uniqueness
// check is a read-before-write, not a store constraint; concurrent
// writers could race it.
func (s *UserService) AddUser(ctx context.Context, user *models.User) error {
	existing, err := s.Users.FindByUsername(ctx, user.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateUsername
	}
	id, err := s.Users.Insert(ctx, user)
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

// UpdateUser sets score_history, the only mutable user field. Username
// and email are fixed at creation.
func (s *UserService) UpdateUser(ctx context.Context, id string, scoreHistory []interface{}) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	matched, err := s.Users.UpdateFields(ctx, objID, bson.M{"score_history": scoreHistory})
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	deleted, err := s.Users.Delete(ctx, objID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserService) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// Package model contains the persistence representations of the domain
// entities, with BSON mappings for the MongoDB collections.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"empdir/internal/domain/entity"
)

// UserModel mirrors the 'users' collection. Unique indexes exist on both
// username and email.
type UserModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// CollectionName is the MongoDB collection backing UserModel.
func (UserModel) CollectionName() string {
	return "users"
}

// ToEntity maps the persistence model back to a pure domain entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:        m.ID.Hex(),
		Username:  m.Username,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromUserEntity maps a domain entity to its persistence model. A zero or
// malformed entity ID leaves the ObjectID unset so the driver generates one.
func FromUserEntity(user *entity.User) *UserModel {
	m := &UserModel{
		Username:  user.Username,
		Email:     user.Email,
		Password:  user.Password,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if oid, err := primitive.ObjectIDFromHex(user.ID); err == nil {
		m.ID = oid
	}

	return m
}

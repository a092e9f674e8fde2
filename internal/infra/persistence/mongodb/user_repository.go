package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"empdir/internal/domain/entity"
	"empdir/internal/domain/repository"
	"empdir/internal/errors"
	"empdir/internal/infra/persistence/model"
)

// userRepository implements the repository.UserRepository interface on the
// 'users' collection.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		coll: db.Collection(model.UserModel{}.CollectionName()),
	}
}

// FindByUsernameOrEmail retrieves the user whose username or email exactly
// matches the identifier.
func (repo *userRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.User, error) {
	filter := bson.M{"$or": []bson.M{
		{"username": identifier},
		{"email": identifier},
	}}

	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return userM.ToEntity(), nil
}

// ExistsByUsernameOrEmail reports whether a user already holds the given
// username or email.
func (repo *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	filter := bson.M{"$or": []bson.M{
		{"username": username},
		{"email": email},
	}}

	count, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, errors.Wrap(err, "failed to count users")
	}

	return count > 0, nil
}

// Create persists a new user and fills in the generated id and timestamps.
// Unique index violations surface as repository.ErrDuplicateKey.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	userM := model.FromUserEntity(user)
	result, err := repo.coll.InsertOne(ctx, userM)
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateKey
		}

		return errors.Wrap(err, "failed to create user")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}

	return nil
}

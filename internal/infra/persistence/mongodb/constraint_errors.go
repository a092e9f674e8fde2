package mongodb

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"empdir/internal/domain/repository"
)

// isUniqueConstraintViolation reports whether the write failed on a unique
// index (MongoDB duplicate key, error code 11000).
func isUniqueConstraintViolation(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// parseObjectID converts a hex id into an ObjectID, mapping malformed input
// to the domain-level ErrInvalidID.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrInvalidID
	}

	return oid, nil
}

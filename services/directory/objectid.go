package directory

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ainfakroun/database/repository"
)

// parseID converts a path identifier into an ObjectID. A malformed
// identifier can never match a document, so it is reported as not-found
// rather than as a validation failure.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrNotFound
	}
	return oid, nil
}

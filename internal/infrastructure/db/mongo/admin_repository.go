package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const adminsCollection = "admins"

// MongoAdminRepository holds the dynamic privileged set. Membership is a
// single-document existence check; the authorization resolver treats any
// error here as "no dynamic admins".
type MongoAdminRepository struct {
	coll *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *MongoAdminRepository {
	return &MongoAdminRepository{coll: db.Collection(adminsCollection)}
}

func (r *MongoAdminRepository) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return false, fmt.Errorf("admin membership: %w", err)
	}
	return n > 0, nil
}

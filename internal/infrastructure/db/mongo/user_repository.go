package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/homeworkbot/panel-api/internal/core/domain"
)

const usersCollection = "users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	UserID    int64  `bson:"user_id"`
	Username  string `bson:"username,omitempty"`
	FirstName string `bson:"first_name,omitempty"`
	MutedAll  bool   `bson:"muted_all,omitempty"`
	CreatedAt int64  `bson:"created_at,omitempty"`
}

func (mu mongoUser) toDomain() domain.User {
	return domain.User{
		UserID:    mu.UserID,
		Username:  mu.Username,
		FirstName: mu.FirstName,
		MutedAll:  mu.MutedAll,
		CreatedAt: unixToTime(mu.CreatedAt),
	}
}

func (r *MongoUserRepository) FindByID(ctx context.Context, userID int64) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	u := mu.toDomain()
	return &u, nil
}

func (r *MongoUserRepository) List(ctx context.Context, limit int64) ([]domain.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []domain.User
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, mu.toDomain())
	}
	return users, cur.Err()
}

// SetMuted toggles muted_all, creating a minimal record when the id is
// unknown.
func (r *MongoUserRepository) SetMuted(ctx context.Context, userID int64, muted bool) error {
	update := bson.M{
		"$set":         bson.M{"muted_all": muted},
		"$setOnInsert": bson.M{"user_id": userID, "created_at": time.Now().UTC().Unix()},
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"user_id": userID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("set muted: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) ListRecipients(ctx context.Context) ([]int64, error) {
	filter := bson.M{"muted_all": bson.M{"$ne": true}}
	opts := options.Find().SetProjection(bson.M{"user_id": 1})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}
	defer cur.Close(ctx)

	var ids []int64
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode recipient: %w", err)
		}
		ids = append(ids, mu.UserID)
	}
	return ids, cur.Err()
}

func (r *MongoUserRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}

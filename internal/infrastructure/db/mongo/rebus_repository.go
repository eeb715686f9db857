package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/homeworkbot/panel-api/internal/core/domain"
)

const (
	rebusesCollection    = "rebuses"
	rebusStatsCollection = "rebus_stats"
)

type MongoRebusRepository struct {
	rebuses *mongo.Collection
	stats   *mongo.Collection
}

func NewRebusRepository(db *mongo.Database) *MongoRebusRepository {
	return &MongoRebusRepository{
		rebuses: db.Collection(rebusesCollection),
		stats:   db.Collection(rebusStatsCollection),
	}
}

type mongoRebus struct {
	Kind       string `bson:"kind"`
	Payload    string `bson:"payload"`
	Answer     string `bson:"answer"`
	Difficulty string `bson:"difficulty,omitempty"`
}

func (r *MongoRebusRepository) List(ctx context.Context, limit int64) ([]domain.Rebus, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(limit)
	cur, err := r.rebuses.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list rebuses: %w", err)
	}
	defer cur.Close(ctx)

	var items []domain.Rebus
	for cur.Next(ctx) {
		var mr mongoRebus
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode rebus: %w", err)
		}
		difficulty := mr.Difficulty
		if difficulty == "" {
			difficulty = "medium"
		}
		items = append(items, domain.Rebus{
			Kind:       mr.Kind,
			Payload:    mr.Payload,
			Answer:     mr.Answer,
			Difficulty: difficulty,
		})
	}
	return items, cur.Err()
}

// TopScores aggregates per-user score sums and joins usernames in.
func (r *MongoRebusRepository) TopScores(ctx context.Context, limit int64) ([]domain.RebusScore, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$user_id"},
			{Key: "score", Value: bson.D{{Key: "$sum", Value: "$score"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "score", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: usersCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "user_id"},
			{Key: "as", Value: "user"},
		}}},
	}

	cur, err := r.stats.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate top scores: %w", err)
	}
	defer cur.Close(ctx)

	var top []domain.RebusScore
	for cur.Next(ctx) {
		var row struct {
			UserID int64       `bson:"_id"`
			Score  int64       `bson:"score"`
			User   []mongoUser `bson:"user"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode top score: %w", err)
		}
		score := domain.RebusScore{UserID: row.UserID, Score: row.Score}
		if len(row.User) > 0 {
			score.Username = row.User[0].Username
		}
		top = append(top, score)
	}
	return top, cur.Err()
}

func (r *MongoRebusRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.rebuses.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count rebuses: %w", err)
	}
	return n, nil
}

func (r *MongoRebusRepository) SessionCount(ctx context.Context) (int64, error) {
	n, err := r.stats.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count rebus sessions: %w", err)
	}
	return n, nil
}

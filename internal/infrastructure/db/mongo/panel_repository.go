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

const (
	flagsCollection  = "flags"
	eventsCollection = "events"
)

// MongoFlagRepository persists the global mode switches as "0"/"1" flag
// documents, mirroring the bot's own flag table.
type MongoFlagRepository struct {
	coll *mongo.Collection
}

func NewFlagRepository(db *mongo.Database) *MongoFlagRepository {
	return &MongoFlagRepository{coll: db.Collection(flagsCollection)}
}

func (r *MongoFlagRepository) GetModes(ctx context.Context) (*domain.Modes, error) {
	vacation, err := r.flag(ctx, "vacation")
	if err != nil {
		return nil, err
	}
	maintenance, err := r.flag(ctx, "maintenance")
	if err != nil {
		return nil, err
	}
	return &domain.Modes{Vacation: vacation, Maintenance: maintenance}, nil
}

func (r *MongoFlagRepository) SetModes(ctx context.Context, modes *domain.Modes) error {
	if err := r.setFlag(ctx, "vacation", modes.Vacation); err != nil {
		return err
	}
	return r.setFlag(ctx, "maintenance", modes.Maintenance)
}

func (r *MongoFlagRepository) flag(ctx context.Context, key string) (bool, error) {
	var doc struct {
		Value string `bson:"value"`
	}
	if err := r.coll.FindOne(ctx, bson.M{"key": key}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, fmt.Errorf("read flag %s: %w", key, err)
	}
	return doc.Value == "1", nil
}

func (r *MongoFlagRepository) setFlag(ctx context.Context, key string, on bool) error {
	value := "0"
	if on {
		value = "1"
	}
	update := bson.M{"$set": bson.M{"value": value}, "$setOnInsert": bson.M{"key": key}}
	_, err := r.coll.UpdateOne(ctx, bson.M{"key": key}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("write flag %s: %w", key, err)
	}
	return nil
}

// MongoEventRepository aggregates panel click events for the stats view.
type MongoEventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *MongoEventRepository {
	return &MongoEventRepository{coll: db.Collection(eventsCollection)}
}

func (r *MongoEventRepository) TopTexts(ctx context.Context, since time.Time, limit int64) ([]domain.EventCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "created_at", Value: bson.D{{Key: "$gte", Value: since.UTC().Unix()}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$text"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate events: %w", err)
	}
	defer cur.Close(ctx)

	var top []domain.EventCount
	for cur.Next(ctx) {
		var row struct {
			Text  string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode event count: %w", err)
		}
		top = append(top, domain.EventCount{Text: row.Text, Count: row.Count})
	}
	return top, cur.Err()
}

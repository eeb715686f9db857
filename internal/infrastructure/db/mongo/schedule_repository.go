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

const schedulesCollection = "schedules"

type MongoScheduleRepository struct {
	coll *mongo.Collection
}

func NewScheduleRepository(db *mongo.Database) *MongoScheduleRepository {
	return &MongoScheduleRepository{coll: db.Collection(schedulesCollection)}
}

type mongoScheduleFile struct {
	Kind         string `bson:"kind"`
	FileID       string `bson:"file_id"`
	FileUniqueID string `bson:"file_unique_id,omitempty"`
	AddedAt      int64  `bson:"added_at"`
}

func (r *MongoScheduleRepository) ListByKind(ctx context.Context, kind string, limit int64) ([]domain.ScheduleFile, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "added_at", Value: -1}}).
		SetLimit(limit)
	cur, err := r.coll.Find(ctx, bson.M{"kind": kind}, opts)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer cur.Close(ctx)

	var files []domain.ScheduleFile
	for cur.Next(ctx) {
		var mf mongoScheduleFile
		if err := cur.Decode(&mf); err != nil {
			return nil, fmt.Errorf("decode schedule file: %w", err)
		}
		files = append(files, domain.ScheduleFile{
			Kind:         mf.Kind,
			FileID:       mf.FileID,
			FileUniqueID: mf.FileUniqueID,
			AddedAt:      unixToTime(mf.AddedAt),
		})
	}
	return files, cur.Err()
}

func (r *MongoScheduleRepository) Add(ctx context.Context, file *domain.ScheduleFile) error {
	doc := mongoScheduleFile{
		Kind:         file.Kind,
		FileID:       file.FileID,
		FileUniqueID: file.FileUniqueID,
		AddedAt:      time.Now().UTC().Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("add schedule file: %w", err)
	}
	return nil
}

func (r *MongoScheduleRepository) Clear(ctx context.Context, kind string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"kind": kind}); err != nil {
		return fmt.Errorf("clear schedules: %w", err)
	}
	return nil
}

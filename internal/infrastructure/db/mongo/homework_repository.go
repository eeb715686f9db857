package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/homeworkbot/panel-api/internal/core/domain"
)

const homeworkCollection = "homework"

type MongoHomeworkRepository struct {
	coll *mongo.Collection
}

func NewHomeworkRepository(db *mongo.Database) *MongoHomeworkRepository {
	return &MongoHomeworkRepository{coll: db.Collection(homeworkCollection)}
}

type mongoHomework struct {
	Date string `bson:"hw_date"`
	Text string `bson:"text"`
}

func (r *MongoHomeworkRepository) FindByDate(ctx context.Context, date string) (*domain.Homework, error) {
	var mh mongoHomework
	if err := r.coll.FindOne(ctx, bson.M{"hw_date": date}).Decode(&mh); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrHomeworkNotFound
		}
		return nil, fmt.Errorf("find homework: %w", err)
	}
	return &domain.Homework{Date: mh.Date, Text: mh.Text}, nil
}

func (r *MongoHomeworkRepository) Upsert(ctx context.Context, hw *domain.Homework) error {
	update := bson.M{"$set": bson.M{"text": hw.Text}, "$setOnInsert": bson.M{"hw_date": hw.Date}}
	_, err := r.coll.UpdateOne(ctx, bson.M{"hw_date": hw.Date}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert homework: %w", err)
	}
	return nil
}

func (r *MongoHomeworkRepository) Delete(ctx context.Context, date string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"hw_date": date}); err != nil {
		return fmt.Errorf("delete homework: %w", err)
	}
	return nil
}

func (r *MongoHomeworkRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count homework: %w", err)
	}
	return n, nil
}

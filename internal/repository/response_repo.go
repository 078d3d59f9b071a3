package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"confmatch/internal/model"
)

// ErrNotFound signals that a user has no prior submission. Callers must
// distinguish it from other lookup failures: absence is not an error
// for the prefill path.
var ErrNotFound = errors.New("questionnaire response not found")

type ResponseRepo interface {
	GetByUserID(ctx context.Context, userID string) (*model.Response, error)
	Save(ctx context.Context, resp *model.Response) error
}

type responseRepo struct {
	collection *mongo.Collection
}

func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{
		collection: db.Collection("questionnaire_responses"),
	}
}

func (r *responseRepo) GetByUserID(ctx context.Context, userID string) (*model.Response, error) {
	var resp model.Response
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&resp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Save upserts the record keyed by user id; resubmitting replaces the
// previous answers wholesale.
func (r *responseRepo) Save(ctx context.Context, resp *model.Response) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": resp.UserID}, resp, opts)
	return err
}

package storage

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Rahul77977/gagan-server/models"
)

func (s *Store) CreateCategory(ctx context.Context, cat *models.Category) error {
	if cat.ID.IsZero() {
		cat.ID = primitive.NewObjectID()
	}
	_, err := s.categories.InsertOne(ctx, cat)
	return err
}

func (s *Store) UpdateCategory(ctx context.Context, cat *models.Category) error {
	_, err := s.categories.ReplaceOne(ctx, bson.M{"_id": cat.ID}, cat)
	return err
}

func (s *Store) Categories(ctx context.Context) ([]models.Category, error) {
	cur, err := s.categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var cats []models.Category
	if err := cur.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (s *Store) CategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var cat models.Category
	err := s.categories.FindOne(ctx, bson.M{"slug": slug}).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *Store) CategoryByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var cat models.Category
	err := s.categories.FindOne(ctx, bson.M{"_id": id}).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// DeleteCategory removes the category record only. Products keep their
// soft reference; there is no cascading delete.
func (s *Store) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.categories.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

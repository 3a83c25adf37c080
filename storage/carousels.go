package storage

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Rahul77977/gagan-server/models"
)

func (s *Store) CreateCarouselImage(ctx context.Context, img *models.CarouselImage) error {
	if img.ID.IsZero() {
		img.ID = primitive.NewObjectID()
	}
	_, err := s.carousels.InsertOne(ctx, img)
	return err
}

func (s *Store) CarouselImages(ctx context.Context) ([]models.CarouselImage, error) {
	cur, err := s.carousels.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var images []models.CarouselImage
	if err := cur.All(ctx, &images); err != nil {
		return nil, err
	}
	return images, nil
}

func (s *Store) CarouselImageByID(ctx context.Context, id primitive.ObjectID) (*models.CarouselImage, error) {
	var img models.CarouselImage
	err := s.carousels.FindOne(ctx, bson.M{"_id": id}).Decode(&img)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// UpdateCarouselImage repoints the record at a new remote asset and returns
// the updated record, or (nil, nil) when it does not exist.
func (s *Store) UpdateCarouselImage(ctx context.Context, id primitive.ObjectID, publicID, url string) (*models.CarouselImage, error) {
	update := bson.M{"$set": bson.M{"public_id": publicID, "url": url}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var img models.CarouselImage
	err := s.carousels.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&img)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (s *Store) DeleteCarouselImage(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.carousels.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Rahul77977/gagan-server/models"
)

// ProductFilter narrows a product listing. Categories is an inclusion set;
// the price bounds are inclusive and only applied when Priced is set.
type ProductFilter struct {
	Categories []primitive.ObjectID
	MinPrice   float64
	MaxPrice   float64
	Priced     bool
}

func (s *Store) CreateProduct(ctx context.Context, p *models.Product) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := s.products.InsertOne(ctx, p)
	return err
}

func (s *Store) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var p models.Product
	err := s.products.FindOne(ctx, bson.M{"slug": slug}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ProductByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var p models.Product
	err := s.products.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// LatestProducts returns at most limit products, newest created first.
func (s *Store) LatestProducts(ctx context.Context, limit int64) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	return s.findProducts(ctx, bson.M{}, opts)
}

// ProductPage returns one 1-indexed page of products, newest created first.
func (s *Store) ProductPage(ctx context.Context, page, perPage int64) ([]models.Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * perPage).
		SetLimit(perPage)
	return s.findProducts(ctx, bson.M{}, opts)
}

func (s *Store) FilterProducts(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	filter := bson.M{}
	if len(f.Categories) > 0 {
		filter["category"] = bson.M{"$in": f.Categories}
	}
	if f.Priced {
		filter["price"] = bson.M{"$gte": f.MinPrice, "$lte": f.MaxPrice}
	}
	return s.findProducts(ctx, filter, options.Find())
}

func (s *Store) SearchProducts(ctx context.Context, keyword string) ([]models.Product, error) {
	pattern := primitive.Regex{Pattern: keyword, Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"description": pattern},
	}}
	return s.findProducts(ctx, filter, options.Find())
}

func (s *Store) RelatedProducts(ctx context.Context, categoryID, excludeID primitive.ObjectID, limit int64) ([]models.Product, error) {
	filter := bson.M{
		"category": categoryID,
		"_id":      bson.M{"$ne": excludeID},
	}
	return s.findProducts(ctx, filter, options.Find().SetLimit(limit))
}

// ProductsByCategoryPage pages through one category's products and reports
// the total count for that category.
func (s *Store) ProductsByCategoryPage(ctx context.Context, categoryID primitive.ObjectID, page, perPage int64) ([]models.Product, int64, error) {
	filter := bson.M{"category": categoryID}
	total, err := s.products.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().SetSkip((page - 1) * perPage).SetLimit(perPage)
	products, err := s.findProducts(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (s *Store) UpdateProduct(ctx context.Context, p *models.Product) error {
	p.UpdatedAt = time.Now()
	_, err := s.products.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	return err
}

func (s *Store) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.products.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DecrementProductStock subtracts qty from the product's stock. The update
// is unguarded: there is no availability check and the result may go
// negative.
func (s *Store) DecrementProductStock(ctx context.Context, id primitive.ObjectID, qty int) error {
	_, err := s.products.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"stock": -qty}})
	return err
}

func (s *Store) CountProducts(ctx context.Context) (int64, error) {
	return s.products.CountDocuments(ctx, bson.M{})
}

func (s *Store) findProducts(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Product, error) {
	cur, err := s.products.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

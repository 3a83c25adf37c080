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

func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	_, err := s.orders.InsertOne(ctx, order)
	return err
}

func (s *Store) OrdersByBuyer(ctx context.Context, buyerID primitive.ObjectID) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.findOrders(ctx, bson.M{"buyer": buyerID}, opts)
}

func (s *Store) OrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := s.orders.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus sets the order's status and returns the updated record,
// or (nil, nil) when the order does not exist.
func (s *Store) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order models.Order
	err := s.orders.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Store) AllOrders(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.findOrders(ctx, bson.M{}, opts)
}

func (s *Store) CountOrders(ctx context.Context) (int64, error) {
	return s.orders.CountDocuments(ctx, bson.M{})
}

// OrderPayments loads every order's payment sub-record. The caller sums
// amounts client-side; fine at this scale.
func (s *Store) OrderPayments(ctx context.Context) ([]models.Payment, error) {
	opts := options.Find().SetProjection(bson.M{"payment": 1})
	cur, err := s.orders.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	payments := make([]models.Payment, 0, len(orders))
	for _, o := range orders {
		payments = append(payments, o.Payment)
	}
	return payments, nil
}

func (s *Store) findOrders(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Order, error) {
	cur, err := s.orders.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

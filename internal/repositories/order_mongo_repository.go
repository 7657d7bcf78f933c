package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pasar/internal/models"
)

// MongoOrderRepository is a MongoDB implementation of OrderRepository.
type MongoOrderRepository struct {
	coll *mongo.Collection
}

// NewMongoOrderRepository creates a new instance of MongoOrderRepository
// backed by the "orders" collection of db.
func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{
		coll: db.Collection("orders"),
	}
}

// Create inserts a new order document, generating an id when none is set.
func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID retrieves an order by id. Absence is not an error.
func (r *MongoOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// GetByUser retrieves the buyer's orders, newest first.
func (r *MongoOrderRepository) GetByUser(ctx context.Context, userID string) ([]models.Order, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, newestFirst("createdAt"))
	if err != nil {
		return nil, fmt.Errorf("failed to find orders for user %s: %w", userID, err)
	}
	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// GetByProducts retrieves orders containing at least one line item whose
// product id is in productIDs, newest first.
func (r *MongoOrderRepository) GetByProducts(ctx context.Context, productIDs []string) ([]models.Order, error) {
	if len(productIDs) == 0 {
		return []models.Order{}, nil
	}
	cursor, err := r.coll.Find(ctx, bson.M{"items.productId": bson.M{"$in": productIDs}}, newestFirst("createdAt"))
	if err != nil {
		return nil, fmt.Errorf("failed to find orders by products: %w", err)
	}
	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders by products: %w", err)
	}
	return orders, nil
}

// UpdateStatus overwrites the status of an order.
func (r *MongoOrderRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return fmt.Errorf("failed to update status for order %s: %w", id, err)
	}
	return nil
}

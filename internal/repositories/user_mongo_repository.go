package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pasar/internal/models"
)

// MongoUserRepository is a MongoDB implementation of UserRepository.
type MongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository creates a new instance of MongoUserRepository
// backed by the "users" collection of db.
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		coll: db.Collection("users"),
	}
}

// Create inserts a new user document, generating an id when none is set.
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Products == nil {
		user.Products = []string{}
	}
	if user.Cart == nil {
		user.Cart = []string{}
	}
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by id. Absence is not an error.
func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email. Absence is not an error.
func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// UpdateCart overwrites the user's cart in a single targeted write.
func (r *MongoUserRepository) UpdateCart(ctx context.Context, userID string, cart []string) error {
	if cart == nil {
		cart = []string{}
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": bson.M{"cart": cart}})
	if err != nil {
		return fmt.Errorf("failed to update cart for user %s: %w", userID, err)
	}
	return nil
}

// AddProduct appends productID to the seller's owned-products list.
func (r *MongoUserRepository) AddProduct(ctx context.Context, userID, productID string) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$addToSet": bson.M{"products": productID}})
	if err != nil {
		return fmt.Errorf("failed to record product %s for user %s: %w", productID, userID, err)
	}
	return nil
}

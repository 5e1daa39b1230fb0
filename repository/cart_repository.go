package repository

import (
	"context"
	"time"

	"github.com/Chekwachibuike/ecommerce/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CartRepository defines data access for carts, keyed by user.
type CartRepository interface {
	Create(ctx context.Context, cart *models.Cart) error
	FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	UpdateByUserID(ctx context.Context, userID primitive.ObjectID, updates bson.M) (int64, error)
	DeleteByUserID(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

// MongoCartRepository implements CartRepository on a Mongo collection.
type MongoCartRepository struct {
	collection *mongo.Collection
}

func NewMongoCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{collection: db.Collection("carts")}
}

func (r *MongoCartRepository) Create(ctx context.Context, cart *models.Cart) error {
	now := time.Now().UTC()
	cart.CreatedAt = now
	cart.UpdatedAt = now
	if cart.CartItem == nil {
		cart.CartItem = []primitive.ObjectID{}
	}
	res, err := r.collection.InsertOne(ctx, cart)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		cart.ID = oid
	}
	return nil
}

func (r *MongoCartRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpdateByUserID writes item list and subtotal in one update. The returned
// count is the number of matched carts; zero means no cart exists for the user.
func (r *MongoCartRepository) UpdateByUserID(ctx context.Context, userID primitive.ObjectID, updates bson.M) (int64, error) {
	updates["updated_at"] = time.Now().UTC()
	res, err := r.collection.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": updates})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *MongoCartRepository) DeleteByUserID(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

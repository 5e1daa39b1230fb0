package repository

import (
	"context"
	"time"

	"github.com/Chekwachibuike/ecommerce/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CartItemRepository defines data access for cart items.
type CartItemRepository interface {
	Create(ctx context.Context, item *models.CartItem) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.CartItem, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.CartItem, error)
	FindAll(ctx context.Context) ([]models.CartItem, error)
	FindByProductID(ctx context.Context, productID primitive.ObjectID) ([]models.CartItem, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// MongoCartItemRepository implements CartItemRepository on a Mongo collection.
type MongoCartItemRepository struct {
	collection *mongo.Collection
}

func NewMongoCartItemRepository(db *mongo.Database) *MongoCartItemRepository {
	return &MongoCartItemRepository{collection: db.Collection("cart_items")}
}

func (r *MongoCartItemRepository) Create(ctx context.Context, item *models.CartItem) error {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	res, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}
	return nil
}

func (r *MongoCartItemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MongoCartItemRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.CartItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.CartItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoCartItemRepository) FindAll(ctx context.Context) ([]models.CartItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.CartItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoCartItemRepository) FindByProductID(ctx context.Context, productID primitive.ObjectID) ([]models.CartItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"product": productID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.CartItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoCartItemRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (int64, error) {
	updates["updated_at"] = time.Now().UTC()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *MongoCartItemRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

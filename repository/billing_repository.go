package repository

import (
	"context"
	"time"

	"github.com/Chekwachibuike/ecommerce/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BillingRepository defines data access for billing information, keyed by user.
type BillingRepository interface {
	Create(ctx context.Context, info *models.BillingInformation) error
	FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.BillingInformation, error)
	UpdateByUserID(ctx context.Context, userID primitive.ObjectID, updates bson.M) (int64, error)
	DeleteByUserID(ctx context.Context, userID primitive.ObjectID) (int64, error)
	FindAll(ctx context.Context, page, limit int) ([]models.BillingInformation, int64, error)
}

// MongoBillingRepository implements BillingRepository on a Mongo collection.
type MongoBillingRepository struct {
	collection *mongo.Collection
}

func NewMongoBillingRepository(db *mongo.Database) *MongoBillingRepository {
	return &MongoBillingRepository{collection: db.Collection("billing_information")}
}

func (r *MongoBillingRepository) Create(ctx context.Context, info *models.BillingInformation) error {
	now := time.Now().UTC()
	info.CreatedAt = now
	info.UpdatedAt = now
	res, err := r.collection.InsertOne(ctx, info)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		info.ID = oid
	}
	return nil
}

func (r *MongoBillingRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.BillingInformation, error) {
	var info models.BillingInformation
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&info)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *MongoBillingRepository) UpdateByUserID(ctx context.Context, userID primitive.ObjectID, updates bson.M) (int64, error) {
	updates["updated_at"] = time.Now().UTC()
	res, err := r.collection.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": updates})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *MongoBillingRepository) DeleteByUserID(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *MongoBillingRepository) FindAll(ctx context.Context, page, limit int) ([]models.BillingInformation, int64, error) {
	skip := int64((page - 1) * limit)
	findOptions := options.Find().SetLimit(int64(limit)).SetSkip(skip)

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var infos []models.BillingInformation
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	return infos, total, nil
}

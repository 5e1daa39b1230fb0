package services

import (
	"context"
	"errors"

	"github.com/Chekwachibuike/ecommerce/models"
	"github.com/Chekwachibuike/ecommerce/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// BillingService manages billing information, one record per user.
type BillingService interface {
	Create(ctx context.Context, req *models.CreateBillingInfoRequest) (*models.BillingInformation, *ServiceError)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.BillingInformation, *ServiceError)
	List(ctx context.Context, page, limit int) ([]models.BillingInformation, int64, *ServiceError)
	Update(ctx context.Context, userID primitive.ObjectID, req *models.UpdateBillingInfoRequest) (*models.BillingInformation, *ServiceError)
	Delete(ctx context.Context, userID primitive.ObjectID) *ServiceError
}

type billingServiceImpl struct {
	repo     repository.BillingRepository
	userRepo repository.UserRepository
	logger   *zap.Logger
}

func NewBillingService(repo repository.BillingRepository, userRepo repository.UserRepository, logger *zap.Logger) BillingService {
	return &billingServiceImpl{repo: repo, userRepo: userRepo, logger: logger}
}

// Create verifies the user exists and that no billing record is already
// attached to them.
func (s *billingServiceImpl) Create(ctx context.Context, req *models.CreateBillingInfoRequest) (*models.BillingInformation, *ServiceError) {
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, errBadRequest("Invalid user ID format")
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound("User not found")
		}
		s.logger.Error("Failed to fetch user for billing", zap.Error(err))
		return nil, errInternal("Failed to create billing information")
	}

	if _, err := s.repo.FindByUserID(ctx, userID); err == nil {
		return nil, errConflict("Billing information already exists for this user")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		s.logger.Error("Failed to check existing billing information", zap.Error(err))
		return nil, errInternal("Failed to create billing information")
	}

	info := &models.BillingInformation{
		UserID:     userID,
		Address:    req.Address,
		Country:    req.Country,
		ZipCode:    req.ZipCode,
		PostalCode: req.PostalCode,
	}
	if err := s.repo.Create(ctx, info); err != nil {
		s.logger.Error("Failed to create billing information", zap.Error(err))
		return nil, errInternal("Failed to create billing information")
	}

	s.logger.Info("Billing information created", zap.String("user", userID.Hex()))
	return info, nil
}

func (s *billingServiceImpl) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.BillingInformation, *ServiceError) {
	info, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound("Billing information not found")
		}
		s.logger.Error("Failed to fetch billing information", zap.Error(err))
		return nil, errInternal("Failed to fetch billing information")
	}
	return info, nil
}

func (s *billingServiceImpl) List(ctx context.Context, page, limit int) ([]models.BillingInformation, int64, *ServiceError) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	infos, total, err := s.repo.FindAll(ctx, page, limit)
	if err != nil {
		s.logger.Error("Failed to list billing information", zap.Error(err))
		return nil, 0, errInternal("Failed to list billing information")
	}
	return infos, total, nil
}

func (s *billingServiceImpl) Update(ctx context.Context, userID primitive.ObjectID, req *models.UpdateBillingInfoRequest) (*models.BillingInformation, *ServiceError) {
	updates := bson.M{}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.ZipCode != nil {
		updates["zip_code"] = *req.ZipCode
	}
	if req.PostalCode != nil {
		updates["postal_code"] = *req.PostalCode
	}
	if len(updates) == 0 {
		return nil, errBadRequest("No update fields provided")
	}

	matched, err := s.repo.UpdateByUserID(ctx, userID, updates)
	if err != nil {
		s.logger.Error("Failed to update billing information", zap.Error(err))
		return nil, errInternal("Failed to update billing information")
	}
	if matched == 0 {
		return nil, errNotFound("Billing information not found")
	}
	return s.GetByUserID(ctx, userID)
}

func (s *billingServiceImpl) Delete(ctx context.Context, userID primitive.ObjectID) *ServiceError {
	deleted, err := s.repo.DeleteByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to delete billing information", zap.Error(err))
		return errInternal("Failed to delete billing information")
	}
	if deleted == 0 {
		return errNotFound("Billing information not found")
	}
	return nil
}

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

// CategoryService defines category management.
type CategoryService interface {
	Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, *ServiceError)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Category, *ServiceError)
	List(ctx context.Context) ([]models.Category, *ServiceError)
	Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateCategoryRequest) (*models.Category, *ServiceError)
	Delete(ctx context.Context, id primitive.ObjectID) *ServiceError
}

type categoryServiceImpl struct {
	repo   repository.CategoryRepository
	logger *zap.Logger
}

func NewCategoryService(repo repository.CategoryRepository, logger *zap.Logger) CategoryService {
	return &categoryServiceImpl{repo: repo, logger: logger}
}

// Create checks for an existing category with the same name or slug before
// inserting. The check and the insert are separate operations; a concurrent
// create for the same name can slip through.
func (s *categoryServiceImpl) Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, *ServiceError) {
	slug := Slugify(req.Name)

	_, err := s.repo.FindByNameOrSlug(ctx, req.Name, slug)
	if err == nil {
		return nil, errConflict("Category with this name already exists")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		s.logger.Error("Failed to check existing category", zap.Error(err))
		return nil, errInternal("Failed to create category")
	}

	category := &models.Category{
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		Slug:        slug,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		s.logger.Error("Failed to create category", zap.Error(err))
		return nil, errInternal("Failed to create category")
	}

	s.logger.Info("Category created", zap.String("id", category.ID.Hex()), zap.String("slug", category.Slug))
	return category, nil
}

func (s *categoryServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Category, *ServiceError) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound("Category not found")
		}
		s.logger.Error("Failed to fetch category", zap.Error(err))
		return nil, errInternal("Failed to fetch category")
	}
	return category, nil
}

func (s *categoryServiceImpl) List(ctx context.Context) ([]models.Category, *ServiceError) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list categories", zap.Error(err))
		return nil, errInternal("Failed to list categories")
	}
	return categories, nil
}

// Update applies a partial patch; a new name re-derives the slug.
func (s *categoryServiceImpl) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateCategoryRequest) (*models.Category, *ServiceError) {
	updates := bson.M{}
	if req.Name != nil {
		updates["name"] = *req.Name
		updates["slug"] = Slugify(*req.Name)
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return nil, errBadRequest("No update fields provided")
	}

	matched, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		s.logger.Error("Failed to update category", zap.Error(err))
		return nil, errInternal("Failed to update category")
	}
	if matched == 0 {
		return nil, errNotFound("Category not found")
	}
	return s.GetByID(ctx, id)
}

func (s *categoryServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) *ServiceError {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete category", zap.Error(err))
		return errInternal("Failed to delete category")
	}
	if deleted == 0 {
		return errNotFound("Category not found")
	}
	s.logger.Info("Category deleted", zap.String("id", id.Hex()))
	return nil
}

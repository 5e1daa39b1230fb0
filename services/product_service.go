package services

import (
	"context"
	"errors"

	"github.com/Chekwachibuike/ecommerce/models"
	"github.com/Chekwachibuike/ecommerce/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ProductService defines catalog management for products.
type ProductService interface {
	Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.ProductDetail, *ServiceError)
	GetBySlug(ctx context.Context, slug string) (*models.ProductDetail, *ServiceError)
	GetBySKU(ctx context.Context, sku int) (*models.ProductDetail, *ServiceError)
	GetByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, *ServiceError)
	GetFeatured(ctx context.Context, limit int) ([]models.Product, *ServiceError)
	GetInStock(ctx context.Context) ([]models.Product, *ServiceError)
	GetByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.Product, *ServiceError)
	Search(ctx context.Context, term string) ([]models.Product, *ServiceError)
	List(ctx context.Context, params models.ListProductsParams) ([]models.Product, int64, *ServiceError)
	GetRelated(ctx context.Context, id primitive.ObjectID, limit int) ([]models.Product, *ServiceError)
	Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateProductRequest) (*models.ProductDetail, *ServiceError)
	UpdateStock(ctx context.Context, id primitive.ObjectID, quantity int) (*models.ProductDetail, *ServiceError)
	Delete(ctx context.Context, id primitive.ObjectID) *ServiceError
}

type productServiceImpl struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       *zap.Logger
}

func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, logger *zap.Logger) ProductService {
	return &productServiceImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// ParseObjectIDs converts hex strings into ObjectIDs, failing on the first
// malformed value.
func ParseObjectIDs(hexIDs []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, h := range hexIDs {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// validateCategories performs the count-based referential check: the number of
// categories found must equal the number of IDs supplied.
func (s *productServiceImpl) validateCategories(ctx context.Context, ids []primitive.ObjectID) *ServiceError {
	if len(ids) == 0 {
		return errBadRequest("At least one category is required")
	}
	count, err := s.categoryRepo.CountByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to count categories", zap.Error(err))
		return errInternal("Failed to validate categories")
	}
	if count != int64(len(ids)) {
		return errBadRequest("One or more category IDs are invalid")
	}
	return nil
}

// Create validates every category reference, then derives the sku and slug
// before persisting.
func (s *productServiceImpl) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError) {
	categoryIDs, err := ParseObjectIDs(req.Category)
	if err != nil {
		return nil, errBadRequest("Invalid category ID format")
	}
	if svcErr := s.validateCategories(ctx, categoryIDs); svcErr != nil {
		return nil, svcErr
	}

	product := &models.Product{
		Title:             req.Title,
		Feature:           req.Feature,
		Price:             req.Price,
		Category:          categoryIDs,
		InStock:           req.InStock,
		Description:       req.Description,
		IsFeatured:        req.IsFeatured,
		SKU:               GenerateSKU(),
		Quantity:          req.Quantity,
		IsActive:          req.IsActive,
		Slug:              Slugify(req.Title),
		InTheBox:          req.InTheBox,
		RelatedCategories: req.RelatedCategories,
		ProductGallery:    req.ProductGallery,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, errInternal("Failed to create product")
	}

	s.logger.Info("Product created",
		zap.String("id", product.ID.Hex()),
		zap.String("slug", product.Slug),
		zap.Int("sku", product.SKU),
	)
	return product, nil
}

func (s *productServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ProductDetail, *ServiceError) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound("Product not found")
		}
		s.logger.Error("Failed to fetch product", zap.Error(err))
		return nil, errInternal("Failed to fetch product")
	}
	return s.resolveCategories(ctx, product)
}

func (s *productServiceImpl) GetBySlug(ctx context.Context, slug string) (*models.ProductDetail, *ServiceError) {
	product, err := s.productRepo.FindOne(ctx, bson.M{"slug": slug})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound("Product not found")
		}
		s.logger.Error("Failed to fetch product by slug", zap.Error(err))
		return nil, errInternal("Failed to fetch product")
	}
	return s.resolveCategories(ctx, product)
}

func (s *productServiceImpl) GetBySKU(ctx context.Context, sku int) (*models.ProductDetail, *ServiceError) {
	product, err := s.productRepo.FindOne(ctx, bson.M{"sku": sku})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound("Product not found")
		}
		s.logger.Error("Failed to fetch product by sku", zap.Error(err))
		return nil, errInternal("Failed to fetch product")
	}
	return s.resolveCategories(ctx, product)
}

// GetByCategory verifies the category exists, then returns products holding a
// reference to it.
func (s *productServiceImpl) GetByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, *ServiceError) {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound("Category not found")
		}
		s.logger.Error("Failed to fetch category", zap.Error(err))
		return nil, errInternal("Failed to fetch products")
	}

	products, err := s.productRepo.Find(ctx, bson.M{"category": categoryID}, nil)
	if err != nil {
		s.logger.Error("Failed to fetch products by category", zap.Error(err))
		return nil, errInternal("Failed to fetch products")
	}
	return products, nil
}

func (s *productServiceImpl) GetFeatured(ctx context.Context, limit int) ([]models.Product, *ServiceError) {
	findOptions := options.Find().SetLimit(int64(limit))
	products, err := s.productRepo.Find(ctx, bson.M{"is_featured": true}, findOptions)
	if err != nil {
		s.logger.Error("Failed to fetch featured products", zap.Error(err))
		return nil, errInternal("Failed to fetch products")
	}
	return products, nil
}

func (s *productServiceImpl) GetInStock(ctx context.Context) ([]models.Product, *ServiceError) {
	filter := bson.M{"in_stock": true, "quantity": bson.M{"$gt": 0}}
	products, err := s.productRepo.Find(ctx, filter, nil)
	if err != nil {
		s.logger.Error("Failed to fetch in-stock products", zap.Error(err))
		return nil, errInternal("Failed to fetch products")
	}
	return products, nil
}

func (s *productServiceImpl) GetByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.Product, *ServiceError) {
	filter := bson.M{"price": bson.M{"$gte": minPrice, "$lte": maxPrice}}
	products, err := s.productRepo.Find(ctx, filter, nil)
	if err != nil {
		s.logger.Error("Failed to fetch products by price range", zap.Error(err))
		return nil, errInternal("Failed to fetch products")
	}
	return products, nil
}

// Search matches a case-insensitive substring over title and description.
func (s *productServiceImpl) Search(ctx context.Context, term string) ([]models.Product, *ServiceError) {
	pattern := primitive.Regex{Pattern: term, Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"title": pattern},
		bson.M{"description": pattern},
	}}
	products, err := s.productRepo.Find(ctx, filter, nil)
	if err != nil {
		s.logger.Error("Failed to search products", zap.Error(err))
		return nil, errInternal("Failed to search products")
	}
	return products, nil
}

var productSortKeys = map[string]bson.D{
	"price_asc":       {{Key: "price", Value: 1}},
	"price_desc":      {{Key: "price", Value: -1}},
	"title_asc":       {{Key: "title", Value: 1}},
	"title_desc":      {{Key: "title", Value: -1}},
	"created_at_asc":  {{Key: "created_at", Value: 1}},
	"created_at_desc": {{Key: "created_at", Value: -1}},
}

// List returns a filtered, sorted page of products and the total match count.
func (s *productServiceImpl) List(ctx context.Context, params models.ListProductsParams) ([]models.Product, int64, *ServiceError) {
	filter := bson.M{}
	if params.IsFeatured != nil {
		filter["is_featured"] = *params.IsFeatured
	}
	if params.InStock != nil {
		filter["in_stock"] = *params.InStock
	}
	if params.CategoryID != primitive.NilObjectID {
		filter["category"] = params.CategoryID
	}
	if params.MinPrice != nil || params.MaxPrice != nil {
		price := bson.M{}
		if params.MinPrice != nil {
			price["$gte"] = *params.MinPrice
		}
		if params.MaxPrice != nil {
			price["$lte"] = *params.MaxPrice
		}
		filter["price"] = price
	}
	if params.Search != "" {
		filter["title"] = primitive.Regex{Pattern: params.Search, Options: "i"}
	}

	sortLogic, ok := productSortKeys[params.SortKey]
	if !ok {
		sortLogic = bson.D{{Key: "created_at", Value: -1}}
	}

	findOptions := options.Find().
		SetSort(sortLogic).
		SetLimit(int64(params.PageSize)).
		SetSkip(int64((params.Page - 1) * params.PageSize))

	products, err := s.productRepo.Find(ctx, filter, findOptions)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, 0, errInternal("Failed to list products")
	}

	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to count products", zap.Error(err))
		return nil, 0, errInternal("Failed to list products")
	}
	return products, total, nil
}

// GetRelated returns other products sharing any category or related-category
// tag with the given product, excluding the product itself.
func (s *productServiceImpl) GetRelated(ctx context.Context, id primitive.ObjectID, limit int) ([]models.Product, *ServiceError) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound("Product not found")
		}
		s.logger.Error("Failed to fetch product", zap.Error(err))
		return nil, errInternal("Failed to fetch related products")
	}

	or := bson.A{bson.M{"category": bson.M{"$in": product.Category}}}
	if len(product.RelatedCategories) > 0 {
		or = append(or, bson.M{"related_categories": bson.M{"$in": product.RelatedCategories}})
	}
	filter := bson.M{
		"_id": bson.M{"$ne": id},
		"$or": or,
	}

	findOptions := options.Find().SetLimit(int64(limit))
	products, err := s.productRepo.Find(ctx, filter, findOptions)
	if err != nil {
		s.logger.Error("Failed to fetch related products", zap.Error(err))
		return nil, errInternal("Failed to fetch related products")
	}
	return products, nil
}

// Update applies a partial patch. New categories are re-validated with the
// same count check as Create; a new title re-derives both slug and sku.
func (s *productServiceImpl) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateProductRequest) (*models.ProductDetail, *ServiceError) {
	updates := bson.M{}

	if req.Category != nil {
		categoryIDs, err := ParseObjectIDs(req.Category)
		if err != nil {
			return nil, errBadRequest("Invalid category ID format")
		}
		if svcErr := s.validateCategories(ctx, categoryIDs); svcErr != nil {
			return nil, svcErr
		}
		updates["category"] = categoryIDs
	}
	if req.Title != nil {
		updates["title"] = *req.Title
		updates["slug"] = Slugify(*req.Title)
		updates["sku"] = GenerateSKU()
	}
	if req.Feature != nil {
		updates["feature"] = *req.Feature
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.InStock != nil {
		updates["in_stock"] = *req.InStock
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.InTheBox != nil {
		updates["in_the_box"] = *req.InTheBox
	}
	if req.RelatedCategories != nil {
		updates["related_categories"] = req.RelatedCategories
	}
	if req.ProductGallery != nil {
		updates["product_gallery"] = req.ProductGallery
	}
	if len(updates) == 0 {
		return nil, errBadRequest("No update fields provided")
	}

	matched, err := s.productRepo.Update(ctx, id, updates)
	if err != nil {
		s.logger.Error("Failed to update product", zap.Error(err))
		return nil, errInternal("Failed to update product")
	}
	if matched == 0 {
		return nil, errNotFound("Product not found")
	}
	return s.GetByID(ctx, id)
}

// UpdateStock sets the quantity and derives in_stock from it.
func (s *productServiceImpl) UpdateStock(ctx context.Context, id primitive.ObjectID, quantity int) (*models.ProductDetail, *ServiceError) {
	if quantity < 0 {
		return nil, errBadRequest("Quantity must not be negative")
	}
	updates := bson.M{"quantity": quantity, "in_stock": quantity > 0}
	matched, err := s.productRepo.Update(ctx, id, updates)
	if err != nil {
		s.logger.Error("Failed to update stock", zap.Error(err))
		return nil, errInternal("Failed to update stock")
	}
	if matched == 0 {
		return nil, errNotFound("Product not found")
	}
	return s.GetByID(ctx, id)
}

func (s *productServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) *ServiceError {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete product", zap.Error(err))
		return errInternal("Failed to delete product")
	}
	if deleted == 0 {
		return errNotFound("Product not found")
	}
	s.logger.Info("Product deleted", zap.String("id", id.Hex()))
	return nil
}

func (s *productServiceImpl) resolveCategories(ctx context.Context, product *models.Product) (*models.ProductDetail, *ServiceError) {
	detail := &models.ProductDetail{Product: *product}
	if len(product.Category) == 0 {
		return detail, nil
	}
	categories, err := s.categoryRepo.FindByIDs(ctx, product.Category)
	if err != nil {
		s.logger.Error("Failed to resolve product categories", zap.Error(err))
		return nil, errInternal("Failed to fetch product")
	}
	detail.Categories = categories
	return detail, nil
}

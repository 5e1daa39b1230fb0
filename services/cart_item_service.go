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

// CartItemService manages cart items independently of carts. An item's total
// price is derived from the referenced product's price and the quantity.
type CartItemService interface {
	Create(ctx context.Context, req *models.CreateCartItemRequest) (*models.CartItem, *ServiceError)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.CartItemDetail, *ServiceError)
	List(ctx context.Context) ([]models.CartItem, *ServiceError)
	ListByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.CartItem, *ServiceError)
	UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int) (*models.CartItemDetail, *ServiceError)
	Delete(ctx context.Context, id primitive.ObjectID) *ServiceError
}

type cartItemServiceImpl struct {
	itemRepo    repository.CartItemRepository
	productRepo repository.ProductRepository
	logger      *zap.Logger
}

func NewCartItemService(itemRepo repository.CartItemRepository, productRepo repository.ProductRepository, logger *zap.Logger) CartItemService {
	return &cartItemServiceImpl{
		itemRepo:    itemRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create resolves the product, computes the line total from its current price
// and persists the item.
func (s *cartItemServiceImpl) Create(ctx context.Context, req *models.CreateCartItemRequest) (*models.CartItem, *ServiceError) {
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return nil, errBadRequest("Invalid product ID format")
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound("Product not found")
		}
		s.logger.Error("Failed to fetch product for cart item", zap.Error(err))
		return nil, errInternal("Failed to create cart item")
	}

	total, err := ComputeLineTotal(product.Price, req.Quantity)
	if err != nil {
		return nil, errBadRequest(err.Error())
	}

	item := &models.CartItem{
		Product:    productID,
		Quantity:   req.Quantity,
		TotalPrice: total,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		s.logger.Error("Failed to create cart item", zap.Error(err))
		return nil, errInternal("Failed to create cart item")
	}

	s.logger.Info("Cart item created",
		zap.String("id", item.ID.Hex()),
		zap.String("product", productID.Hex()),
		zap.Int("quantity", item.Quantity),
	)
	return item, nil
}

func (s *cartItemServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*models.CartItemDetail, *ServiceError) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound("Cart item not found")
		}
		s.logger.Error("Failed to fetch cart item", zap.Error(err))
		return nil, errInternal("Failed to fetch cart item")
	}
	return s.resolveProduct(ctx, item), nil
}

func (s *cartItemServiceImpl) List(ctx context.Context) ([]models.CartItem, *ServiceError) {
	items, err := s.itemRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list cart items", zap.Error(err))
		return nil, errInternal("Failed to list cart items")
	}
	return items, nil
}

func (s *cartItemServiceImpl) ListByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.CartItem, *ServiceError) {
	items, err := s.itemRepo.FindByProductID(ctx, productID)
	if err != nil {
		s.logger.Error("Failed to list cart items by product", zap.Error(err))
		return nil, errInternal("Failed to list cart items")
	}
	return items, nil
}

// UpdateQuantity changes the quantity and recomputes the total price from the
// product's current price.
func (s *cartItemServiceImpl) UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int) (*models.CartItemDetail, *ServiceError) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound("Cart item not found")
		}
		s.logger.Error("Failed to fetch cart item", zap.Error(err))
		return nil, errInternal("Failed to update cart item")
	}

	product, err := s.productRepo.FindByID(ctx, item.Product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound("Product not found")
		}
		s.logger.Error("Failed to fetch product for cart item", zap.Error(err))
		return nil, errInternal("Failed to update cart item")
	}

	total, err := ComputeLineTotal(product.Price, quantity)
	if err != nil {
		return nil, errBadRequest(err.Error())
	}

	updates := bson.M{"quantity": quantity, "total_price": total}
	if _, err := s.itemRepo.Update(ctx, id, updates); err != nil {
		s.logger.Error("Failed to update cart item", zap.Error(err))
		return nil, errInternal("Failed to update cart item")
	}

	item.Quantity = quantity
	item.TotalPrice = total
	return &models.CartItemDetail{CartItem: *item, ProductDetail: product}, nil
}

func (s *cartItemServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) *ServiceError {
	deleted, err := s.itemRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete cart item", zap.Error(err))
		return errInternal("Failed to delete cart item")
	}
	if deleted == 0 {
		return errNotFound("Cart item not found")
	}
	return nil
}

func (s *cartItemServiceImpl) resolveProduct(ctx context.Context, item *models.CartItem) *models.CartItemDetail {
	detail := &models.CartItemDetail{CartItem: *item}
	product, err := s.productRepo.FindByID(ctx, item.Product)
	if err == nil {
		detail.ProductDetail = product
	}
	return detail
}

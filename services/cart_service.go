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

// CartService manages one cart per user. The cart stores item references; the
// subtotal is recomputed from current product prices after every mutation.
type CartService interface {
	CreateCart(ctx context.Context, userID primitive.ObjectID) (*models.Cart, *ServiceError)
	GetCart(ctx context.Context, userID primitive.ObjectID) (*models.CartDetail, *ServiceError)
	AddItem(ctx context.Context, userID, cartItemID primitive.ObjectID) (*models.Cart, *ServiceError)
	RemoveItem(ctx context.Context, userID, cartItemID primitive.ObjectID) (*models.Cart, *ServiceError)
	ClearCart(ctx context.Context, userID primitive.ObjectID) *ServiceError
	IsItemInCart(ctx context.Context, userID, cartItemID primitive.ObjectID) (bool, *ServiceError)
}

type cartServiceImpl struct {
	cartRepo    repository.CartRepository
	itemRepo    repository.CartItemRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	logger      *zap.Logger
}

func NewCartService(cartRepo repository.CartRepository, itemRepo repository.CartItemRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository, logger *zap.Logger) CartService {
	return &cartServiceImpl{
		cartRepo:    cartRepo,
		itemRepo:    itemRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (s *cartServiceImpl) CreateCart(ctx context.Context, userID primitive.ObjectID) (*models.Cart, *ServiceError) {
	if _, err := s.cartRepo.FindByUserID(ctx, userID); err == nil {
		return nil, errConflict("Cart already exists for this user")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		s.logger.Error("Failed to check existing cart", zap.Error(err))
		return nil, errInternal("Failed to create cart")
	}

	cart := &models.Cart{UserID: userID, CartItem: []primitive.ObjectID{}}
	if err := s.cartRepo.Create(ctx, cart); err != nil {
		s.logger.Error("Failed to create cart", zap.Error(err))
		return nil, errInternal("Failed to create cart")
	}

	s.logger.Info("Cart created", zap.String("user", userID.Hex()))
	return cart, nil
}

// GetCart returns the cart with its owner and every item's product resolved.
func (s *cartServiceImpl) GetCart(ctx context.Context, userID primitive.ObjectID) (*models.CartDetail, *ServiceError) {
	cart, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound("Cart not found")
		}
		s.logger.Error("Failed to fetch cart", zap.Error(err))
		return nil, errInternal("Failed to fetch cart")
	}

	detail := &models.CartDetail{Cart: *cart, Items: []models.CartItemDetail{}}
	if user, err := s.userRepo.FindByID(ctx, userID); err == nil {
		detail.User = user
	}
	if len(cart.CartItem) == 0 {
		return detail, nil
	}

	items, err := s.itemRepo.FindByIDs(ctx, cart.CartItem)
	if err != nil {
		s.logger.Error("Failed to fetch cart items", zap.Error(err))
		return nil, errInternal("Failed to fetch cart")
	}

	products, svcErr := s.productsForItems(ctx, items)
	if svcErr != nil {
		return nil, svcErr
	}

	for _, item := range items {
		itemDetail := models.CartItemDetail{CartItem: item}
		if product, ok := products[item.Product]; ok {
			p := product
			itemDetail.ProductDetail = &p
		}
		detail.Items = append(detail.Items, itemDetail)
	}
	return detail, nil
}

// AddItem appends a cart item reference, creating the cart on first use, then
// recomputes the subtotal. The load and the write are separate operations;
// concurrent first adds for the same user can insert two carts.
func (s *cartServiceImpl) AddItem(ctx context.Context, userID, cartItemID primitive.ObjectID) (*models.Cart, *ServiceError) {
	if _, err := s.itemRepo.FindByID(ctx, cartItemID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound("Cart item not found")
		}
		s.logger.Error("Failed to fetch cart item", zap.Error(err))
		return nil, errInternal("Failed to add item to cart")
	}

	cart, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			s.logger.Error("Failed to fetch cart", zap.Error(err))
			return nil, errInternal("Failed to add item to cart")
		}
		cart = &models.Cart{UserID: userID, CartItem: []primitive.ObjectID{}}
		if err := s.cartRepo.Create(ctx, cart); err != nil {
			s.logger.Error("Failed to create cart", zap.Error(err))
			return nil, errInternal("Failed to add item to cart")
		}
	}

	cart.CartItem = append(cart.CartItem, cartItemID)
	return s.persistItems(ctx, cart)
}

// RemoveItem drops a cart item reference. Removing an id that is not in the
// cart leaves the cart unchanged.
func (s *cartServiceImpl) RemoveItem(ctx context.Context, userID, cartItemID primitive.ObjectID) (*models.Cart, *ServiceError) {
	cart, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound("Cart not found")
		}
		s.logger.Error("Failed to fetch cart", zap.Error(err))
		return nil, errInternal("Failed to remove item from cart")
	}

	kept := make([]primitive.ObjectID, 0, len(cart.CartItem))
	for _, id := range cart.CartItem {
		if id != cartItemID {
			kept = append(kept, id)
		}
	}
	cart.CartItem = kept
	return s.persistItems(ctx, cart)
}

// ClearCart empties the item list and resets the subtotal. A user without a
// cart gets a not-found error.
func (s *cartServiceImpl) ClearCart(ctx context.Context, userID primitive.ObjectID) *ServiceError {
	matched, err := s.cartRepo.UpdateByUserID(ctx, userID, bson.M{
		"cart_item": []primitive.ObjectID{},
		"sub_total": 0.0,
	})
	if err != nil {
		s.logger.Error("Failed to clear cart", zap.Error(err))
		return errInternal("Failed to clear cart")
	}
	if matched == 0 {
		return errNotFound("Cart not found")
	}
	return nil
}

func (s *cartServiceImpl) IsItemInCart(ctx context.Context, userID, cartItemID primitive.ObjectID) (bool, *ServiceError) {
	cart, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		s.logger.Error("Failed to fetch cart", zap.Error(err))
		return false, errInternal("Failed to check cart")
	}
	for _, id := range cart.CartItem {
		if id == cartItemID {
			return true, nil
		}
	}
	return false, nil
}

// persistItems recomputes the subtotal for the cart's current item list and
// writes both back in one update.
func (s *cartServiceImpl) persistItems(ctx context.Context, cart *models.Cart) (*models.Cart, *ServiceError) {
	subTotal, svcErr := s.computeSubtotal(ctx, cart.CartItem)
	if svcErr != nil {
		return nil, svcErr
	}
	cart.SubTotal = subTotal

	matched, err := s.cartRepo.UpdateByUserID(ctx, cart.UserID, bson.M{
		"cart_item": cart.CartItem,
		"sub_total": cart.SubTotal,
	})
	if err != nil {
		s.logger.Error("Failed to update cart", zap.Error(err))
		return nil, errInternal("Failed to update cart")
	}
	if matched == 0 {
		return nil, errNotFound("Cart not found")
	}
	return cart, nil
}

// computeSubtotal prices the item list against current product prices. Items
// whose product has disappeared contribute nothing.
func (s *cartServiceImpl) computeSubtotal(ctx context.Context, itemIDs []primitive.ObjectID) (float64, *ServiceError) {
	if len(itemIDs) == 0 {
		return 0, nil
	}

	items, err := s.itemRepo.FindByIDs(ctx, itemIDs)
	if err != nil {
		s.logger.Error("Failed to fetch cart items", zap.Error(err))
		return 0, errInternal("Failed to compute cart subtotal")
	}

	products, svcErr := s.productsForItems(ctx, items)
	if svcErr != nil {
		return 0, svcErr
	}

	lineItems := make([]LineItem, 0, len(items))
	for _, item := range items {
		product, ok := products[item.Product]
		if !ok {
			continue
		}
		lineItems = append(lineItems, LineItem{Price: product.Price, Quantity: item.Quantity})
	}
	return ComputeCartSubtotal(lineItems), nil
}

// productsForItems bulk-fetches the products referenced by a set of items and
// indexes them by id.
func (s *cartServiceImpl) productsForItems(ctx context.Context, items []models.CartItem) (map[primitive.ObjectID]models.Product, *ServiceError) {
	productIDs := make([]primitive.ObjectID, 0, len(items))
	seen := make(map[primitive.ObjectID]bool, len(items))
	for _, item := range items {
		if !seen[item.Product] {
			seen[item.Product] = true
			productIDs = append(productIDs, item.Product)
		}
	}
	if len(productIDs) == 0 {
		return map[primitive.ObjectID]models.Product{}, nil
	}

	products, err := s.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		s.logger.Error("Failed to fetch products for cart", zap.Error(err))
		return nil, errInternal("Failed to fetch cart products")
	}

	byID := make(map[primitive.ObjectID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}

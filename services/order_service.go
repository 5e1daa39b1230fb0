package services

import (
	"context"
	"errors"
	"time"

	"github.com/Chekwachibuike/ecommerce/models"
	"github.com/Chekwachibuike/ecommerce/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EventPublisher pushes order events to a message topic.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event *models.OrderCreatedEvent) error
}

// OrderService manages orders. Financial fields are persisted as supplied by
// the caller; the references to user, cart and billing information must exist
// at creation time.
type OrderService interface {
	Create(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *ServiceError)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.OrderDetail, *ServiceError)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.OrderDetail, *ServiceError)
	Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateOrderRequest) (*models.Order, *ServiceError)
	Delete(ctx context.Context, id primitive.ObjectID) *ServiceError
}

type orderServiceImpl struct {
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	cartRepo    repository.CartRepository
	billingRepo repository.BillingRepository
	publisher   EventPublisher
	logger      *zap.Logger
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	cartRepo repository.CartRepository,
	billingRepo repository.BillingRepository,
	publisher EventPublisher,
	logger *zap.Logger,
) OrderService {
	return &orderServiceImpl{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		cartRepo:    cartRepo,
		billingRepo: billingRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// Create checks the three references, persists the order and publishes an
// order-created event. Publishing is best effort; a failed publish does not
// fail the order.
func (s *orderServiceImpl) Create(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *ServiceError) {
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, errBadRequest("Invalid user ID format")
	}
	cartID, err := primitive.ObjectIDFromHex(req.CartID)
	if err != nil {
		return nil, errBadRequest("Invalid cart ID format")
	}
	billingID, err := primitive.ObjectIDFromHex(req.BillingID)
	if err != nil {
		return nil, errBadRequest("Invalid billing ID format")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound("User not found")
		}
		s.logger.Error("Failed to fetch user for order", zap.Error(err))
		return nil, errInternal("Failed to create order")
	}

	cart, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound("Cart not found")
		}
		s.logger.Error("Failed to fetch cart for order", zap.Error(err))
		return nil, errInternal("Failed to create order")
	}
	if cart.ID != cartID {
		return nil, errBadRequest("Cart does not belong to this user")
	}

	billing, err := s.billingRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound("Billing information not found")
		}
		s.logger.Error("Failed to fetch billing information for order", zap.Error(err))
		return nil, errInternal("Failed to create order")
	}
	if billing.ID != billingID {
		return nil, errBadRequest("Billing information does not belong to this user")
	}

	order := &models.Order{
		UserID:      user.ID,
		CartID:      cartID,
		BillingID:   billingID,
		DeliveryFee: req.DeliveryFee,
		VAT:         req.VAT,
		Coupon:      req.Coupon,
		SubTotal:    req.SubTotal,
		Total:       req.Total,
		Currency:    req.Currency,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error("Failed to create order", zap.Error(err))
		return nil, errInternal("Failed to create order")
	}

	if s.publisher != nil {
		event := &models.OrderCreatedEvent{
			EventType: "order.created",
			OrderID:   order.ID.Hex(),
			UserID:    order.UserID.Hex(),
			Total:     order.Total,
			Currency:  order.Currency,
			Timestamp: time.Now().UTC(),
		}
		if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
			s.logger.Warn("Failed to publish order created event",
				zap.String("order", order.ID.Hex()),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("Order created",
		zap.String("id", order.ID.Hex()),
		zap.String("user", order.UserID.Hex()),
		zap.Float64("total", order.Total),
	)
	return order, nil
}

// GetByID returns the order with its user, cart and billing references
// resolved where they still exist.
func (s *orderServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*models.OrderDetail, *ServiceError) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound("Order not found")
		}
		s.logger.Error("Failed to fetch order", zap.Error(err))
		return nil, errInternal("Failed to fetch order")
	}

	detail := &models.OrderDetail{Order: *order}
	if user, err := s.userRepo.FindByID(ctx, order.UserID); err == nil {
		detail.User = user
	}
	if cart, err := s.cartRepo.FindByUserID(ctx, order.UserID); err == nil && cart.ID == order.CartID {
		detail.Cart = cart
	}
	if billing, err := s.billingRepo.FindByUserID(ctx, order.UserID); err == nil && billing.ID == order.BillingID {
		detail.Billing = billing
	}
	return detail, nil
}

// GetByUserID returns the user's orders with references resolved. The user,
// cart and billing records are shared across all of a user's orders, so each
// is fetched once and attached where the stored ids still match.
func (s *orderServiceImpl) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.OrderDetail, *ServiceError) {
	orders, err := s.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to fetch orders", zap.Error(err))
		return nil, errInternal("Failed to fetch orders")
	}

	var user *models.User
	if u, err := s.userRepo.FindByID(ctx, userID); err == nil {
		user = u
	}
	var cart *models.Cart
	if c, err := s.cartRepo.FindByUserID(ctx, userID); err == nil {
		cart = c
	}
	var billing *models.BillingInformation
	if b, err := s.billingRepo.FindByUserID(ctx, userID); err == nil {
		billing = b
	}

	details := make([]models.OrderDetail, 0, len(orders))
	for _, order := range orders {
		detail := models.OrderDetail{Order: order, User: user}
		if cart != nil && cart.ID == order.CartID {
			detail.Cart = cart
		}
		if billing != nil && billing.ID == order.BillingID {
			detail.Billing = billing
		}
		details = append(details, detail)
	}
	return details, nil
}

// Update passes the patch through to the store without recomputing totals.
func (s *orderServiceImpl) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateOrderRequest) (*models.Order, *ServiceError) {
	updates := bson.M{}
	if req.DeliveryFee != nil {
		updates["delivery_fee"] = *req.DeliveryFee
	}
	if req.VAT != nil {
		updates["vat"] = *req.VAT
	}
	if req.Coupon != nil {
		updates["coupon"] = *req.Coupon
	}
	if req.SubTotal != nil {
		updates["sub_total"] = *req.SubTotal
	}
	if req.Total != nil {
		updates["total"] = *req.Total
	}
	if req.Currency != nil {
		updates["currency"] = *req.Currency
	}
	if len(updates) == 0 {
		return nil, errBadRequest("No update fields provided")
	}

	matched, err := s.orderRepo.Update(ctx, id, updates)
	if err != nil {
		s.logger.Error("Failed to update order", zap.Error(err))
		return nil, errInternal("Failed to update order")
	}
	if matched == 0 {
		return nil, errNotFound("Order not found")
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to fetch order after update", zap.Error(err))
		return nil, errInternal("Failed to fetch order")
	}
	return order, nil
}

func (s *orderServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) *ServiceError {
	deleted, err := s.orderRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete order", zap.Error(err))
		return errInternal("Failed to delete order")
	}
	if deleted == 0 {
		return errNotFound("Order not found")
	}
	s.logger.Info("Order deleted", zap.String("id", id.Hex()))
	return nil
}

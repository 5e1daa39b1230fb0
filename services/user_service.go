package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Chekwachibuike/ecommerce/models"
	"github.com/Chekwachibuike/ecommerce/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService defines the identity manager.
type UserService interface {
	Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, *ServiceError)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, *ServiceError)
	GetByEmail(ctx context.Context, email string) (*models.User, *ServiceError)
	List(ctx context.Context) ([]models.User, *ServiceError)
	Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, *ServiceError)
	Delete(ctx context.Context, id primitive.ObjectID) *ServiceError
}

type userServiceImpl struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

func NewUserService(repo repository.UserRepository, logger *zap.Logger) UserService {
	return &userServiceImpl{repo: repo, logger: logger}
}

// HashPassword is the pre-persist transformation for credentials.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a stored hash against a candidate. Any internal
// verification failure yields false, not an error.
func VerifyPassword(storedHash, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(candidate)) == nil
}

func (s *userServiceImpl) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, *ServiceError) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, errConflict("Email already registered")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		s.logger.Error("Failed to check existing email", zap.Error(err))
		return nil, errInternal("Failed to create user")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errInternal("Failed to create user")
	}

	user := &models.User{
		Name:     req.Name,
		Password: hash,
		Email:    req.Email,
		Phone:    FormatPhone(req.Phone),
		Role:     req.Role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, errConflict("Email already registered")
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, errInternal("Failed to create user")
	}

	s.logger.Info("User created", zap.String("id", user.ID.Hex()), zap.String("role", user.Role))
	return user, nil
}

func (s *userServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, *ServiceError) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound("User not found")
		}
		s.logger.Error("Failed to fetch user", zap.Error(err))
		return nil, errInternal("Failed to fetch user")
	}
	return user, nil
}

func (s *userServiceImpl) GetByEmail(ctx context.Context, email string) (*models.User, *ServiceError) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound("User not found")
		}
		s.logger.Error("Failed to fetch user by email", zap.Error(err))
		return nil, errInternal("Failed to fetch user")
	}
	return user, nil
}

func (s *userServiceImpl) List(ctx context.Context) ([]models.User, *ServiceError) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, errInternal("Failed to list users")
	}
	return users, nil
}

// Update applies a partial patch. The password hashing path is triggered only
// when the patch contains a password; other fields go through untouched.
func (s *userServiceImpl) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, *ServiceError) {
	updates := bson.M{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = FormatPhone(*req.Phone)
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Password != nil {
		hash, err := HashPassword(*req.Password)
		if err != nil {
			s.logger.Error("Failed to hash password", zap.Error(err))
			return nil, errInternal("Failed to update user")
		}
		updates["password"] = hash
	}
	if len(updates) == 0 {
		return nil, errBadRequest("No update fields provided")
	}

	matched, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		s.logger.Error("Failed to update user", zap.Error(err))
		return nil, errInternal("Failed to update user")
	}
	if matched == 0 {
		return nil, errNotFound("User not found")
	}
	return s.GetByID(ctx, id)
}

func (s *userServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) *ServiceError {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete user", zap.Error(err))
		return errInternal("Failed to delete user")
	}
	if deleted == 0 {
		return errNotFound("User not found")
	}
	s.logger.Info("User deleted", zap.String("id", id.Hex()))
	return nil
}

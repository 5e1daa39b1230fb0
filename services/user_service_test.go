package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/Chekwachibuike/ecommerce/models"
	"github.com/Chekwachibuike/ecommerce/services"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newUserService(repo *mockUserRepo) services.UserService {
	return services.NewUserService(repo, zap.NewNop())
}

func TestCreateUserHashesPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := newUserService(repo)

	user, svcErr := svc.Create(context.Background(), &models.CreateUserRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "plain-text-secret",
		Phone:    "+1 (555) 123-4567",
		Role:     models.RoleUser,
	})
	assert.Nil(t, svcErr)
	assert.NotEqual(t, "plain-text-secret", user.Password)
	assert.True(t, services.VerifyPassword(user.Password, "plain-text-secret"))
	assert.Equal(t, "+15551234567", user.Phone)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc := newUserService(repo)

	_, svcErr := svc.Create(context.Background(), &models.CreateUserRequest{
		Name: "Ada", Email: "ada@example.com", Password: "password1", Role: models.RoleUser,
	})
	assert.Nil(t, svcErr)

	_, svcErr = svc.Create(context.Background(), &models.CreateUserRequest{
		Name: "Other", Email: "ada@example.com", Password: "password2", Role: models.RoleUser,
	})
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusConflict, svcErr.StatusCode)
}

func TestVerifyPasswordRejectsGarbage(t *testing.T) {
	assert.False(t, services.VerifyPassword("not-a-bcrypt-hash", "anything"))
	hash, err := services.HashPassword("correct")
	assert.NoError(t, err)
	assert.False(t, services.VerifyPassword(hash, "wrong"))
}

func TestUpdateUserRehashesOnlyWhenPasswordPresent(t *testing.T) {
	repo := newMockUserRepo()
	svc := newUserService(repo)

	user, _ := svc.Create(context.Background(), &models.CreateUserRequest{
		Name: "Ada", Email: "ada@example.com", Password: "original1", Role: models.RoleUser,
	})
	storedHash := repo.users[user.ID].Password

	name := "Ada L."
	_, svcErr := svc.Update(context.Background(), user.ID, &models.UpdateUserRequest{Name: &name})
	assert.Nil(t, svcErr)
	assert.Equal(t, storedHash, repo.users[user.ID].Password)

	newPassword := "rotated-secret"
	_, svcErr = svc.Update(context.Background(), user.ID, &models.UpdateUserRequest{Password: &newPassword})
	assert.Nil(t, svcErr)
	assert.NotEqual(t, storedHash, repo.users[user.ID].Password)
	assert.True(t, services.VerifyPassword(repo.users[user.ID].Password, newPassword))
}

func TestUpdateUserNotFound(t *testing.T) {
	repo := newMockUserRepo()
	svc := newUserService(repo)

	name := "Nobody"
	_, svcErr := svc.Update(context.Background(), primitive.NewObjectID(), &models.UpdateUserRequest{Name: &name})
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

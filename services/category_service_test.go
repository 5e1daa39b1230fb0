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

func TestCreateCategoryDerivesSlug(t *testing.T) {
	repo := newMockCategoryRepo()
	svc := services.NewCategoryService(repo, zap.NewNop())

	category, svcErr := svc.Create(context.Background(), &models.CreateCategoryRequest{
		Name:        "Kitchen Appliances",
		Description: "Everything for the kitchen",
	})
	assert.Nil(t, svcErr)
	assert.Equal(t, "kitchen-appliances", category.Slug)
	assert.False(t, category.ID.IsZero())
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	repo := newMockCategoryRepo()
	svc := services.NewCategoryService(repo, zap.NewNop())

	_, svcErr := svc.Create(context.Background(), &models.CreateCategoryRequest{Name: "Cookware"})
	assert.Nil(t, svcErr)

	_, svcErr = svc.Create(context.Background(), &models.CreateCategoryRequest{Name: "Cookware"})
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusConflict, svcErr.StatusCode)
	assert.Len(t, repo.categories, 1)
}

// A different name that collapses to an existing slug is also a duplicate.
func TestCreateCategoryDuplicateSlug(t *testing.T) {
	repo := newMockCategoryRepo()
	svc := services.NewCategoryService(repo, zap.NewNop())

	_, svcErr := svc.Create(context.Background(), &models.CreateCategoryRequest{Name: "Home Decor"})
	assert.Nil(t, svcErr)

	_, svcErr = svc.Create(context.Background(), &models.CreateCategoryRequest{Name: "home decor"})
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusConflict, svcErr.StatusCode)
}

func TestUpdateCategoryReslugsOnRename(t *testing.T) {
	repo := newMockCategoryRepo()
	svc := services.NewCategoryService(repo, zap.NewNop())

	category, _ := svc.Create(context.Background(), &models.CreateCategoryRequest{Name: "Cookware"})

	name := "Bakeware Sets"
	updated, svcErr := svc.Update(context.Background(), category.ID, &models.UpdateCategoryRequest{Name: &name})
	assert.Nil(t, svcErr)
	assert.Equal(t, "bakeware-sets", updated.Slug)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	repo := newMockCategoryRepo()
	svc := services.NewCategoryService(repo, zap.NewNop())

	svcErr := svc.Delete(context.Background(), primitive.NewObjectID())
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

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

func seedCategory(t *testing.T, repo *mockCategoryRepo, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Slug: services.Slugify(name)}
	assert.NoError(t, repo.Create(context.Background(), category))
	return category
}

func TestCreateProductDerivesSlugAndSKU(t *testing.T) {
	productRepo := newMockProductRepo()
	categoryRepo := newMockCategoryRepo()
	svc := services.NewProductService(productRepo, categoryRepo, zap.NewNop())

	category := seedCategory(t, categoryRepo, "Cookware")

	product, svcErr := svc.Create(context.Background(), &models.CreateProductRequest{
		Title:       "Stainless Steel Pot",
		Price:       49.99,
		Category:    []string{category.ID.Hex()},
		Description: "A pot",
		Quantity:    5,
	})
	assert.Nil(t, svcErr)
	assert.Equal(t, "stainless-steel-pot", product.Slug)
	assert.GreaterOrEqual(t, product.SKU, 100000)
	assert.LessOrEqual(t, product.SKU, 999999)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	productRepo := newMockProductRepo()
	categoryRepo := newMockCategoryRepo()
	svc := services.NewProductService(productRepo, categoryRepo, zap.NewNop())

	category := seedCategory(t, categoryRepo, "Cookware")

	_, svcErr := svc.Create(context.Background(), &models.CreateProductRequest{
		Title:       "Stainless Steel Pot",
		Price:       49.99,
		Category:    []string{category.ID.Hex(), primitive.NewObjectID().Hex()},
		Description: "A pot",
	})
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Equal(t, 0, productRepo.len())
}

func TestCreateProductInvalidCategoryHex(t *testing.T) {
	productRepo := newMockProductRepo()
	categoryRepo := newMockCategoryRepo()
	svc := services.NewProductService(productRepo, categoryRepo, zap.NewNop())

	_, svcErr := svc.Create(context.Background(), &models.CreateProductRequest{
		Title:       "Pot",
		Price:       10,
		Category:    []string{"not-a-hex-id"},
		Description: "A pot",
	})
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
}

func TestUpdateProductTitleRederivesSlugAndSKU(t *testing.T) {
	productRepo := newMockProductRepo()
	categoryRepo := newMockCategoryRepo()
	svc := services.NewProductService(productRepo, categoryRepo, zap.NewNop())

	category := seedCategory(t, categoryRepo, "Cookware")
	product, _ := svc.Create(context.Background(), &models.CreateProductRequest{
		Title:       "Old Title",
		Price:       10,
		Category:    []string{category.ID.Hex()},
		Description: "d",
	})

	title := "Brand New Title"
	detail, svcErr := svc.Update(context.Background(), product.ID, &models.UpdateProductRequest{Title: &title})
	assert.Nil(t, svcErr)
	assert.Equal(t, "brand-new-title", detail.Slug)
	assert.GreaterOrEqual(t, detail.SKU, 100000)
}

func TestUpdateProductRevalidatesCategories(t *testing.T) {
	productRepo := newMockProductRepo()
	categoryRepo := newMockCategoryRepo()
	svc := services.NewProductService(productRepo, categoryRepo, zap.NewNop())

	category := seedCategory(t, categoryRepo, "Cookware")
	product, _ := svc.Create(context.Background(), &models.CreateProductRequest{
		Title:       "Pot",
		Price:       10,
		Category:    []string{category.ID.Hex()},
		Description: "d",
	})

	_, svcErr := svc.Update(context.Background(), product.ID, &models.UpdateProductRequest{
		Category: []string{primitive.NewObjectID().Hex()},
	})
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
}

func TestUpdateStockDerivesInStock(t *testing.T) {
	productRepo := newMockProductRepo()
	categoryRepo := newMockCategoryRepo()
	svc := services.NewProductService(productRepo, categoryRepo, zap.NewNop())

	category := seedCategory(t, categoryRepo, "Cookware")
	product, _ := svc.Create(context.Background(), &models.CreateProductRequest{
		Title:       "Pot",
		Price:       10,
		Category:    []string{category.ID.Hex()},
		Description: "d",
		Quantity:    3,
		InStock:     true,
	})

	detail, svcErr := svc.UpdateStock(context.Background(), product.ID, 0)
	assert.Nil(t, svcErr)
	assert.Equal(t, 0, detail.Quantity)
	assert.False(t, detail.InStock)

	detail, svcErr = svc.UpdateStock(context.Background(), product.ID, 7)
	assert.Nil(t, svcErr)
	assert.True(t, detail.InStock)
}

func TestGetProductByIDResolvesCategories(t *testing.T) {
	productRepo := newMockProductRepo()
	categoryRepo := newMockCategoryRepo()
	svc := services.NewProductService(productRepo, categoryRepo, zap.NewNop())

	category := seedCategory(t, categoryRepo, "Cookware")
	product, _ := svc.Create(context.Background(), &models.CreateProductRequest{
		Title:       "Pot",
		Price:       10,
		Category:    []string{category.ID.Hex()},
		Description: "d",
	})

	detail, svcErr := svc.GetByID(context.Background(), product.ID)
	assert.Nil(t, svcErr)
	assert.Len(t, detail.Categories, 1)
	assert.Equal(t, "Cookware", detail.Categories[0].Name)
}

func TestDeleteProductNotFound(t *testing.T) {
	productRepo := newMockProductRepo()
	categoryRepo := newMockCategoryRepo()
	svc := services.NewProductService(productRepo, categoryRepo, zap.NewNop())

	svcErr := svc.Delete(context.Background(), primitive.NewObjectID())
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

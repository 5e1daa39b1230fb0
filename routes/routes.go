package routes

import (
	"github.com/Chekwachibuike/ecommerce/controllers"
	"github.com/Chekwachibuike/ecommerce/middleware"
	"github.com/Chekwachibuike/ecommerce/models"
	"github.com/Chekwachibuike/ecommerce/services"
	"github.com/gin-gonic/gin"
)

// Controllers bundles every controller the router needs.
type Controllers struct {
	Auth     *controllers.AuthController
	User     *controllers.UserController
	Category *controllers.CategoryController
	Product  *controllers.ProductController
	CartItem *controllers.CartItemController
	Cart     *controllers.CartController
	Billing  *controllers.BillingController
	Order    *controllers.OrderController
	Upload   *controllers.UploadController
}

// Register wires every route under /api/v1. Catalog reads are public; writes
// require an authenticated admin or seller, and user-scoped resources require
// any authenticated principal.
func Register(r *gin.Engine, c Controllers, tokens *services.TokenService) {
	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/login", c.Auth.Login)
		auth.POST("/logout", c.Auth.Logout)
	}

	requireAuth := middleware.RequireAuth(tokens)
	requireStaff := middleware.RequireRole(models.RoleAdmin, models.RoleSeller)

	users := api.Group("/users")
	{
		users.POST("/", c.User.CreateUser)
		users.GET("/", requireAuth, requireStaff, c.User.ListUsers)
		users.GET("/lookup", requireAuth, requireStaff, c.User.GetUserByEmail)
		users.GET("/:id", requireAuth, c.User.GetUser)
		users.PATCH("/:id", requireAuth, c.User.UpdateUser)
		users.DELETE("/:id", requireAuth, c.User.DeleteUser)
	}

	categories := api.Group("/categories")
	{
		categories.GET("/", c.Category.ListCategories)
		categories.GET("/:id", c.Category.GetCategory)
		categories.POST("/", requireAuth, requireStaff, c.Category.CreateCategory)
		categories.PATCH("/:id", requireAuth, requireStaff, c.Category.UpdateCategory)
		categories.DELETE("/:id", requireAuth, requireStaff, c.Category.DeleteCategory)
	}

	products := api.Group("/products")
	{
		products.GET("/", c.Product.ListProducts)
		products.GET("/featured", c.Product.GetFeaturedProducts)
		products.GET("/in-stock", c.Product.GetInStockProducts)
		products.GET("/price-range", c.Product.GetProductsByPriceRange)
		products.GET("/search", c.Product.SearchProducts)
		products.GET("/slug/:slug", c.Product.GetProductBySlug)
		products.GET("/sku/:sku", c.Product.GetProductBySKU)
		products.GET("/category/:categoryId", c.Product.GetProductsByCategory)
		products.GET("/:id", c.Product.GetProduct)
		products.GET("/:id/related", c.Product.GetRelatedProducts)
		products.POST("/", requireAuth, requireStaff, c.Product.CreateProduct)
		products.PATCH("/:id", requireAuth, requireStaff, c.Product.UpdateProduct)
		products.PATCH("/:id/stock", requireAuth, requireStaff, c.Product.UpdateStock)
		products.DELETE("/:id", requireAuth, requireStaff, c.Product.DeleteProduct)
	}

	cartItems := api.Group("/cart-items", requireAuth)
	{
		cartItems.POST("/", c.CartItem.CreateCartItem)
		cartItems.GET("/", c.CartItem.ListCartItems)
		cartItems.GET("/product/:productId", c.CartItem.ListCartItemsByProduct)
		cartItems.GET("/:id", c.CartItem.GetCartItem)
		cartItems.PATCH("/:id", c.CartItem.UpdateCartItem)
		cartItems.DELETE("/:id", c.CartItem.DeleteCartItem)
	}

	carts := api.Group("/cart", requireAuth)
	{
		carts.POST("/:userId", c.Cart.CreateCart)
		carts.GET("/:userId", c.Cart.GetCart)
		carts.POST("/:userId/items", c.Cart.AddItemToCart)
		carts.GET("/:userId/items/:itemId", c.Cart.IsItemInCart)
		carts.DELETE("/:userId/items/:itemId", c.Cart.RemoveItemFromCart)
		carts.DELETE("/:userId", c.Cart.ClearCart)
	}

	billing := api.Group("/billing-info", requireAuth)
	{
		billing.POST("/", c.Billing.CreateBillingInfo)
		billing.GET("/", requireStaff, c.Billing.ListBillingInfo)
		billing.GET("/:userId", c.Billing.GetBillingInfo)
		billing.PATCH("/:userId", c.Billing.UpdateBillingInfo)
		billing.DELETE("/:userId", c.Billing.DeleteBillingInfo)
	}

	orders := api.Group("/orders", requireAuth)
	{
		orders.POST("/", c.Order.CreateOrder)
		orders.GET("/user/:userId", c.Order.GetOrdersByUser)
		orders.GET("/:id", c.Order.GetOrder)
		orders.PATCH("/:id", requireStaff, c.Order.UpdateOrder)
		orders.DELETE("/:id", requireStaff, c.Order.DeleteOrder)
	}

	uploads := api.Group("/upload", requireAuth, requireStaff)
	{
		uploads.POST("/image", c.Upload.UploadImage)
		uploads.POST("/presign", c.Upload.PresignUpload)
	}
}

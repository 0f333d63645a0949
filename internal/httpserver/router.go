package httpserver

import (
	"context"
	"log"

	"storefront-api/internal/domain"
	"storefront-api/internal/service/address"
	"storefront-api/internal/service/auth"
	"storefront-api/internal/service/catalog"
	"storefront-api/internal/service/checkout"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuthService is the slice of the auth service the handlers need.
type AuthService interface {
	Register(ctx context.Context, in auth.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Logout(ctx context.Context, token string) error
	LookupByToken(ctx context.Context, token string) (*domain.User, error)
}

type CatalogService interface {
	List(ctx context.Context, params catalog.ListParams) ([]domain.Product, error)
	Search(ctx context.Context, keyword string) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in catalog.Input) (*domain.Product, error)
	Update(ctx context.Context, id string, in catalog.Input) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type CartService interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID, productID string, delta int) (*domain.Cart, error)
	SetQuantity(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID, productID string) (*domain.Cart, error)
}

type CheckoutService interface {
	BuildDraft(ctx context.Context, userID, addressID string) (*checkout.Draft, error)
	InitiatePayment(ctx context.Context, draft *checkout.Draft) error
	CapturePayment(ctx context.Context, draft *checkout.Draft, paymentID, payerID string) (*domain.Order, error)
	Cancel(draft *checkout.Draft) error
}

type OrderService interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	Get(ctx context.Context, userID, id string) (*domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	GetAny(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error)
}

type AddressService interface {
	List(ctx context.Context, userID string) ([]domain.Address, error)
	Create(ctx context.Context, userID string, in address.Input) (*domain.Address, error)
	Update(ctx context.Context, userID, id string, in address.Input) (*domain.Address, error)
	Delete(ctx context.Context, userID, id string) error
}

type ReviewService interface {
	Add(ctx context.Context, userID, userName, productID, message string, rating int) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]domain.Review, error)
}

type FeatureService interface {
	Add(ctx context.Context, image string) (*domain.FeatureImage, error)
	List(ctx context.Context) ([]domain.FeatureImage, error)
	Delete(ctx context.Context, id string) error
}

// Deps bundles everything the router needs.
type Deps struct {
	Auth     AuthService
	Catalog  CatalogService
	Cart     CartService
	Checkout CheckoutService
	Orders   OrderService
	Address  AddressService
	Reviews  ReviewService
	Features FeatureService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, clientOrigin string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{clientOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Cache-Control", "Expires", "Pragma"},
		AllowCredentials: true,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	drafts := newDraftStore()

	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", registerHandler(deps.Auth))
		authGroup.POST("/login", loginHandler(deps.Auth))
		authGroup.POST("/logout", authMiddleware(deps.Auth), logoutHandler(deps.Auth))
		authGroup.GET("/check-auth", authMiddleware(deps.Auth), checkAuthHandler())
	}

	shop := router.Group("/api/shop")
	{
		shop.GET("/products/get", listProductsHandler(deps.Catalog))
		shop.GET("/products/get/:id", getProductHandler(deps.Catalog))
		shop.GET("/search/:keyword", searchProductsHandler(deps.Catalog))

		cart := shop.Group("/cart", authMiddleware(deps.Auth))
		{
			cart.GET("/get", getCartHandler(deps.Cart))
			cart.POST("/add", addCartItemHandler(deps.Cart))
			cart.PUT("/update-cart", updateCartItemHandler(deps.Cart))
			cart.DELETE("/:productId", removeCartItemHandler(deps.Cart))
		}

		addr := shop.Group("/address", authMiddleware(deps.Auth))
		{
			addr.GET("/get", listAddressesHandler(deps.Address))
			addr.POST("/add", addAddressHandler(deps.Address))
			addr.PUT("/update/:addressId", updateAddressHandler(deps.Address))
			addr.DELETE("/delete/:addressId", deleteAddressHandler(deps.Address))
		}

		order := shop.Group("/order", authMiddleware(deps.Auth))
		{
			order.POST("/create", createOrderHandler(deps.Checkout, drafts))
			order.POST("/capture", captureOrderHandler(deps.Checkout, drafts))
			order.POST("/cancel", cancelOrderHandler(deps.Checkout, drafts))
			order.GET("/list", listOrdersHandler(deps.Orders))
			order.GET("/details/:id", orderDetailsHandler(deps.Orders))
		}

		review := shop.Group("/review")
		{
			review.POST("/add", authMiddleware(deps.Auth), addReviewHandler(deps.Reviews))
			review.GET("/:productId", listReviewsHandler(deps.Reviews))
		}
	}

	admin := router.Group("/api/admin", authMiddleware(deps.Auth), adminMiddleware())
	{
		admin.GET("/products/get", adminListProductsHandler(deps.Catalog))
		admin.POST("/products/add", adminAddProductHandler(deps.Catalog))
		admin.PUT("/products/edit/:id", adminEditProductHandler(deps.Catalog))
		admin.DELETE("/products/delete/:id", adminDeleteProductHandler(deps.Catalog))

		admin.GET("/orders/get", adminListOrdersHandler(deps.Orders))
		admin.GET("/orders/details/:id", adminOrderDetailsHandler(deps.Orders))
		admin.PUT("/orders/update/:id", adminUpdateOrderHandler(deps.Orders))
	}

	feature := router.Group("/api/common/feature")
	{
		feature.GET("/get", listFeaturesHandler(deps.Features))
		feature.POST("/add", authMiddleware(deps.Auth), adminMiddleware(), addFeatureHandler(deps.Features))
		feature.DELETE("/delete/:id", authMiddleware(deps.Auth), adminMiddleware(), deleteFeatureHandler(deps.Features))
	}

	return router
}

package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/redis/go-redis/v9"

	accountrepo "github.com/light-bringer/storefront-service/internal/app/account/repo"
	catalogrepo "github.com/light-bringer/storefront-service/internal/app/catalog/repo"
	orderrepo "github.com/light-bringer/storefront-service/internal/app/order/repo"

	"github.com/light-bringer/storefront-service/internal/app/account/queries/get_user"
	"github.com/light-bringer/storefront-service/internal/app/account/queries/get_wishlist"
	"github.com/light-bringer/storefront-service/internal/app/account/queries/list_users"
	"github.com/light-bringer/storefront-service/internal/app/account/usecases/add_to_wishlist"
	"github.com/light-bringer/storefront-service/internal/app/account/usecases/authenticate_user"
	"github.com/light-bringer/storefront-service/internal/app/account/usecases/delete_user"
	"github.com/light-bringer/storefront-service/internal/app/account/usecases/register_user"
	"github.com/light-bringer/storefront-service/internal/app/account/usecases/remove_from_wishlist"
	"github.com/light-bringer/storefront-service/internal/app/account/usecases/update_user_role"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/admin_get_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/admin_list_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/similar_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/delete_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/toggle_product_featured"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/toggle_product_status"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/update_product"
	"github.com/light-bringer/storefront-service/internal/app/order/queries/get_order"
	"github.com/light-bringer/storefront-service/internal/app/order/queries/list_orders"
	"github.com/light-bringer/storefront-service/internal/auth"
	"github.com/light-bringer/storefront-service/internal/pkg/cache"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/pkg/images"
	transporthttp "github.com/light-bringer/storefront-service/internal/transport/http"
)

// Config carries the external endpoints and secrets the container
// needs. Empty RedisAddr disables view invalidation; empty
// ImageHostURL disables image host cleanup.
type Config struct {
	SpannerDB    string
	RedisAddr    string
	JWTSecret    string
	ImageHostURL string
	ImageHostKey string
}

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	RedisClient   *redis.Client
	Sessions      *auth.SessionManager

	ProductHandler *transporthttp.ProductHandler
	UserHandler    *transporthttp.UserHandler
	OrderHandler   *transporthttp.OrderHandler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, config Config) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, config.SpannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	var redisClient *redis.Client
	if config.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: config.RedisAddr})
	}
	invalidator := cache.NewInvalidator(redisClient, cache.DefaultPrefix)

	var imageStore images.Store = images.NoopStore{}
	if config.ImageHostURL != "" {
		imageStore = images.NewHTTPStore(config.ImageHostURL, config.ImageHostKey)
	}

	sessionConfig := auth.DefaultSessionConfig()
	if config.JWTSecret != "" {
		sessionConfig.SecretKey = config.JWTSecret
	}
	sessions := auth.NewSessionManager(sessionConfig, clk)
	hasher := auth.NewPasswordHasher()

	// 3. Create repositories
	productRepo := catalogrepo.NewProductRepo(spannerClient)
	catalogReadModel := catalogrepo.NewReadModel(spannerClient)
	userRepo := accountrepo.NewUserRepo(spannerClient)
	wishlistRepo := accountrepo.NewWishlistRepo(spannerClient)
	accountReadModel := accountrepo.NewReadModel(spannerClient)
	orderReadModel := orderrepo.NewReadModel(spannerClient)

	// 4. Create command use cases (write operations)
	createProductUseCase := create_product.NewInteractor(productRepo, comm, invalidator)
	updateProductUseCase := update_product.NewInteractor(productRepo, comm, invalidator, imageStore)
	toggleStatusUseCase := toggle_product_status.NewInteractor(productRepo, comm, invalidator)
	toggleFeaturedUseCase := toggle_product_featured.NewInteractor(productRepo, comm, invalidator)
	deleteProductUseCase := delete_product.NewInteractor(productRepo, comm, invalidator, imageStore)

	registerUserUseCase := register_user.NewInteractor(userRepo, hasher, comm)
	authenticateUserUseCase := authenticate_user.NewInteractor(userRepo, hasher, sessions)
	updateUserRoleUseCase := update_user_role.NewInteractor(userRepo, comm)
	deleteUserUseCase := delete_user.NewInteractor(userRepo, comm)
	addToWishlistUseCase := add_to_wishlist.NewInteractor(wishlistRepo, comm)
	removeFromWishlistUseCase := remove_from_wishlist.NewInteractor(wishlistRepo, comm)

	// 5. Create query use cases (read operations)
	listProductsQuery := list_products.NewQuery(catalogReadModel)
	getProductQuery := get_product.NewQuery(catalogReadModel)
	similarProductsQuery := similar_products.NewQuery(catalogReadModel)
	adminListProductsQuery := admin_list_products.NewQuery(catalogReadModel)
	adminGetProductQuery := admin_get_product.NewQuery(catalogReadModel)

	getUserQuery := get_user.NewQuery(accountReadModel)
	listUsersQuery := list_users.NewQuery(accountReadModel)
	getWishlistQuery := get_wishlist.NewQuery(accountReadModel)

	listOrdersQuery := list_orders.NewQuery(orderReadModel)
	getOrderQuery := get_order.NewQuery(orderReadModel)

	// 6. Create HTTP handlers
	productHandler := transporthttp.NewProductHandler(
		listProductsQuery,
		getProductQuery,
		similarProductsQuery,
		adminListProductsQuery,
		adminGetProductQuery,
		createProductUseCase,
		updateProductUseCase,
		toggleStatusUseCase,
		toggleFeaturedUseCase,
		deleteProductUseCase,
	)
	userHandler := transporthttp.NewUserHandler(
		registerUserUseCase,
		authenticateUserUseCase,
		getUserQuery,
		listUsersQuery,
		updateUserRoleUseCase,
		deleteUserUseCase,
		getWishlistQuery,
		addToWishlistUseCase,
		removeFromWishlistUseCase,
	)
	orderHandler := transporthttp.NewOrderHandler(
		listOrdersQuery,
		getOrderQuery,
	)

	return &ServiceOptions{
		SpannerClient:  spannerClient,
		RedisClient:    redisClient,
		Sessions:       sessions,
		ProductHandler: productHandler,
		UserHandler:    userHandler,
		OrderHandler:   orderHandler,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
	if s.RedisClient != nil {
		s.RedisClient.Close()
	}
}

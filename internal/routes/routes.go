package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/storefront/internal/database"
	"github.com/xyz-asif/storefront/internal/features/auth"
	"github.com/xyz-asif/storefront/internal/features/carts"
	"github.com/xyz-asif/storefront/internal/features/orders"
	"github.com/xyz-asif/storefront/internal/features/products"
	"github.com/xyz-asif/storefront/internal/features/search"
	"github.com/xyz-asif/storefront/internal/features/users"
	"github.com/xyz-asif/storefront/internal/middleware"
	"github.com/xyz-asif/storefront/internal/pkg/credential"
	"github.com/xyz-asif/storefront/internal/pkg/ratelimit"
	"github.com/xyz-asif/storefront/internal/pkg/token"
)

// Repositories holds the Mongo-backed stores.
type Repositories struct {
	Users    *users.Repository
	Carts    *carts.Repository
	Orders   *orders.Repository
	Products *products.Repository
	Search   *search.Repository
}

func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:    users.NewRepository(db),
		Carts:    carts.NewRepository(db),
		Orders:   orders.NewRepository(db),
		Products: products.NewRepository(db),
		Search:   search.NewRepository(db),
	}
}

// Indexers lists every repository that owns indexes.
func (r *Repositories) Indexers() []database.Indexer {
	return []database.Indexer{r.Users, r.Carts, r.Orders, r.Products}
}

// Deps is everything the API routes need.
type Deps struct {
	Users    users.Store
	Carts    carts.Store
	Orders   orders.Store
	Products products.Store
	Search   search.Searcher

	// Images is nil when image hosting is not configured.
	Images products.ImageStore

	Tokens  *token.Manager
	Codec   *credential.Codec
	Limiter *ratelimit.RateLimiter
	Guard   *middleware.Guard
}

// WithRepositories fills the store fields from repos.
func (d Deps) WithRepositories(repos *Repositories) Deps {
	d.Users = repos.Users
	d.Carts = repos.Carts
	d.Orders = repos.Orders
	d.Products = repos.Products
	d.Search = repos.Search
	return d
}

func SetupRoutes(router *gin.Engine, deps Deps) {
	api := router.Group("/api")

	guard := deps.Guard
	if guard == nil {
		guard = middleware.NewGuard(deps.Tokens)
	}

	auth.RegisterRoutes(api, auth.NewHandler(deps.Users, deps.Codec, deps.Tokens), deps.Limiter)
	users.RegisterRoutes(api, users.NewHandler(deps.Users, deps.Codec), guard)
	carts.RegisterRoutes(api, carts.NewHandler(deps.Carts), guard)
	orders.RegisterRoutes(api, orders.NewHandler(deps.Orders), guard)
	products.RegisterRoutes(api, products.NewHandler(deps.Products, deps.Images), guard)
	search.RegisterRoutes(api, search.NewHandler(deps.Search), guard)
}

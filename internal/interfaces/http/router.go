// Package http assembles the gin engine: middleware chain, public
// endpoints, and the gated API group.
package http

import (
	"github.com/gin-gonic/gin"

	"libris/internal/interfaces/http/handlers"
	"libris/internal/interfaces/http/middleware"
	"libris/internal/infrastructure/config"
	"libris/internal/shared/constants"
	"libris/internal/shared/logger"
)

// Router owns the engine and the handler set it routes to.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface

	gate    *middleware.AuthMiddleware
	health  *handlers.HealthHandler
	auth    *handlers.AuthHandler
	users   *handlers.UserHandler
	authors *handlers.AuthorHandler
	books   *handlers.BookHandler
	loans   *handlers.LoanHandler
}

// Deps carries everything the router mounts.
type Deps struct {
	Config *config.Config
	Logger logger.Interface

	Gate    *middleware.AuthMiddleware
	Health  *handlers.HealthHandler
	Auth    *handlers.AuthHandler
	Users   *handlers.UserHandler
	Authors *handlers.AuthorHandler
	Books   *handlers.BookHandler
	Loans   *handlers.LoanHandler
}

func NewRouter(deps Deps) *Router {
	return &Router{
		engine:  gin.New(),
		cfg:     deps.Config,
		logger:  deps.Logger,
		gate:    deps.Gate,
		health:  deps.Health,
		auth:    deps.Auth,
		users:   deps.Users,
		authors: deps.Authors,
		books:   deps.Books,
		loans:   deps.Loans,
	}
}

// SetupRoutes mounts the middleware chain and every endpoint. The login
// and signup endpoints stay outside the authorization gate; everything
// else under the API prefix sits behind it.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/", r.health.Root)
	r.engine.GET("/health", r.health.Health)

	r.engine.POST("/login", r.auth.Login)
	r.engine.POST(constants.APIPrefix+"/signup", r.auth.Signup)

	api := r.engine.Group(constants.APIPrefix)
	api.Use(r.gate.RequireAuth())
	{
		api.GET("/authors", r.authors.List)
		api.POST("/authors", r.authors.Create)
		api.GET("/authors/:id", r.authors.Get)
		api.PUT("/authors/:id", r.authors.Update)
		api.DELETE("/authors/:id", r.authors.Delete)

		api.GET("/books", r.books.List)
		api.POST("/books", r.books.Create)
		api.GET("/books/:id", r.books.Get)
		api.PUT("/books/:id", r.books.Update)
		api.DELETE("/books/:id", r.books.Delete)

		api.GET("/books-loan", r.loans.List)
		api.POST("/books-loan", r.loans.Create)
		api.GET("/books-loan/:id", r.loans.Get)
		api.PUT("/books-loan/:id", r.loans.Update)
		api.DELETE("/books-loan/:id", r.loans.Delete)
		api.GET("/export", r.loans.Export)

		api.GET("/users", r.users.List)
		api.GET("/users/:id", r.users.Get)
		api.PUT("/users/:id", r.users.Update)
	}
}

// GetEngine exposes the assembled engine for the HTTP server.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

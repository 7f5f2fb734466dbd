package routes

import (
	"library-management/internal/adapters/http/handlers"
	"library-management/internal/adapters/http/middleware"
	"library-management/internal/adapters/persistence/repositories"
	"library-management/internal/config"
	"library-management/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// Handlers groups every HTTP handler plus the token validator guarding protected routes
type Handlers struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	User      *handlers.UserHandler
	Book      *handlers.BookHandler
	Borrowing *handlers.BorrowingHandler
	Tokens    middleware.TokenValidator
}

// NewApp creates the Fiber app with the JSON codec, error handler and global middlewares
func NewApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Library Management API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
		JSONEncoder:  jsonCodec.Marshal,
		JSONDecoder:  jsonCodec.Unmarshal,
	})

	middleware.Setup(app, cfg)
	return app
}

// Setup wires repositories, services and handlers on db and registers all routes.
// The borrowing service is returned for the background jobs.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) *services.BorrowingService {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	bookRepo := repositories.NewBookRepository(db)
	borrowingRepo := repositories.NewBorrowingRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWT)
	userService := services.NewUserService(userRepo, roleRepo)
	bookService := services.NewBookService(bookRepo)
	borrowingService := services.NewBorrowingService(borrowingRepo, bookRepo, userRepo, cfg.Library)

	Register(app, cfg, &Handlers{
		Health:    handlers.NewHealthHandler(cfg.AppMode, config.HealthCheck),
		Auth:      handlers.NewAuthHandler(authService, userService),
		User:      handlers.NewUserHandler(userService),
		Book:      handlers.NewBookHandler(bookService),
		Borrowing: handlers.NewBorrowingHandler(borrowingService),
		Tokens:    authService,
	})

	return borrowingService
}

// Register mounts every route on app
func Register(app *fiber.App, cfg *config.Config, h *Handlers) {
	// Health check & root routes
	app.Get("/", h.Health.Root)
	app.Get("/health", h.Health.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	setupAccountRoutes(app, h, cfg)
	setupBookRoutes(app.Group("/api/Book"), h)
	setupBorrowingRoutes(app.Group("/api/Borrowing"), h)
}

// setupAccountRoutes configures account and user routes
func setupAccountRoutes(app *fiber.App, h *Handlers, cfg *config.Config) {
	authLimiter := middleware.AuthRateLimiter(cfg.RateLimit.Auth)
	noCache := middleware.NoCacheHeaders()

	app.Post("/login", authLimiter, noCache, h.Auth.Login)
	app.Post("/Register", authLimiter, noCache, h.Auth.Register)
	app.Get("/me", middleware.AuthMiddleware(h.Tokens), noCache, h.Auth.Me)

	app.Get("/GetUsers", noCache, h.User.GetUsers)
	app.Get("/Getuser", noCache, h.User.GetUser)
	app.Put("/UpdateUser", h.User.UpdateUser)
	app.Delete("/DeleteUser", h.User.DeleteUser)
}

// setupBookRoutes configures catalog routes. Mutations are admin only and
// reads are never cached so stock changes show up at once.
func setupBookRoutes(router fiber.Router, h *Handlers) {
	admin := []fiber.Handler{middleware.AuthMiddleware(h.Tokens), middleware.AdminOnly()}
	noCache := middleware.NoCacheHeaders()

	router.Get("/GetBooks", noCache, h.Book.GetBooks)
	router.Get("/GetBookById", noCache, h.Book.GetBookByID)
	router.Post("/AddBooks", append(admin, h.Book.AddBook)...)
	router.Put("/UpdateBook", append(admin, h.Book.UpdateBook)...)
	router.Delete("/DeleteBook", append(admin, h.Book.DeleteBook)...)
}

// setupBorrowingRoutes configures lending routes
func setupBorrowingRoutes(router fiber.Router, h *Handlers) {
	router.Post("/BorrowBook", h.Borrowing.BorrowBook)
	router.Put("/ReturnBook", h.Borrowing.ReturnBook)
	router.Get("/GetBorrowings",
		middleware.AuthMiddleware(h.Tokens),
		middleware.AdminOnly(),
		middleware.NoCacheHeaders(),
		h.Borrowing.GetBorrowings,
	)
}

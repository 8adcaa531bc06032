// Package mockapi is an in-memory development backend that answers the same
// endpoints, with the same envelopes, as the remote admin services. It backs
// the client integration tests and `shopadmin serve-mock`.
package mockapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// Options configures the development backend.
type Options struct {
	// JWTSecret enables bearer token checks when non-empty.
	JWTSecret string
	Logger    *zap.Logger
}

type server struct {
	db       *Store
	log      *zap.Logger
	validate *validator.Validate
}

// New builds the fiber application serving db.
func New(db *Store, opts Options) *fiber.App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	s := &server{db: db, log: log.Named("mockapi"), validate: validator.New()}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(cors.New())
	if opts.JWTSecret != "" {
		app.Use(JWTMiddleware([]byte(opts.JWTSecret)), AdminRequired)
	}

	setupRoutes(app, s)
	return app
}

// setupRoutes defines all the routes for the development backend.
func setupRoutes(app *fiber.App, s *server) {
	// --- Admin users ---
	app.Post("/get_admin_user", s.HandleListAdminUsers)
	app.Post("/admin_user_registration", s.HandleRegisterAdminUser)
	app.Put("/admin_user_update", s.HandleUpdateAdminUser)
	app.Delete("/delete_user/:id", s.HandleDeleteAdminUser)
	app.Post("/update_admin_user_status", s.HandleUpdateAdminUserStatus)
	app.Get("/get_user_roles/:id", s.HandleGetUserRoles)
	app.Post("/add_admin_role_assign", s.HandleAssignRole)

	// --- Roles ---
	app.Get("/get_admin_role", s.HandleListRoles)
	app.Post("/add_admin_role", s.HandleAddRole)
	app.Put("/update_admin_role", s.HandleUpdateRole)
	app.Delete("/delete_admin_role/:id", s.HandleDeleteRole)
	app.Get("/check_role_id_exists", s.HandleRoleIDExists)
	app.Get("/check_role_name_exists", s.HandleRoleNameExists)

	// --- Catalog ---
	api := app.Group("/api")
	api.Get("/getCategories", s.HandleListCategories)
	api.Post("/addCategory", s.HandleAddCategory)
	api.Delete("/deleteCategory/:id", s.HandleDeleteCategory)
	api.Get("/subCategory", s.HandleListSubCategories)
	api.Post("/subCategory", s.HandleAddSubCategory)
	api.Delete("/delete_subCategory/:id", s.HandleDeleteSubCategory)

	app.Get("/products", s.HandleListProducts)
	app.Get("/products/:id", s.HandleGetProduct)

	// --- Retailers ---
	retailers := app.Group("/retailers")
	retailers.Get("/", s.HandleListRetailers)
	retailers.Post("/", s.HandleCreateRetailer)
	retailers.Get("/:id", s.HandleGetRetailer)
	retailers.Put("/:id/status", s.HandleSetRetailerStatus)
	retailers.Get("/:id/orders", s.HandleRetailerOrders)
	retailers.Get("/:id/products", s.HandleRetailerProducts)

	app.Get("/orders/:id/tracking", s.HandleGetTracking)
	app.Post("/orders/:id/tracking", s.HandleAddTracking)

	// --- Customers ---
	users := app.Group("/users")
	users.Get("/", s.HandleListCustomers)
	users.Get("/:id", s.HandleGetCustomer)
	users.Get("/:id/orders", s.HandleCustomerOrders)
	users.Put("/:id/status", s.HandleSetCustomerStatus)
}

package routes

import (
	"net/http"

	"bhromon/admin"
	"bhromon/bookings"
	"bhromon/catalog"
	"bhromon/middleware"
	"bhromon/ratelim"
	"bhromon/users"

	"github.com/julienschmidt/httprouter"
)

// Services bundles everything the route tables need.
type Services struct {
	Auth     *middleware.Auth
	Users    *users.Service
	Catalog  *catalog.Service
	Bookings *bookings.Service
	Admin    *admin.Service
	Limiter  *ratelim.RateLimiter
}

func RoutesWrapper(router *httprouter.Router, s *Services) {
	AddUserRoutes(router, s)
	AddCatalogRoutes(router, s)
	AddBookingRoutes(router, s)
	AddAdminRoutes(router, s)
}

func AddUserRoutes(router *httprouter.Router, s *Services) {
	router.POST("/users", s.Limiter.Limit(s.Users.Create))
	router.GET("/users/:email", s.Auth.Authenticate(s.Users.Get))
	router.GET("/users", s.Auth.Authenticate(s.Users.List))
	router.PUT("/users/:email/role", s.Auth.Authenticate(s.Auth.RequireAdmin(s.Users.UpdateRole)))
}

func AddCatalogRoutes(router *httprouter.Router, s *Services) {
	router.POST("/packages", s.Limiter.Limit(s.Auth.Authenticate(s.Catalog.CreatePackage)))
	router.GET("/packages", s.Catalog.ListPackages)
	router.GET("/packages/:id", s.Catalog.GetPackage)
	router.PUT("/packages/:id", s.Auth.Authenticate(s.Catalog.UpdatePackage))
	router.DELETE("/packages/:id", s.Auth.Authenticate(s.Catalog.DeletePackage))

	router.POST("/resorts", s.Limiter.Limit(s.Auth.Authenticate(s.Catalog.CreateResort)))
	router.GET("/resorts", s.Catalog.ListResorts)
	router.GET("/resorts/:id", s.Catalog.GetResort)
	router.PUT("/resorts/:id", s.Auth.Authenticate(s.Catalog.UpdateResort))
	router.DELETE("/resorts/:id", s.Auth.Authenticate(s.Catalog.DeleteResort))
}

func AddBookingRoutes(router *httprouter.Router, s *Services) {
	router.POST("/create-payment-intent", s.Limiter.Limit(s.Auth.Authenticate(s.Bookings.CreateIntent)))
	router.POST("/bookings/confirm", s.Limiter.Limit(s.Auth.Authenticate(s.Bookings.Confirm)))

	router.GET("/bookings", s.Auth.Authenticate(s.Auth.RequireAdmin(s.Bookings.List)))

	// httprouter cannot register /bookings/user next to /bookings/:id, so
	// the wildcard carries both and dispatch happens on the segment value.
	getByID := s.Auth.RequireAdmin(s.Bookings.Get)
	router.GET("/bookings/:id", s.Auth.Authenticate(func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if ps.ByName("id") == "user" {
			s.Bookings.UserBookings(w, r, ps)
			return
		}
		getByID(w, r, ps)
	}))
	router.GET("/bookings/:id/receipt", s.Auth.Authenticate(s.Bookings.Receipt))
	router.DELETE("/bookings/:id", s.Auth.Authenticate(s.Bookings.Delete))
}

func AddAdminRoutes(router *httprouter.Router, s *Services) {
	router.GET("/admin/overview", s.Auth.Authenticate(s.Auth.RequireAdmin(s.Admin.Overview)))
}

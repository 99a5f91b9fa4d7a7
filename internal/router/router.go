package router

import (
	"net/http"

	"github.com/stpnv0/CinemaDistrict/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	Logout(c *ginext.Context)
	Me(c *ginext.Context)
	UpdateProfile(c *ginext.Context)
	ChangePassword(c *ginext.Context)
	Verify(c *ginext.Context)

	Health(c *ginext.Context)
	ListMovies(c *ginext.Context)
	ListTheaters(c *ginext.Context)
	ListShowtimes(c *ginext.Context)
	SeatMap(c *ginext.Context)
	ListPromos(c *ginext.Context)

	Quote(c *ginext.Context)
	Checkout(c *ginext.Context)
	Ticket(c *ginext.Context)

	RateMovie(c *ginext.Context)
	MovieRatings(c *ginext.Context)
	MyRating(c *ginext.Context)

	RecentSearches(c *ginext.Context)
	AddSearch(c *ginext.Context)
	ClearSearches(c *ginext.Context)
}

// InitRouter mounts the API. auth guards every route that needs a caller
// identity.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.GET("/health", h.Health)

		// Auth
		authGroup := api.Group("/auth")
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", auth, h.Logout)
		authGroup.GET("/me", auth, h.Me)
		authGroup.PUT("/profile", auth, h.UpdateProfile)
		authGroup.PUT("/change-password", auth, h.ChangePassword)
		authGroup.GET("/verify", auth, h.Verify)

		// Catalog
		api.GET("/movies", h.ListMovies)
		api.GET("/theaters", h.ListTheaters)
		api.GET("/showtimes", h.ListShowtimes)
		api.GET("/seatmap", h.SeatMap)
		api.GET("/promos", h.ListPromos)

		// Bookings
		api.POST("/bookings/quote", h.Quote)
		api.POST("/bookings/checkout", auth, h.Checkout)
		api.POST("/bookings/ticket", auth, h.Ticket)

		// Ratings
		api.GET("/movies/:id/ratings", h.MovieRatings)
		api.POST("/movies/:id/ratings", auth, h.RateMovie)
		api.GET("/movies/:id/ratings/me", auth, h.MyRating)

		// Recent searches
		api.GET("/searches/recent", auth, h.RecentSearches)
		api.POST("/searches/recent", auth, h.AddSearch)
		api.DELETE("/searches/recent", auth, h.ClearSearches)
	}

	router.NoRoute(func(c *ginext.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Route not found"})
	})

	return router
}

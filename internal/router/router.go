package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tavolo/internal/auth"
	"tavolo/internal/basket"
	"tavolo/internal/item"
	"tavolo/internal/middleware"
	"tavolo/internal/order"
	"tavolo/internal/realtime"
	"tavolo/internal/storage"
)

// Deps carries every handler the router mounts. Optional surfaces (orders,
// uploads) may be nil and their routes are skipped.
type Deps struct {
	Items     *item.Handler
	AdminMenu *item.AdminHandler
	Basket    *basket.Handler
	Channel   *realtime.Handler
	Auth      *auth.Handler
	Orders    *order.Handler
	Uploads   *storage.Handler
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if deps.Auth != nil {
		authGroup := r.Group("/auth")
		{
			authGroup.POST("/register", deps.Auth.Register)
			authGroup.POST("/login", deps.Auth.Login)
		}
	}

	api := r.Group("/api")

	if deps.Items != nil {
		api.GET("/items", deps.Items.List)
		api.POST("/items", deps.Items.Create)
		api.PATCH("/items", deps.Items.Update)
		api.DELETE("/items", deps.Items.Delete)
	}

	if deps.Basket != nil {
		basketGroup := api.Group("/basket")
		{
			basketGroup.GET("", deps.Basket.List)
			basketGroup.GET("/summary", deps.Basket.Summary)
			basketGroup.POST("", deps.Basket.Add)
			basketGroup.POST("/:id/increase", deps.Basket.Increase)
			basketGroup.POST("/:id/decrease", deps.Basket.Decrease)
			basketGroup.PUT("/:id/ingredients", deps.Basket.EditIngredients)
			basketGroup.POST("/:id/review", deps.Basket.AddReview)
			basketGroup.DELETE("/:id", deps.Basket.Remove)
		}
	}

	if deps.Channel != nil {
		api.GET("/channel", deps.Channel.Status)
		r.GET("/ws", deps.Channel.Serve)
	}

	if deps.AdminMenu != nil {
		admin := api.Group("/admin", middleware.AuthMiddleware(), middleware.RequireRole(auth.RoleAdmin))
		{
			admin.POST("/menu", deps.AdminMenu.Create)
			admin.PATCH("/menu/:id", deps.AdminMenu.Update)
			admin.DELETE("/menu/:id", deps.AdminMenu.Delete)
		}
	}

	if deps.Orders != nil {
		orders := api.Group("/orders", middleware.AuthMiddleware())
		{
			orders.POST("/checkout", deps.Orders.Checkout)
			orders.GET("/history", deps.Orders.History)
			orders.POST("/repeat/:id", deps.Orders.Repeat)
		}
	}

	if deps.Uploads != nil {
		api.POST("/upload", middleware.AuthMiddleware(), deps.Uploads.Upload)
		api.GET("/upload", deps.Uploads.Download)
	}

	return r
}

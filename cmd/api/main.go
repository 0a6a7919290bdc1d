package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tavolo/internal/auth"
	"tavolo/internal/basket"
	"tavolo/internal/db"
	"tavolo/internal/item"
	"tavolo/internal/order"
	"tavolo/internal/realtime"
	"tavolo/internal/router"
	"tavolo/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ Missing env var: JWT_SECRET")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	// ───────────────────────── CORE STATE ─────────────────────────
	store := item.NewStore()
	basketService := basket.NewService(store)

	hub := realtime.NewHub(0)
	defer hub.Close()

	wsURL := os.Getenv("WS_URL")
	if wsURL == "" {
		wsURL = fmt.Sprintf("ws://localhost:%s/ws", port)
	}

	// ───────────────────────── PERSISTENCE ─────────────────────────
	// Users and order history persist to Postgres when DATABASE_URL is set;
	// everything else is in-memory on purpose.
	var userRepo auth.UserRepository = auth.NewInMemoryUserRepository()
	var orderRepo order.OrderRepository = order.NewInMemoryOrderRepository()

	if url := os.Getenv("DATABASE_URL"); url != "" {
		pool, err := db.ConnectPostgres(context.Background(), url)
		if err != nil {
			log.Fatal("❌ Postgres init failed: ", err)
		}
		defer pool.Close()

		userRepo = auth.NewPostgresUserRepository(pool)
		orderRepo = order.NewPostgresOrderRepository(pool)
	}

	// ───────────────────────── STORAGE ─────────────────────────
	var uploads storage.Storage
	if os.Getenv("R2_ENDPOINT") != "" {
		r2, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed: ", err)
		}
		uploads = r2
	} else {
		local, err := storage.NewLocalStorage("uploads", fmt.Sprintf("http://localhost:%s/api/upload", port))
		if err != nil {
			log.Fatal("❌ Local storage init failed: ", err)
		}
		uploads = local
	}

	// ───────────────────────── SERVICES / HANDLERS ─────────────────────────
	authService := auth.NewService(userRepo)
	orderService := order.NewService(basketService, orderRepo)

	deps := router.Deps{
		Items:     item.NewHandler(store),
		AdminMenu: item.NewAdminHandler(store),
		Basket:    basket.NewHandler(basketService),
		Channel:   realtime.NewHandler(hub, wsURL),
		Auth:      auth.NewHandler(authService),
		Orders:    order.NewHandler(orderService),
		Uploads:   storage.NewHandler(uploads),
	}

	// ───────────────────────── SERVER ─────────────────────────
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router.New(deps),
	}

	go func() {
		log.Printf("🚀 Listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("❌ Server failed: ", err)
		}
	}()

	// ───────────────────────── CHANNEL FEED ─────────────────────────
	// Optional loopback consumer: mirrors generated channel items into the
	// basket, so generation is visible without a browser attached. The retry
	// budget absorbs the race with server startup.
	if os.Getenv("CHANNEL_FEED") == "1" {
		feed := realtime.NewClient(
			fmt.Sprintf("http://localhost:%s/api/channel", port),
			func(msg realtime.Message) {
				if msg.Type != realtime.TypeNewItem || msg.Item == nil {
					return
				}
				it := *msg.Item
				if _, err := basketService.AddToBasket(item.Patch{
					Name:        &it.Name,
					Category:    &it.Category,
					Price:       &it.Price,
					Quantity:    &it.Quantity,
					Ingredients: &it.Ingredients,
					Image:       &it.Image,
					Rating:      &it.Rating,
					Reviews:     &it.Reviews,
				}); err != nil {
					log.Printf("channel feed: %v", err)
				}
			},
		)
		defer feed.Close()
		go feed.Start()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("Shutting down…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("❌ Shutdown failed: ", err)
	}
}

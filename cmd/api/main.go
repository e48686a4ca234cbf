package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/hcanning/uni-eats-filter/internal/auth"
	"github.com/hcanning/uni-eats-filter/internal/db"
	"github.com/hcanning/uni-eats-filter/internal/meals"
	"github.com/hcanning/uni-eats-filter/internal/middleware"
	"github.com/hcanning/uni-eats-filter/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	required := []string{
		"JWT_SECRET",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}
	localMode := os.Getenv("MEALS_BACKEND") == "local"
	if !localMode {
		required = append(required, "DATABASE_URL")
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			logger.Fatalf("missing env var: %s", k)
		}
	}

	ctx := context.Background()

	// ───────────────────────── STORES ─────────────────────────
	var (
		mealRepo meals.Repository
		userRepo auth.UserRepository
	)
	if localMode {
		path := os.Getenv("SNAPSHOT_PATH")
		if path == "" {
			path = "data/meals-snapshot.json"
		}
		mealRepo = meals.NewLocalRepository(path, logger)
		userRepo = auth.NewInMemoryUserRepository()
		logger.Infow("running against local snapshot store", "path", path)
	} else {
		pool := db.ConnectPostgres(logger)
		defer pool.Close()
		mealRepo = meals.NewPostgresRepository(pool)
		userRepo = auth.NewPostgresUserRepository(pool)
	}

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(ctx)
	if err != nil {
		logger.Fatal("R2 init failed: ", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	if email := os.Getenv("ADMIN_EMAIL"); email != "" {
		name := os.Getenv("ADMIN_NAME")
		if name == "" {
			name = "Cafeteria Staff"
		}
		if err := authService.EnsureAdmin(ctx, name, email, os.Getenv("ADMIN_PASSWORD")); err != nil {
			logger.Fatal("admin bootstrap failed: ", err)
		}
	}

	// ───────────────────────── MEALS ─────────────────────────
	mealService, err := meals.NewService(ctx, mealRepo, logger)
	if err != nil {
		logger.Fatal("meal collection load failed: ", err)
	}
	mealHandler := meals.NewHandler(mealService, r2Client)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Every unknown path still renders something.
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"title":       "Page not found",
			"description": "The requested path does not exist.",
		})
	})

	// ───────────────────────── AUTH ROUTES ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── PUBLIC MENU ─────────────────────────
	r.GET("/meals", mealHandler.List)

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(userRepo, auth.RoleAdmin),
	)
	{
		admin.GET("/meals", mealHandler.AdminList)
		admin.GET("/meals/stats", mealHandler.AdminStats)
		admin.POST("/meals", mealHandler.CreateMeal)
		admin.PUT("/meals/:id", mealHandler.UpdateMeal)
		admin.DELETE("/meals/:id", mealHandler.DeleteMeal)
		admin.PATCH("/meals/:id/availability", mealHandler.ToggleAvailability)
		admin.POST("/images", mealHandler.UploadImage)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	addr := os.Getenv("PORT")
	if addr == "" {
		addr = "8080"
	}
	logger.Infow("listening", "port", addr)
	if err := r.Run(":" + addr); err != nil {
		logger.Fatal(err)
	}
}

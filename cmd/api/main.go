package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	limit "github.com/yangxikun/gin-limit-by-key"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"MemberDirectory_UnityProject/internal/config"
	"MemberDirectory_UnityProject/internal/handler"
	"MemberDirectory_UnityProject/internal/kaonavi"
	"MemberDirectory_UnityProject/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("main(): no .env file found, using process environment")
	}
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("main(): failed to build logger: ", err)
	}
	defer logger.Sync()

	storage.InitDB(cfg.DBPath)

	client := kaonavi.NewClient(cfg.Kaonavi, logger.Named("kaonavi"))
	directory := kaonavi.NewService(kaonavi.ServiceConfig{
		Schema:         cfg.Schema,
		DefaultPerPage: cfg.DefaultPerPage,
		DefaultPage:    cfg.DefaultPage,
	}, client, storage.Users{}, logger.Named("directory"))
	h := handler.New(directory)

	router := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))
	router.Use(limit.NewRateLimiter(func(c *gin.Context) string {
		return c.ClientIP()
	}, func(c *gin.Context) (*rate.Limiter, time.Duration) {
		// every upstream round trip re-authenticates, so keep the
		// per-client request rate modest
		return rate.NewLimiter(rate.Every(100*time.Millisecond), 20), time.Hour
	}, func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
	}))

	api := router.Group("/api")
	{
		api.POST("/users/create", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUserDetail)
		api.PATCH("/users/:id", h.UpdateSelfIntroduction)
		api.GET("/users/:id/account", h.GetAccount)
		api.PATCH("/users/:id/account", h.UpdateAccount)
		api.POST("/profiles/:user_id", h.CreateProfile)
		api.GET("/profiles/:user_id", h.GetProfile)
		api.PATCH("/profiles/:user_id", h.UpdateProfile)
		api.DELETE("/profiles/:user_id", h.DeleteProfile)
	}
	kaonaviAPI := router.Group("/kaonavi-api")
	{
		kaonaviAPI.GET("/members", h.ListMembers)
		kaonaviAPI.GET("/members/:code", h.GetMember)
	}

	log.Fatal(router.Run(cfg.ServerAddr))
}

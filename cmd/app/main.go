package main

import (
	"html/template"
	"os"

	dbadapter "github.com/8ubble8uddy/yatube-project/internal/adapters/database"
	"github.com/8ubble8uddy/yatube-project/internal/adapters/httpapi"
	redisadapter "github.com/8ubble8uddy/yatube-project/internal/adapters/redis"
	"github.com/8ubble8uddy/yatube-project/internal/adapters/web"
	"github.com/8ubble8uddy/yatube-project/internal/config"
	"github.com/8ubble8uddy/yatube-project/internal/core/comment"
	commentapp "github.com/8ubble8uddy/yatube-project/internal/core/comment/service"
	"github.com/8ubble8uddy/yatube-project/internal/core/follow"
	followapp "github.com/8ubble8uddy/yatube-project/internal/core/follow/service"
	"github.com/8ubble8uddy/yatube-project/internal/core/group"
	groupapp "github.com/8ubble8uddy/yatube-project/internal/core/group/service"
	"github.com/8ubble8uddy/yatube-project/internal/core/post"
	postapp "github.com/8ubble8uddy/yatube-project/internal/core/post/service"
	"github.com/8ubble8uddy/yatube-project/internal/core/user"
	userapp "github.com/8ubble8uddy/yatube-project/internal/core/user/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init()

	config.InitDB()

	if err := config.DB.AutoMigrate(
		&user.User{},
		&group.Group{},
		&post.Post{},
		&comment.Comment{},
		&follow.Follow{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}

	config.Logger.Info("Database migrations completed")

	config.InitRedis()

	defer closeResources(config.Logger)

	if err := os.MkdirAll(config.MediaDir(), 0o755); err != nil {
		config.Logger.Fatal("Error creating media directory:", zap.Error(err))
	}

	templates, err := template.ParseGlob("templates/*.html")
	if err != nil {
		config.Logger.Fatal("Error parsing templates:", zap.Error(err))
	}

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))

	userRepo := dbadapter.NewUserRepositoryDatabase()
	groupRepo := dbadapter.NewGroupRepositoryDatabase()
	postRepo := dbadapter.NewPostRepositoryDatabase()
	commentRepo := dbadapter.NewCommentRepositoryDatabase()
	followRepo := dbadapter.NewFollowRepositoryDatabase()
	feedCache := redisadapter.NewFeedCacheRedis(config.RedisClient)

	userSvc := userapp.NewUserService(userRepo, jwtSecret)
	groupSvc := groupapp.NewGroupService(groupRepo)
	postSvc := postapp.NewPostService(postRepo, groupRepo, userRepo)
	commentSvc := commentapp.NewCommentService(commentRepo, postRepo)
	followSvc := followapp.NewFollowService(followRepo, userRepo)

	r := gin.New()
	r.Use(gin.Logger())

	handlers := web.NewHandlers(
		postSvc, commentSvc, followSvc, userSvc, groupSvc,
		feedCache, templates, jwtSecret, config.CacheTTL(), config.MediaDir(),
	)
	handlers.RegisterRoutes(r)
	httpapi.RegisterRoutes(r, jwtSecret, userSvc, postSvc, groupSvc, commentSvc, followSvc)

	config.Logger.Info("App is running...")

	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// closeResources closes the Redis and database connections.
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}

package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"

	"prompt-hub/cmd/api/auth"
	"prompt-hub/cmd/api/handlers"
	"prompt-hub/cmd/api/middleware"
	"prompt-hub/db"
	"prompt-hub/eventbus"
	"prompt-hub/ratelimit"
	"prompt-hub/repositories"
	"prompt-hub/services"
	_ "prompt-hub/docs"
)

// Deps carries the process-level dependencies the router cannot build
// itself.
type Deps struct {
	JWTManager *auth.JWTManager
	Bus        eventbus.Publisher
	Limiter    ratelimit.Limiter
}

func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogging())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := db.Database().RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	database := db.Database()
	promptRepo := repositories.NewPromptRepository(database)
	blogPostRepo := repositories.NewBlogPostRepository(database)
	categoryRepo := repositories.NewCategoryRepository(database)
	blogCategoryRepo := repositories.NewBlogCategoryRepository(database)
	userRepo := repositories.NewUserRepository(database)

	promptSvc := services.NewPromptService(promptRepo, categoryRepo, userRepo, deps.Bus)
	blogSvc := services.NewBlogService(blogPostRepo, blogCategoryRepo, userRepo, deps.Bus)
	categorySvc := services.NewCategoryService(categoryRepo, blogCategoryRepo, userRepo)
	userSvc := services.NewUserService(userRepo)
	adminSvc := services.NewAdminService(promptRepo, userRepo)

	authed := middleware.AuthRequired(deps.JWTManager)
	adminOnly := middleware.AdminAuth(deps.JWTManager)
	limited := middleware.RateLimit(deps.Limiter)

	api := r.Group("/api/v1")
	{
		// Public catalog
		api.GET("/prompts", handlers.ListPromptsHandler(promptSvc))
		api.GET("/prompts/:slug", handlers.GetPromptHandler(promptSvc))
		api.GET("/categories", handlers.ListCategoriesHandler(categorySvc))
		api.GET("/blog/posts", handlers.ListBlogPostsHandler(blogSvc))
		api.GET("/blog/posts/:slug", handlers.GetBlogPostHandler(blogSvc))
		api.GET("/blog/categories", handlers.ListBlogCategoriesHandler(categorySvc))

		// Authenticated contributor routes. Writes carry the rate limit.
		api.POST("/prompts", authed, limited, handlers.CreatePromptHandler(promptSvc))
		api.PUT("/prompts/:id", authed, handlers.UpdatePromptHandler(promptSvc))
		api.DELETE("/prompts/:id", authed, handlers.DeletePromptHandler(promptSvc))
		api.POST("/prompts/:id/vote", authed, limited, handlers.VotePromptHandler(promptSvc))

		api.POST("/users/me", authed, handlers.EnsureProfileHandler(userSvc))
		api.GET("/users/me", authed, handlers.GetMeHandler(userSvc))
		api.PUT("/users/:uid", authed, handlers.UpdateProfileHandler(userSvc))

		// Admin routes. The services re-check is_admin from the user
		// document, the middleware only gates on the token claim.
		admin := api.Group("/admin", adminOnly)
		{
			admin.GET("/stats", handlers.GetStatsHandler(adminSvc))
			admin.GET("/users", handlers.ListUsersHandler(adminSvc))
			admin.GET("/prompts/pending", handlers.ListPendingPromptsHandler(adminSvc))
			admin.POST("/prompts/:id/approve", handlers.ApprovePromptHandler(promptSvc))
			admin.POST("/prompts/:id/reject", handlers.RejectPromptHandler(promptSvc))

			admin.POST("/categories", handlers.CreateCategoryHandler(categorySvc))
			admin.PUT("/categories/:id", handlers.UpdateCategoryHandler(categorySvc))
			admin.DELETE("/categories/:id", handlers.DeleteCategoryHandler(categorySvc))

			admin.GET("/blog/posts", handlers.ListBlogPostsAdminHandler(blogSvc))
			admin.POST("/blog/posts", handlers.CreateBlogPostHandler(blogSvc))
			admin.PUT("/blog/posts/:id", handlers.UpdateBlogPostHandler(blogSvc))
			admin.DELETE("/blog/posts/:id", handlers.DeleteBlogPostHandler(blogSvc))
			admin.POST("/blog/posts/:id/publish", handlers.PublishBlogPostHandler(blogSvc))
			admin.POST("/blog/posts/:id/unpublish", handlers.UnpublishBlogPostHandler(blogSvc))
			admin.POST("/blog/posts/:id/archive", handlers.ArchiveBlogPostHandler(blogSvc))

			admin.POST("/blog/categories", handlers.CreateBlogCategoryHandler(categorySvc))
			admin.DELETE("/blog/categories/:id", handlers.DeleteBlogCategoryHandler(categorySvc))
		}
	}

	return r
}

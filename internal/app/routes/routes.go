package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/memberhub/internal/app/controllers"
	"github.com/yigit/memberhub/internal/app/models"
	"github.com/yigit/memberhub/internal/middleware"
	"github.com/yigit/memberhub/internal/pkg/websocket"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	memberController *controllers.MemberController,
	eventController *controllers.EventController,
	postController *controllers.PostController,
	projectController *controllers.ProjectController,
	technologyController *controllers.TechnologyController,
	fileController *controllers.FileController,
	wsHandler *websocket.Handler,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := router.Group("/api")

	// --- Public routes ---
	api.POST("/member/register", memberController.Register)
	api.POST("/member/activate", memberController.Activate)
	api.POST("/member/login", memberController.Login)
	api.GET("/members/visible", memberController.ListVisible)
	api.GET("/events/visible", eventController.ListVisible)
	api.GET("/event/:eventPath", eventController.GetByPath)
	api.GET("/posts/visible", postController.ListVisible)
	api.GET("/projects/visible", projectController.ListVisible)
	api.GET("/technologies", technologyController.ListTechnologies)
	api.GET("/technology/:id", technologyController.GetTechnology)

	// Public files are downloadable anonymously
	api.GET("/file/:id/download", authMiddleware.OptionalAuth(), fileController.Download)

	// --- Authenticated routes (USER and above) ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleUser))
	{
		authenticated.POST("/member/deactivate", memberController.DeactivateSelf)
		authenticated.POST("/member/profile-picture", memberController.UpdateProfilePicture)
		authenticated.GET("/members/all", memberController.ListAll)

		authenticated.POST("/event/create", eventController.CreateEvent)
		authenticated.PUT("/event/:id/edit", eventController.EditEvent)

		authenticated.POST("/post/create", postController.CreatePost)
		authenticated.PUT("/post/:id/edit", postController.EditPost)
		authenticated.GET("/post/:id", postController.GetPost)

		authenticated.POST("/project/create", projectController.CreateProject)
		authenticated.PUT("/project/:id/edit", projectController.EditProject)
		authenticated.GET("/project/:id", projectController.GetProject)

		authenticated.GET("/files/general", fileController.ListGeneral)
	}

	// --- Moderator routes ---
	moderator := api.Group("")
	moderator.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleModerator))
	{
		moderator.GET("/events/all", eventController.ListAll)
		moderator.GET("/posts/all", postController.ListAll)
		moderator.GET("/projects/all", projectController.ListAll)

		moderator.POST("/file/general", fileController.UploadGeneral)
		moderator.DELETE("/file/:id", fileController.DeleteFile)

		moderator.GET("/ws/moderation", wsHandler.HandleConnection)
	}

	// --- Admin routes ---
	admin := api.Group("")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/admin/member/create", memberController.CreateByAdmin)
		admin.POST("/admin/member/:id/deactivate", memberController.DeactivateByAdmin)
		admin.PUT("/admin/member/:id/role", memberController.ChangeRole)
		admin.PUT("/admin/member/:id/visibility", memberController.SetVisibility)
		admin.PUT("/admin/member/:id/position", memberController.AssignPosition)

		admin.PUT("/admin/event/:id/visibility", eventController.SetVisibility)
		admin.PUT("/admin/post/:id/visibility", postController.SetVisibility)
		admin.PUT("/admin/project/:id/visibility", projectController.SetVisibility)

		admin.POST("/technology/create", technologyController.CreateTechnology)
		admin.PUT("/technology/:id/edit", technologyController.UpdateTechnology)
		admin.DELETE("/technology/:id", technologyController.DeleteTechnology)

		admin.POST("/file/technology/:id/icon", fileController.UploadTechnologyIcon)
	}
}

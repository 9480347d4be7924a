package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/auth"
)

// NewRouter builds the full route table. Kept out of main so the HTTP
// surface can be exercised end to end with httptest.
func NewRouter(
	sessions *auth.SessionService,
	authHandler *AuthHandler,
	companyHandler *CompanyHandler,
	recordHandler *RecordHandler,
) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowCredentials = false
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	r.GET("/health", HealthCheck)
	r.GET("/", authHandler.Root)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	authed := r.Group("/", auth.Middleware(sessions))
	{
		authed.GET("/logout", authHandler.Logout)
		authed.POST("/account/delete", authHandler.DeleteAccount)

		authed.GET("/dashboard", companyHandler.Dashboard)
		authed.POST("/dashboard", companyHandler.CreateCompany)

		authed.GET("/company/:id", companyHandler.Detail)
		authed.POST("/company/:id/edit", companyHandler.Edit)
		authed.POST("/company/:id/delete", companyHandler.Delete)

		authed.POST("/company/:id/interview/add", recordHandler.AddInterview)
		authed.POST("/company/:id/task/add", recordHandler.AddTask)
		authed.POST("/company/:id/document/add", recordHandler.AddDocument)
		authed.POST("/company/:id/memo/add", recordHandler.AddMemo)

		authed.POST("/interview/:id/edit", recordHandler.EditInterview)
		authed.POST("/interview/:id/delete", recordHandler.DeleteInterview)

		authed.POST("/task/:id/edit", recordHandler.EditTask)
		authed.POST("/task/:id/delete", recordHandler.DeleteTask)
		authed.POST("/task/:id/toggle", recordHandler.ToggleTask)

		authed.POST("/document/:id/edit", recordHandler.EditDocument)
		authed.POST("/document/:id/delete", recordHandler.DeleteDocument)

		authed.POST("/memo/:id/edit", recordHandler.EditMemo)
		authed.POST("/memo/:id/delete", recordHandler.DeleteMemo)
	}

	return r
}

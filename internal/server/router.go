package server

import (
	"net/http"

	"opsboard/internal/config"
	"opsboard/internal/handlers"
	"opsboard/internal/middleware"
	"opsboard/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("opsboard_session", store))

	r.Use(middleware.InjectUser())

	// AUTH
	r.POST("/api/register", handlers.Register)
	r.POST("/api/login", handlers.Login)
	r.GET("/api/logout", handlers.Logout)

	api := r.Group("/api")
	api.Use(middleware.RequireAuth())

	api.GET("/me", handlers.Me)
	api.GET("/codes/:group", handlers.ListCodes)

	// 관리자 전용
	api.GET("/users", middleware.RequireRole(models.RoleAdmin), handlers.ListUsers)

	// 보안사고
	incidents := api.Group("/incidents", middleware.WithPermissions("incident"))
	incidents.GET("", handlers.ListIncidents)
	incidents.GET("/dashboard", handlers.IncidentDashboard)
	incidents.GET("/kanban", handlers.IncidentKanban)
	incidents.GET("/changelog", handlers.IncidentChangeLog)
	incidents.POST("", handlers.CreateIncident)
	incidents.PUT("/:id", handlers.UpdateIncident)
	incidents.PATCH("/:id/status", handlers.MoveIncidentStatus)
	incidents.DELETE("/:id", handlers.DeleteIncident)
	incidents.POST("/delete", handlers.DeleteIncidents)

	// 소프트웨어 자산
	software := api.Group("/software", middleware.WithPermissions("software"))
	software.GET("", handlers.ListSoftware)
	software.GET("/dashboard", handlers.SoftwareDashboard)
	software.GET("/kanban", handlers.SoftwareKanban)
	software.GET("/changelog", handlers.SoftwareChangeLog)
	software.POST("", handlers.CreateSoftware)
	software.PUT("/:id", handlers.UpdateSoftware)
	software.PATCH("/:id/status", handlers.MoveSoftwareStatus)
	software.DELETE("/:id", handlers.DeleteSoftware)
	software.POST("/delete", handlers.DeleteSoftwares)

	// 업무
	tasks := api.Group("/tasks", middleware.WithPermissions("task"))
	tasks.GET("", handlers.ListTasks)
	tasks.GET("/dashboard", handlers.TaskDashboard)
	tasks.GET("/kanban", handlers.TaskKanban)
	tasks.GET("/changelog", handlers.TaskChangeLog)
	tasks.POST("", handlers.CreateTask)
	tasks.PUT("/:id", handlers.UpdateTask)
	tasks.PATCH("/:id/status", handlers.MoveTaskStatus)
	tasks.DELETE("/:id", handlers.DeleteTask)
	tasks.POST("/delete", handlers.DeleteTasks)

	// VOC
	vocs := api.Group("/vocs", middleware.WithPermissions("voc"))
	vocs.GET("", handlers.ListVocs)
	vocs.GET("/dashboard", handlers.VocDashboard)
	vocs.GET("/kanban", handlers.VocKanban)
	vocs.GET("/changelog", handlers.VocChangeLog)
	vocs.POST("", handlers.CreateVoc)
	vocs.PUT("/:id", handlers.UpdateVoc)
	vocs.PATCH("/:id/status", handlers.MoveVocStatus)
	vocs.DELETE("/:id", handlers.DeleteVoc)
	vocs.POST("/delete", handlers.DeleteVocs)

	// 매출
	sales := api.Group("/sales", middleware.WithPermissions("sale"))
	sales.GET("", handlers.ListSales)
	sales.GET("/dashboard", handlers.SaleDashboard)
	sales.GET("/kanban", handlers.SaleKanban)
	sales.GET("/changelog", handlers.SaleChangeLog)
	sales.POST("", handlers.CreateSale)
	sales.PUT("/:id", handlers.UpdateSale)
	sales.PATCH("/:id/status", handlers.MoveSaleStatus)
	sales.DELETE("/:id", handlers.DeleteSale)
	sales.POST("/delete", handlers.DeleteSales)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}

package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/estospaces/realtysvc/internal/http/handlers"
	"github.com/estospaces/realtysvc/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, ph *handlers.PropertyHandlers, jwtmw *middleware.AuthMW, cb *middleware.CasbinMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api/auth")
	api.POST("/register", ah.Register)
	api.GET("/verify-email", ah.VerifyEmail)
	api.POST("/login", ah.Login)
	api.POST("/send-otp", ah.SendOTP)
	api.POST("/verify-otp", ah.VerifyOTP)
	api.POST("/reset-password", ah.ResetPassword)

	props := api.Group("/properties").Use(jwtmw.WithJWT(), cb.Enforce())
	props.POST("", ph.Create)
	props.GET("/:id", ph.Get)
	props.PATCH("/:id", ph.Update)
	props.DELETE("/:id", ph.Delete)
	props.POST("/:id/publish", ph.Publish)
	props.POST("/:id/unpublish", ph.Unpublish)
	props.POST("/:id/status", ph.UpdateStatus)

	return r
}

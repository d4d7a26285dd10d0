package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/you/currencysvc/internal/http/handlers"
	"github.com/you/currencysvc/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, ch *handlers.ConversionHandlers, authmw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/request-otp", ah.RequestOTP)
	auth.POST("/verify-otp", ah.VerifyOTP)
	auth.POST("/login", ah.Login)

	conv := r.Group("/conversion").Use(authmw)
	conv.POST("/usd-to-sll", ch.UsdToSll)

	return r
}

package app

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/currencysvc/internal/config"
	httpx "github.com/you/currencysvc/internal/http"
	"github.com/you/currencysvc/internal/http/handlers"
	"github.com/you/currencysvc/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	gin.SetMode(cfg.GinMode)

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	authH := handlers.NewAuthHandlers(c.AuthSvc)
	convH := handlers.NewConversionHandlers(c.RateClient)
	authMW := middleware.AuthMiddleware(c.TokenSvc)

	r := httpx.BuildRouter(authH, convH, authMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

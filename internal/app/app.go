package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estospaces/realtysvc/internal/config"
	httpx "github.com/estospaces/realtysvc/internal/http"
	"github.com/estospaces/realtysvc/internal/http/handlers"
	"github.com/estospaces/realtysvc/internal/http/middleware"
)

// Run wires the container and serves until the listener fails.
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(c.AuthSvc, c.ResetSvc, c.Logger)
	propH := handlers.NewPropertyHandlers(c.PropertySvc, c.Logger)

	jwtMW := middleware.NewAuthMW(c.TokenSvc, c.UserRepo)
	casbinMW := middleware.NewCasbinMW(c.Enforcer)

	r := httpx.BuildRouter(authH, propH, jwtMW, casbinMW)

	seedPolicies(c)

	addr := ":" + cfg.Port
	c.Logger.Info().Str("addr", addr).Msg("listening")
	return http.ListenAndServe(addr, r)
}

// seedPolicies installs the default role policies on first boot.
// Managers and admins mutate listings; any authenticated role reads.
func seedPolicies(c *Container) {
	policies, _ := c.Enforcer.GetPolicy()
	if len(policies) > 0 {
		return
	}

	c.Enforcer.AddPolicy("role_admin", "/api/auth/properties", "POST")
	c.Enforcer.AddPolicy("role_admin", "/api/auth/properties/*", "(GET|POST|PATCH|DELETE)")
	c.Enforcer.AddPolicy("role_manager", "/api/auth/properties", "POST")
	c.Enforcer.AddPolicy("role_manager", "/api/auth/properties/*", "(GET|POST|PATCH|DELETE)")
	c.Enforcer.AddPolicy("role_user", "/api/auth/properties/*", "GET")
	_ = c.Enforcer.SavePolicy()

	c.Logger.Info().Msg("casbin: seeded default policies")
}

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-inspector/internal/handlers/v1/auth"
	"github.com/carson-networks/finance-inspector/internal/handlers/v1/balance"
	"github.com/carson-networks/finance-inspector/internal/handlers/v1/link"
	"github.com/carson-networks/finance-inspector/internal/handlers/v1/search"
	"github.com/carson-networks/finance-inspector/internal/handlers/v1/status"
	"github.com/carson-networks/finance-inspector/internal/handlers/v1/summary"
	"github.com/carson-networks/finance-inspector/internal/handlers/v1/webhook"
	"github.com/carson-networks/finance-inspector/internal/logging"
	"github.com/carson-networks/finance-inspector/internal/service"
)

const apiVersion = "1.0.0"

type Rest struct {
	Logger         *logrus.Logger
	Port           string
	Service        *service.Service
	AllowedOrigins []string
	JWTSecret      string
}

// Router builds the gin engine with every operation registered.
func (r *Rest) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(r.corsConfig()))
	engine.Use(logging.LoggingMiddleware("API", r.Logger))

	config := huma.DefaultConfig("Finance Inspector", apiVersion)
	// Responses keep the plain shapes clients already parse, without a $schema link.
	config.CreateHooks = nil
	api := humagin.New(engine, config)

	auth.AddSecurityScheme(api)
	api.UseMiddleware(auth.NewMiddleware(api, r.JWTSecret))

	status.NewHandler().Register(api)
	summary.NewHandler(r.Service.Spending).Register(api)
	search.NewHandler(r.Service.Spending).Register(api)
	balance.NewHandler(r.Service.Spending).Register(api)
	link.NewHandler(r.Service.Link).Register(api)
	webhook.NewHandler(r.Service.Link).Register(api)

	return engine
}

func (r *Rest) corsConfig() cors.Config {
	config := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With", "Connection-Id"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	origins := r.AllowedOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		// Credentials rule out a literal "*", so reflect the caller's origin.
		config.AllowOriginFunc = func(string) bool { return true }
	} else {
		config.AllowOrigins = origins
	}
	return config
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}

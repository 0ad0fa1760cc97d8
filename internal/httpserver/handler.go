package httpserver

import (
	alertHTTP "vitalguard-api/internal/alert/delivery/http"
	identityHTTP "vitalguard-api/internal/identity/delivery/http"
	"vitalguard-api/internal/middleware"
	wsHTTP "vitalguard-api/internal/ws/delivery/http"

	// Executes the init function in docs.go which registers the Swagger spec.
	_ "vitalguard-api/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const Api = "/api/v1"

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	mw := middleware.New(srv.l, srv.jwtMgr)

	api := srv.gin.Group(Api)

	identityHTTP.MapRoutes(api, identityHTTP.New(srv.l, srv.identityUC), mw)
	alertHTTP.MapRoutes(api, alertHTTP.New(srv.l, srv.alertUC), mw)
	wsHTTP.MapRoutes(api, wsHTTP.New(srv.l, srv.wsUC, srv.jwtMgr, wsHTTP.Config{
		ReadBufferSize:  srv.wsConfig.ReadBufferSize,
		WriteBufferSize: srv.wsConfig.WriteBufferSize,
	}))

	return nil
}

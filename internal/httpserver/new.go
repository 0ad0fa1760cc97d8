package httpserver

import (
	"errors"

	"vitalguard-api/config"
	"vitalguard-api/internal/alert"
	"vitalguard-api/internal/archive"
	"vitalguard-api/internal/identity"
	"vitalguard-api/internal/ws"
	wsRedis "vitalguard-api/internal/ws/delivery/redis"
	pkgLog "vitalguard-api/pkg/log"
	pkgRedis "vitalguard-api/pkg/redis"
	"vitalguard-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// HTTPServer owns the gin engine and the background services tied to the
// process lifecycle. New only wires dependencies; Run starts everything.
type HTTPServer struct {
	gin  *gin.Engine
	l    pkgLog.Logger
	host string
	port int
	mode string

	jwtMgr scope.Manager
	redis  pkgRedis.IRedis

	identityUC identity.UseCase
	alertUC    alert.UseCase

	wsUC         ws.UseCase
	wsSubscriber wsRedis.Subscriber
	wsConfig     config.WebSocketConfig

	archiver archive.Archiver
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Host string
	Port int
	Mode string

	JWTManager scope.Manager
	Redis      pkgRedis.IRedis

	IdentityUC identity.UseCase
	AlertUC    alert.UseCase

	WSUseCase    ws.UseCase
	WSSubscriber wsRedis.Subscriber
	WSConfig     config.WebSocketConfig

	// Archiver is optional, nil disables audit archival.
	Archiver archive.Archiver
}

// New creates the HTTP server. No goroutines start here.
func New(l pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:  gin.New(),
		l:    l,
		host: cfg.Host,
		port: cfg.Port,
		mode: cfg.Mode,

		jwtMgr: cfg.JWTManager,
		redis:  cfg.Redis,

		identityUC: cfg.IdentityUC,
		alertUC:    cfg.AlertUC,

		wsUC:         cfg.WSUseCase,
		wsSubscriber: cfg.WSSubscriber,
		wsConfig:     cfg.WSConfig,

		archiver: cfg.Archiver,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.jwtMgr == nil {
		return errors.New("JWT manager is required")
	}
	if srv.identityUC == nil {
		return errors.New("identity usecase is required")
	}
	if srv.alertUC == nil {
		return errors.New("alert usecase is required")
	}
	if srv.wsUC == nil {
		return errors.New("websocket usecase is required")
	}
	return nil
}

package webserver

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/opsline/stockpile/config"
)

var server *WebServer

// WebServer wraps the echo instance. Handlers are registered through the
// package-level Api* helpers under the /api group.
type WebServer struct {
	root *echo.Echo
	api  *echo.Group
	cfg  *config.WebConfig
}

// Init builds the global web server. Must run before any route
// registration.
func Init(cfg *config.WebConfig) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())
	e.Use(echoprometheus.NewMiddleware("stockpile"))
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	server = &WebServer{
		root: e,
		api:  e.Group("/api"),
		cfg:  cfg,
	}
}

// Listen starts serving and blocks.
func Listen() error {
	addr := fmt.Sprintf("%s:%d", server.cfg.Host, server.cfg.Port)
	zap.L().Info("admin api listening", zap.String("addr", addr))
	return server.root.Start(addr)
}

// Shutdown is a no-op when Init never ran.
func Shutdown() {
	if server != nil {
		_ = server.root.Close()
	}
}

func ApiGET(path string, h echo.HandlerFunc) {
	server.api.GET(path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.api.POST(path, h)
}

func ApiPUT(path string, h echo.HandlerFunc) {
	server.api.PUT(path, h)
}

func ApiPATCH(path string, h echo.HandlerFunc) {
	server.api.PATCH(path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.api.DELETE(path, h)
}

// jsonSerializer swaps echo's encoding/json for json-iterator.
type jsonSerializer struct{}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (jsonSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (jsonSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := json.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/TJurijs/5esrd-api/catalog"
	"github.com/TJurijs/5esrd-api/markup"
	"github.com/TJurijs/5esrd-api/rules"
	"github.com/TJurijs/5esrd-api/tmpstore"
	"github.com/TJurijs/5esrd-api/token"
	"github.com/TJurijs/5esrd-api/util"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var (
	// api errors
	ErrInvalidParams  = errors.New("invalid params")
	ErrAdminDisabled  = errors.New("admin endpoints are disabled")
	ErrReloadDisabled = errors.New("no dataset source configured for reloads")
	ErrEmptyReload    = errors.New("reloaded dataset is empty, keeping the current one")
	ErrForbiddenRole  = errors.New("token role is not allowed here")
)

// DatasetSource produces a fresh dataset on reload.
type DatasetSource interface {
	LoadDataset(ctx context.Context) (*rules.Dataset, error)
}

type Service struct {
	config     util.Config
	catalog    *catalog.Catalog
	expander   *markup.Expander
	cache      tmpstore.Store
	tokenMaker token.Maker
	source     DatasetSource
	upgrader   websocket.Upgrader
	server     *http.Server
	router     *gin.Engine
}

// Returns new service instance serving the given catalog.
// A nil cache disables response caching, a nil token maker disables the admin routes
// and a nil source disables reloads.
func NewService(
	config util.Config,
	cat *catalog.Catalog,
	cache tmpstore.Store,
	tokenMaker token.Maker,
	source DatasetSource,
) (*Service, error) {
	if cache == nil {
		cache = tmpstore.NoopStore{}
	}

	addr, err := config.ListenAddress()
	if err != nil {
		return nil, err
	}

	service := &Service{
		config:     config,
		catalog:    cat,
		expander:   markup.New(markup.WithMaxPasses(config.MarkupMaxPasses)),
		cache:      cache,
		tokenMaker: tokenMaker,
		source:     source,
	}

	service.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     service.checkOrigin,
	}

	server := &http.Server{
		Addr: addr,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you’ll spend writing the response (no “forever hanging” clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}

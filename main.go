package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TJurijs/5esrd-api/api"
	"github.com/TJurijs/5esrd-api/catalog"
	db "github.com/TJurijs/5esrd-api/db/sqlc"
	"github.com/TJurijs/5esrd-api/loader"
	"github.com/TJurijs/5esrd-api/markup"
	"github.com/TJurijs/5esrd-api/mcptools"
	"github.com/TJurijs/5esrd-api/rules"
	"github.com/TJurijs/5esrd-api/tmpstore"
	"github.com/TJurijs/5esrd-api/token"
	"github.com/TJurijs/5esrd-api/util"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	// reading .env config file
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config file")
	}

	if err := config.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	setupLogger(config)

	if config.RunMode == util.RunModeToken {
		printAdminToken(config)
		return
	}

	// Configure the validator to use json tags for field names in errors
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := api.RegisterValidators(v); err != nil {
			log.Fatal().Err(err).Msg("cannot register validators")
		}
	}

	// catching interrupt signals for graceful shutdown
	// stop() or a signal catch makes context Done
	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	var store db.Store
	if config.DBSource != "" {
		conn, err := pgxpool.New(ctx, config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to the database")
		}

		// running db migrations every time the server starts
		// it's idempotent, so the schema establishes only once if no new versions added
		runDBMigration(config.MigrationURL, config.DBSource)

		store = db.NewStore(conn)
		defer store.Shutdown()
	}

	source := datasetSource(config, store)

	ds, err := source.LoadDataset(ctx)
	if err != nil {
		log.Fatal().Err(err).Str("data_source", config.DataSource).Msg("cannot load dataset")
	}

	cat := catalog.New(ds)
	log.Info().Int("total", ds.Total()).Msg("catalog ready")

	// waitgroup which manages goroutines for starting and stopping the servers
	waitGroup, ctx := errgroup.WithContext(ctx)

	if config.ServesHTTP() {
		RunGinServer(ctx, waitGroup, config, cat, source)
	}

	if config.ServesMCP() {
		RunMCPServer(ctx, waitGroup, config, cat, stop)
	}

	err = waitGroup.Wait()
	if err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

func setupLogger(config util.Config) {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// stdout belongs to the MCP transport and to the token printer
	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		gin.SetMode(gin.ReleaseMode)
	}

	gin.DefaultWriter = os.Stderr
	gin.DefaultErrorWriter = os.Stderr
}

// printAdminToken writes a fresh admin token to stdout for use with the reload endpoint.
func printAdminToken(config util.Config) {
	tokenMaker, err := token.NewJWTMaker(config.TokenSymmetricKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create JWT token maker")
	}

	accessToken, payload, err := tokenMaker.CreateToken("admin", token.RoleAdmin, config.AdminTokenDuration)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create admin token")
	}

	log.Info().Time("expires_at", payload.ExpiredAt).Msg("admin token created")
	fmt.Println(accessToken)
}

func runDBMigration(migrationURL string, dbSource string) {
	mig, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create new migrate instance")
	}

	if err = mig.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal().Err(err).Msg("failed to run migrate up")
	}

	log.Info().Msg("db migrated successfully")
}

// snapshotSource loads the data files and, with a database configured,
// stores every successful load as the new snapshot.
type snapshotSource struct {
	dir   loader.Dir
	store db.Store
}

func (s snapshotSource) LoadDataset(ctx context.Context) (*rules.Dataset, error) {
	ds, err := s.dir.LoadDataset(ctx)
	if err != nil {
		return nil, err
	}

	if s.store != nil && ds.Total() > 0 {
		n, err := s.store.SaveDataset(ctx, ds)
		if err != nil {
			// a failed snapshot does not fail the load
			log.Error().Err(err).Msg("cannot save dataset snapshot")
		} else {
			log.Info().Int64("rows", n).Msg("dataset snapshot saved")
		}
	}

	return ds, nil
}

func datasetSource(config util.Config, store db.Store) api.DatasetSource {
	if config.DataSource == util.DataSourcePostgres {
		return store
	}
	return snapshotSource{dir: loader.Dir(config.DataPath), store: store}
}

func RunGinServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	cat *catalog.Catalog,
	source api.DatasetSource,
) {
	cache := tmpstore.NewStore(&config)

	var tokenMaker token.Maker
	if config.TokenSymmetricKey != "" {
		var err error
		tokenMaker, err = token.NewJWTMaker(config.TokenSymmetricKey)
		if err != nil {
			log.Error().Err(err).Msg("failed to create JWT token maker")
			return
		}
	} else {
		log.Warn().Msg("TOKEN_SYMMETRIC_KEY is not set, admin endpoints are disabled")
	}

	service, err := api.NewService(config, cat, cache, tokenMaker, source)
	if err != nil {
		log.Error().Err(err).Msg("cannot create HTTP service")
		return
	}

	waitGroup.Go(func() error {
		log.Info().Msgf("start HTTP server at %s", config.HTTPServerAddress)

		err := service.Start()

		if err != nil {
			//http.ErrServerClosed is returned once the server begins shutting down
			// which is normal
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			log.Error().Err(err).Msg("cannot start HTTP server")
		}

		return err
	})

	waitGroup.Go(func() error {
		<-ctx.Done()

		log.Info().Msg("HTTP server: graceful shutdown")

		// give the server 5 secs to finish all his processes
		toCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := service.Shutdown(toCtx)

		if err != nil {
			log.Error().Err(err).Msg("cannot shutdown HTTP server gracefully")
		}

		if rs, ok := cache.(*tmpstore.RedisStore); ok {
			if err := rs.Close(); err != nil {
				log.Warn().Err(err).Msg("cannot close redis client")
			}
		}

		log.Info().Msg("HTTP server is stopped")

		return err
	})
}

// RunMCPServer serves the MCP tools on stdin and stdout. In mcp mode the end of
// stdin stops the whole process, in both mode only the MCP side.
func RunMCPServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	cat *catalog.Catalog,
	stop context.CancelFunc,
) {
	expander := markup.New(markup.WithMaxPasses(config.MarkupMaxPasses))
	mcpServer := mcptools.NewServer(cat, expander, version)

	waitGroup.Go(func() error {
		err := mcptools.Serve(ctx, mcpServer, os.Stdin, os.Stdout)
		if err != nil {
			log.Error().Err(err).Msg("MCP server failed")
			return err
		}

		log.Info().Msg("MCP server is stopped")

		if config.RunMode == util.RunModeMCP {
			stop()
		}
		return nil
	})
}

package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/workforcehq/workforce/internal"
	"github.com/workforcehq/workforce/internal/logging"
	"github.com/workforcehq/workforce/internal/server/data"
)

type Options struct {
	Version float64

	// EnableSignup allows the first admin account to be created over the
	// API. Once any credential exists signup is always rejected, so this
	// only controls whether the endpoint is reachable at all.
	EnableSignup bool

	// EnableLogSampling indicates whether or not to sample HTTP access logs.
	// When true, non-error HTTP GET logs will be sampled down to 1 every 7
	// seconds grouped by the request path.
	EnableLogSampling bool

	SessionDuration time.Duration

	DBFile             string
	DBHost             string
	DBPort             int
	DBName             string
	DBUsername         string
	DBPassword         string
	DBParameters       string
	DBConnectionString string

	Addr ListenerOptions
	API  APIOptions
}

type ListenerOptions struct {
	HTTP    string
	Metrics string
}

type APIOptions struct {
	RequestTimeout time.Duration
}

type Server struct {
	options         Options
	db              *gorm.DB
	Addrs           Addrs
	routines        []routine
	metricsRegistry *prometheus.Registry
}

type Addrs struct {
	HTTP    net.Addr
	Metrics net.Addr
}

// New creates a Server, and initializes it. The returned Server is ready
// to run.
func New(options Options) (*Server, error) {
	if options.SessionDuration == 0 {
		options.SessionDuration = 12 * time.Hour
	}
	if options.API.RequestTimeout == 0 {
		options.API.RequestTimeout = time.Minute
	}

	server := &Server{options: options}

	driver, err := getDatabaseDriver(options)
	if err != nil {
		return nil, fmt.Errorf("database driver: %w", err)
	}

	db, err := data.NewDB(driver)
	if err != nil {
		return nil, fmt.Errorf("db: %w", err)
	}
	server.db = db
	server.metricsRegistry = setupMetrics(server.db)

	if err := server.listen(); err != nil {
		return nil, fmt.Errorf("listening: %w", err)
	}

	return server, nil
}

// DB returns the database connection pool used by the server. It is
// primarily used by tests to create fixture data.
func (s *Server) DB() *gorm.DB {
	return s.db
}

func (s *Server) Options() Options {
	return s.options
}

func (s *Server) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	for i := range s.routines {
		group.Go(s.routines[i].run)
	}

	logging.Infof("starting workforce server (%s) - http:%s metrics:%s",
		internal.FullVersion(), s.Addrs.HTTP, s.Addrs.Metrics)

	<-ctx.Done()
	for i := range s.routines {
		s.routines[i].stop()
	}

	err := group.Wait()

	if sqlDB, dbErr := s.db.DB(); dbErr == nil {
		if closeErr := sqlDB.Close(); closeErr != nil {
			logging.L.Warn().Err(closeErr).Msg("failed to close database connection")
		}
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *Server) listen() error {
	router := s.GenerateRoutes(s.metricsRegistry)

	httpErrorLog := log.New(logging.NewFilteredHTTPLogger(), "", 0)
	metricsServer := &http.Server{
		ReadHeaderTimeout: 30 * time.Second,
		ReadTimeout:       60 * time.Second,
		Addr:              s.options.Addr.Metrics,
		Handler:           metricsHandler(s.metricsRegistry),
		ErrorLog:          httpErrorLog,
	}

	var err error
	s.Addrs.Metrics, err = s.setupServer(metricsServer)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		ReadHeaderTimeout: 30 * time.Second,
		ReadTimeout:       60 * time.Second,
		Addr:              s.options.Addr.HTTP,
		Handler:           router,
		ErrorLog:          httpErrorLog,
	}
	s.Addrs.HTTP, err = s.setupServer(httpServer)
	if err != nil {
		return err
	}
	return nil
}

func (s *Server) setupServer(server *http.Server) (net.Addr, error) {
	if server.Addr == "" {
		server.Addr = "127.0.0.1:"
	}
	l, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return nil, err
	}
	logging.Infof("listening on %s", l.Addr().String())

	s.routines = append(s.routines, routine{
		run: func() error {
			err := server.Serve(l)
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
		stop: func() {
			_ = server.Close()
		},
	})
	return l.Addr(), nil
}

type routine struct {
	run  func() error
	stop func()
}

// getDatabaseDriver builds a gorm driver from the configured options.
// Postgres is used when any postgres option is set, otherwise the
// embedded sqlite database is used.
func getDatabaseDriver(options Options) (gorm.Dialector, error) {
	if options.DBConnectionString != "" || options.DBHost != "" {
		dsn, err := getPostgresConnectionString(options)
		if err != nil {
			return nil, err
		}
		return data.NewPostgresDriver(dsn)
	}

	file := options.DBFile
	if file == "" {
		file = "workforce.db"
	}
	if dir := filepath.Dir(file); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	return data.NewSQLiteDriver(file)
}

// getPostgresConnectionString parses postgres configuration options and
// returns the connection string.
func getPostgresConnectionString(options Options) (string, error) {
	var pgConn strings.Builder
	pgConn.WriteString(options.DBConnectionString + " ")

	if options.DBHost != "" {
		// config has separate postgres parameters set, combine them into a connection DSN now
		fmt.Fprintf(&pgConn, "host=%s ", options.DBHost)
	}

	if options.DBUsername != "" {
		fmt.Fprintf(&pgConn, "user=%s ", options.DBUsername)
	}

	if options.DBPassword != "" {
		fmt.Fprintf(&pgConn, "password=%s ", options.DBPassword)
	}

	if options.DBPort > 0 {
		fmt.Fprintf(&pgConn, "port=%d ", options.DBPort)
	}

	if options.DBName != "" {
		fmt.Fprintf(&pgConn, "dbname=%s ", options.DBName)
	}

	if options.DBParameters != "" {
		fmt.Fprint(&pgConn, options.DBParameters)
	}

	return strings.TrimSpace(pgConn.String()), nil
}

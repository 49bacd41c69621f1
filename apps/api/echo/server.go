package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/jnedu/classroom2030/core"
	"github.com/jnedu/classroom2030/core/class"
	"github.com/jnedu/classroom2030/core/group"
)

type (
	Options struct {
		Addr           string
		DisableReqLogs bool

		Logger   core.Logger
		MailSvc  core.EmailService
		GroupSvc *group.Service
		ClassSvc *class.Service
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts     *Options
		app      *echo.Echo
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts:     opts,
		app:      echo.New(),
		shutdown: make(chan os.Signal, 1),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	debug := core.Conf.Debug

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.CORS())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.signalShutdown)
	s.app.Debug = debug
	s.app.HideBanner = true

	s.app.GET("/", home)

	api := s.app.Group("/api")
	api.GET("/health", health)

	registerGroupAPI(api, s.opts.GroupSvc)
	registerClassAPI(api, s.opts.ClassSvc)
	registerContactAPI(api, s.opts.MailSvc)
}

// Start serves until SIGINT/SIGTERM (or a shutdown error), then drains with
// the configured timeout.
func (s *server) Start() {
	serverErrors := make(chan error, 1)
	go func() {
		s.opts.Logger.Info("server listening on " + s.opts.Addr)
		serverErrors <- s.app.Start(s.opts.Addr)
	}()

	signal.Notify(s.shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			s.opts.Logger.Fatal("server error", err)
		}
	case sig := <-s.shutdown:
		s.opts.Logger.Info("shutdown started: " + sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), core.Conf.Server.ShutdownTimeout)
		defer cancel()
		if err := s.Stop(ctx); err != nil {
			s.opts.Logger.Error("graceful shutdown failed", err)
			_ = s.app.Close()
		}
	}
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to the Classroom 2030 API!")
}

func health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"status": "ok", "message": "Backend API is running"})
}

package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/etag"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/pquerna/ffjson/ffjson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"inventory-api-server/cmd/api-server/app/options"
	"inventory-api-server/internal/api/inventory"
	cache2 "inventory-api-server/internal/cache"
	"inventory-api-server/internal/config"
	"inventory-api-server/internal/workspace"
)

type Server struct {
	app    *fiber.App
	cache  *cache2.Cache
	logger *zap.Logger
}

func NewServer(opts *options.Options, logger *zap.Logger) *Server {
	// workspace credential defaults from the process environment
	defaults, err := config.NewWorkspace()
	if err != nil {
		logger.Fatal("Unable to load workspace defaults", zap.Error(err))
	}

	cache, err := cache2.NewCache()
	if err != nil {
		logger.Fatal("Unable to init cache", zap.Error(err))
	}
	factory := workspace.NewFactory(cache, logger.Named("workspace"))

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		AppName:     "Workspace Inventory API Server",
		Prefork:     false,
		Views:       engine,
		JSONEncoder: ffjson.Marshal,
	})

	app.Use(cors.New())
	app.Use(compress.New())
	app.Use(etag.New())
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] [${ip}:${port}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	if *opts.Mode == "debug" {
		app.Use(pprof.New())
	}

	// inventory
	inventoryLogger := logger.Named("inventory")
	inventoryService := inventory.NewInventoryService(factory, inventoryLogger)
	inventory.InventoryRouter(app.Group("/api/v1/"), inventoryService, *defaults, inventoryLogger)

	// viewer page
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{
			"Theme":            c.Query("theme", "light"),
			"DefaultHost":      defaults.Host,
			"DefaultThreshold": *opts.Threshold,
		})
	})

	app.Get("/dashboard", monitor.New())

	app.Get("/swagger/*", swagger.New()) // default config

	app.All("*", func(c *fiber.Ctx) error {
		errorMessage := fmt.Sprintf("Route '%s' does not exist in this API!", c.OriginalURL())

		return c.Status(fiber.StatusNotFound).JSON(&fiber.Map{
			"status":  "fail",
			"message": errorMessage,
		})
	})

	return &Server{
		app:    app,
		cache:  cache,
		logger: logger,
	}
}

func (app *Server) Listen(port int, certFile, keyFile *string) error {
	app.logger.Info("Starting Workspace Inventory api-server ...")

	address := fmt.Sprintf(":%d", port)
	if certFile != nil && keyFile != nil {
		if *certFile != "" && *keyFile != "" {
			return app.app.ListenTLS(address, *certFile, *keyFile)
		}
	}
	return app.app.Listen(address)
}

func (app *Server) Shutdown(parentCtx context.Context) error {
	g, ctx := errgroup.WithContext(parentCtx)
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	g.Go(func() error {
		if err := app.app.ShutdownWithContext(ctx); err != nil {
			return err
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	// memoized workspace clients must outlive every in-flight request
	app.cache.Clear()
	return nil
}

func Run(opts *options.Options, logger *zap.Logger) error {
	apiServerError := make(chan error)

	server := NewServer(opts, logger)

	go func() {
		if err := server.Listen(*opts.Port, opts.CertFile, opts.KeyFile); err != nil && err != http.ErrServerClosed {
			logger.Error("Listen for api-server failed", zap.Error(err))
			apiServerError <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("Shutdown server ...")

		ctx := context.Background()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("close api-server failed", zap.Error(err))
			return err
		}
	case err := <-apiServerError:
		return err
	}

	return nil
}

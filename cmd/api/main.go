package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/directorio-admin/internal/application/session"
	"github.com/jhoicas/directorio-admin/internal/application/store"
	"github.com/jhoicas/directorio-admin/internal/infrastructure/directory"
	httpRouter "github.com/jhoicas/directorio-admin/internal/interfaces/http"
	"github.com/jhoicas/directorio-admin/pkg/config"
	"github.com/jhoicas/directorio-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("directory", cfg.Directory.BaseURL).
		Msg("iniciando aplicación")

	if cfg.Session.Secret == "" {
		log.Fatal().Msg("SESSION_SECRET es requerido")
	}

	// La sesión se crea antes que el cliente porque este la necesita como
	// TokenSource; el facade se enlaza después.
	sess := session.New()
	client := directory.NewClient(directory.Config{
		BaseURL: cfg.Directory.BaseURL,
		Timeout: cfg.Directory.Timeout(),
	}, sess)
	sess.Bind(client)

	usersStore := store.NewUsersStore(client)
	departmentsStore := store.NewDepartmentsStore(client)
	adminsStore := store.NewAdminsStore(client)
	positionsStore := store.NewPositionsStore(client)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Directorio Admin Gateway",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Session:     sess,
		Users:       usersStore,
		Departments: departmentsStore,
		Admins:      adminsStore,
		Positions:   positionsStore,
		SessionCfg:  cfg.Session,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

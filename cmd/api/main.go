package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/getlatam/getla-api/internal/application/auth"
	"github.com/getlatam/getla-api/internal/application/facturacion"
	"github.com/getlatam/getla-api/internal/application/sesion"
	"github.com/getlatam/getla-api/internal/application/usecase"
	infrapdf "github.com/getlatam/getla-api/internal/infrastructure/pdf"
	"github.com/getlatam/getla-api/internal/infrastructure/postgres"
	httpRouter "github.com/getlatam/getla-api/internal/interfaces/http"
	"github.com/getlatam/getla-api/pkg/config"
	"github.com/getlatam/getla-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		App:   cfg.App.Name,
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	cabeceraRepo := postgres.NewCabeceraRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	facturaRepo := postgres.NewFacturaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	store := sesion.NewMemoriaStore()
	authUC := auth.NewAuthUseCase(usuarioRepo, store, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auth.ResetConfig{
		TokenMinutes: cfg.Reset.TokenMinutes,
		ConsoleURL:   cfg.Reset.ConsoleURL,
	}, log)
	gate := sesion.NewGate(store, authUC)

	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	cabeceraUC := usecase.NewCabeceraUseCase(cabeceraRepo)
	inventarioUC := usecase.NewInventarioUseCase(categoriaRepo, productoRepo)
	facturaUC := facturacion.NewFacturaUseCase(txRunner, cabeceraRepo, clienteRepo, productoRepo, facturaRepo)

	pdfGenerator := infrapdf.NewMarotoFacturaGenerator()
	pdfUC := facturacion.NewPDFUseCase(facturaRepo, cabeceraRepo, clienteRepo, productoRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, x-auth-token",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GETLA API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		Gate:         gate,
		UsuarioUC:    usuarioUC,
		ClienteUC:    clienteUC,
		CabeceraUC:   cabeceraUC,
		InventarioUC: inventarioUC,
		FacturaUC:    facturaUC,
		PDFUC:        pdfUC,
		JWTSecret:    cfg.JWT.Secret,
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

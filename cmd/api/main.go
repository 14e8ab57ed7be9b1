package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/application/consulta"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/application/diagnostico"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/infrastructure/postgres"
	httpRouter "github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/interfaces/http"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/pkg/config"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	clienteRepo := postgres.NewClienteRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	movimentoRepo := postgres.NewMovimentoRepository(pool)
	vendaRepo := postgres.NewVendaRepository(pool)
	diagnosticoRepo := postgres.NewDiagnosticoRepository(pool)

	consultaUC := consulta.NewUseCase(clienteRepo, pedidoRepo, movimentoRepo, vendaRepo)
	diagnosticoUC := diagnostico.NewUseCase(diagnosticoRepo, cfg.Consulta.LimiteSimilares, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.NewErrorHandler(cfg.App.Producao(), log),
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ConsultaUC:    consultaUC,
		DiagnosticoUC: diagnosticoUC,
		Timeout:       cfg.Consulta.Timeout(),
		Log:           log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}

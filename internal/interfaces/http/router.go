package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/application/consulta"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/application/diagnostico"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/pkg/logger"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ConsultaUC    *consulta.UseCase
	DiagnosticoUC *diagnostico.UseCase
	Timeout       time.Duration
	Log           *logger.Logger
}

// Router registra as rotas da API. Todas as rotas de consulta rodam sob o
// prazo por requisição.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", Deadline(deps.Timeout))

	consultas := api.Group("/consulta")
	consultaHandler := NewConsultaHandler(deps.ConsultaUC, deps.Log)
	consultas.Get("/cliente", consultaHandler.ResolverCliente)
	consultas.Get("/financeiro", consultaHandler.HistoricoFinanceiro)
	consultas.Get("/produtos", consultaHandler.HistoricoProdutos)
	consultas.Get("/pedidos", consultaHandler.ListarPedidos)

	diag := api.Group("/diagnostico")
	diagnosticoHandler := NewDiagnosticoHandler(deps.DiagnosticoUC)
	diag.Get("/pedido", diagnosticoHandler.DiagnosticarPedido)
}

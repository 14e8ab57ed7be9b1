package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/application/consulta"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/application/dto"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/repository"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/pkg/logger"
)

// ConsultaHandler trata as rotas de consulta por identificador.
type ConsultaHandler struct {
	uc  *consulta.UseCase
	log *logger.Logger
}

// NewConsultaHandler constrói o handler.
func NewConsultaHandler(uc *consulta.UseCase, log *logger.Logger) *ConsultaHandler {
	return &ConsultaHandler{uc: uc, log: log}
}

// ResolverCliente GET /api/consulta/cliente?identificador=
func (h *ConsultaHandler) ResolverCliente(c *fiber.Ctx) error {
	identificador, err := identificadorObrigatorio(c)
	if err != nil {
		return respostaParametroAusente(c)
	}
	resp, err := h.uc.ResolverCliente(c.UserContext(), identificador)
	if err != nil {
		return h.respostaErroBanco(c, err)
	}
	return c.JSON(resp)
}

// HistoricoFinanceiro GET /api/consulta/financeiro?identificador=
func (h *ConsultaHandler) HistoricoFinanceiro(c *fiber.Ctx) error {
	identificador, err := identificadorObrigatorio(c)
	if err != nil {
		return respostaParametroAusente(c)
	}
	resp, err := h.uc.HistoricoFinanceiro(c.UserContext(), identificador)
	if err != nil {
		return h.respostaErroBanco(c, err)
	}
	return c.JSON(resp)
}

// HistoricoProdutos GET /api/consulta/produtos?identificador=
func (h *ConsultaHandler) HistoricoProdutos(c *fiber.Ctx) error {
	identificador, err := identificadorObrigatorio(c)
	if err != nil {
		return respostaParametroAusente(c)
	}
	resp, err := h.uc.HistoricoProdutos(c.UserContext(), identificador)
	if err != nil {
		return h.respostaErroBanco(c, err)
	}
	return c.JSON(resp)
}

// ListarPedidos GET /api/consulta/pedidos?cliente=&data=&ordenar_por=
// Todos os filtros são opcionais; data no formato aaaa-mm-dd.
func (h *ConsultaHandler) ListarPedidos(c *fiber.Ctx) error {
	filtro := repository.PedidoFiltro{
		NomeCliente: strings.TrimSpace(c.Query("cliente")),
		OrdenarPor:  strings.TrimSpace(c.Query("ordenar_por")),
	}
	if data := strings.TrimSpace(c.Query("data")); data != "" {
		t, err := time.Parse("2006-01-02", data)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{
				Erro: "data inválida, use o formato aaaa-mm-dd",
			})
		}
		filtro.DataEmissao = &t
	}

	resp, err := h.uc.ListarPedidos(c.UserContext(), filtro)
	if err != nil {
		if errors.Is(err, domain.ErrColunaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{Erro: err.Error()})
		}
		return h.respostaErroBanco(c, err)
	}
	return c.JSON(resp)
}

// identificadorObrigatorio valida o parâmetro antes de qualquer acesso ao
// banco; entrada vazia ou só espaços é rejeitada aqui.
func identificadorObrigatorio(c *fiber.Ctx) (string, error) {
	identificador := strings.TrimSpace(c.Query("identificador"))
	if identificador == "" {
		return "", domain.ErrParametroObrigatorio
	}
	return identificador, nil
}

func respostaParametroAusente(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{
		Erro: "o parâmetro identificador é obrigatório",
	})
}

// respostaErroBanco falha de banco: registrada e convertida no envelope
// uniforme, sem retry e sem mascarar como resultado vazio.
func (h *ConsultaHandler) respostaErroBanco(c *fiber.Ctx, err error) error {
	h.log.Error().Err(err).Str("path", c.Path()).Msg("falha de consulta ao banco")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErroResponse{
		Erro:     domain.ErrBancoIndisponivel.Error(),
		Detalhes: err.Error(),
	})
}

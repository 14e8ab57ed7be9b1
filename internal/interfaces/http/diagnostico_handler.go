package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/application/diagnostico"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/application/dto"
)

// DiagnosticoHandler trata a rota de diagnóstico de pedido.
type DiagnosticoHandler struct {
	uc *diagnostico.UseCase
}

// NewDiagnosticoHandler constrói o handler.
func NewDiagnosticoHandler(uc *diagnostico.UseCase) *DiagnosticoHandler {
	return &DiagnosticoHandler{uc: uc}
}

// DiagnosticarPedido GET /api/diagnostico/pedido?pedido=
// O caso de uso nunca devolve erro: falha de banco já sai normalizada no
// próprio corpo do diagnóstico, então a resposta aqui é sempre 200.
func (h *DiagnosticoHandler) DiagnosticarPedido(c *fiber.Ctx) error {
	referencia := strings.TrimSpace(c.Query("pedido"))
	if referencia == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{
			Erro: "o parâmetro pedido é obrigatório",
		})
	}
	return c.JSON(h.uc.DiagnosticarPedido(c.UserContext(), referencia))
}

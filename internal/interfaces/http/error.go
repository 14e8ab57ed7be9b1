package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/application/dto"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/pkg/logger"
)

// NewErrorHandler tratador global de erros do Fiber. Falhas não tratadas
// viram um envelope uniforme; detalhes internos só saem fora de produção.
func NewErrorHandler(producao bool, log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		log.Error().Err(err).Int("status", code).Str("path", c.Path()).Msg("erro não tratado")

		resp := dto.ErroResponse{Erro: "erro interno ao processar a requisição"}
		if !producao {
			resp.Detalhes = err.Error()
		}
		return c.Status(code).JSON(resp)
	}
}

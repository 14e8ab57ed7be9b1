package repository

import (
	"context"

	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/entity"
)

// MovimentoRepository consultas de leitura sobre movimentos financeiros.
type MovimentoRepository interface {
	BuscarPorCNPJ(ctx context.Context, digitos string) ([]*entity.MovimentoFinanceiro, error)
	BuscarPorTexto(ctx context.Context, texto string) ([]*entity.MovimentoFinanceiro, error)
}

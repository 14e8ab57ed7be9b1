package repository

import (
	"context"

	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/entity"
)

// VendaRepository linhas de venda cruzadas com o pedido de origem,
// filtradas pelo cliente resolvido (CNPJ canônico ou texto parcial).
type VendaRepository interface {
	HistoricoPorCNPJ(ctx context.Context, digitos string) ([]entity.VendaProduto, error)
	HistoricoPorTexto(ctx context.Context, texto string) ([]entity.VendaProduto, error)
}

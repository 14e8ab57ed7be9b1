package repository

import (
	"context"

	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/entity"
)

// ClienteRepository consultas de leitura sobre o cadastro de clientes.
type ClienteRepository interface {
	// BuscarPorCNPJ compara os 14 dígitos canônicos contra a coluna cnpj
	// normalizada no banco (os dois lados sem pontuação).
	BuscarPorCNPJ(ctx context.Context, digitos string) ([]*entity.Cliente, error)
	// BuscarPorTexto busca parcial (case-insensitive) em razão social,
	// nome fantasia e CNPJ.
	BuscarPorTexto(ctx context.Context, texto string) ([]*entity.Cliente, error)
}

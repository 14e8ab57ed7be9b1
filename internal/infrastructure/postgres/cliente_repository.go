package postgres

import (
	"context"
	"fmt"

	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/entity"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

const colunasCliente = `id, razao_social, nome_fantasia, cnpj, endereco, cidade, uf, telefone, email, data_cadastro`

// ClienteRepo implementação de ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository constrói o adaptador. Aceita pool ou conexão (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// BuscarPorCNPJ igualdade exata sobre o CNPJ canônico (os dois lados sem
// pontuação). Pode devolver mais de uma linha: cadastros duplicados existem
// e a escolha fica com o chamador.
func (r *ClienteRepo) BuscarPorCNPJ(ctx context.Context, digitos string) ([]*entity.Cliente, error) {
	query := `
		SELECT ` + colunasCliente + `
		FROM clientes
		WHERE ` + exprCNPJCanonico("cnpj") + ` = $1
		ORDER BY razao_social`
	return r.buscar(ctx, query, digitos)
}

// BuscarPorTexto busca parcial case-insensitive em razão social, nome
// fantasia e CNPJ.
func (r *ClienteRepo) BuscarPorTexto(ctx context.Context, texto string) ([]*entity.Cliente, error) {
	query := `
		SELECT ` + colunasCliente + `
		FROM clientes
		WHERE razao_social ILIKE $1 OR nome_fantasia ILIKE $1 OR cnpj ILIKE $1
		ORDER BY razao_social`
	return r.buscar(ctx, query, padraoParcial(texto))
}

func (r *ClienteRepo) buscar(ctx context.Context, query string, arg any) ([]*entity.Cliente, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("buscar clientes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(
			&c.ID, &c.RazaoSocial, &c.NomeFantasia, &c.CNPJ,
			&c.Endereco, &c.Cidade, &c.UF, &c.Telefone, &c.Email, &c.DataCadastro,
		); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

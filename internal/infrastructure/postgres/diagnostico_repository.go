package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/entity"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/repository"
)

var _ repository.DiagnosticoRepository = (*DiagnosticoRepo)(nil)

// chavesPedido estratégias de chave tentadas em ordem na busca do pedido.
// O mesmo pedido pode estar exposto pela forma compacta ("1001") ou pela
// prefixada ("PED001"); a primeira estratégia que acertar vence.
var chavesPedido = []struct {
	Nome   string
	Coluna string
}{
	{"numero_pedido", "numero_pedido"},
	{"referencia", "referencia"},
}

// DiagnosticoRepo coleta os dados do diagnóstico sobre uma única conexão
// do pool, adquirida no início e liberada em qualquer saída. As três
// consultas são estritamente sequenciais: itens e similares dependem do
// resultado da busca do pedido.
type DiagnosticoRepo struct {
	pool *pgxpool.Pool
}

// NewDiagnosticoRepository constrói o adaptador sobre o pool.
func NewDiagnosticoRepository(pool *pgxpool.Pool) *DiagnosticoRepo {
	return &DiagnosticoRepo{pool: pool}
}

// Coletar executa a sequência completa do diagnóstico.
func (r *DiagnosticoRepo) Coletar(ctx context.Context, referencia string, limiteSimilares int) (*repository.DiagnosticoDados, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("adquirir conexao: %w", err)
	}
	defer conn.Release()

	return coletarDiagnostico(ctx, conn, referencia, limiteSimilares)
}

// coletarDiagnostico roda a sequência sobre qualquer Querier (separado de
// Coletar para os testes exercitarem a lógica sem um pool real).
func coletarDiagnostico(ctx context.Context, q Querier, referencia string, limiteSimilares int) (*repository.DiagnosticoDados, error) {
	dados := &repository.DiagnosticoDados{}

	pedido, chave, err := buscarPedidoPorChaves(ctx, q, referencia)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		// Não encontrado é terminal: coleções vazias, nada mais é consultado.
		return dados, nil
	}
	dados.Pedido = pedido
	dados.ChaveUsada = chave

	itens, err := listarItens(ctx, q, pedido)
	if err != nil {
		return nil, err
	}
	dados.Itens = itens

	// A busca de similares roda mesmo com o pedido encontrado: chaves
	// duplicadas ou quase idênticas são comuns e o pedido localizado pode não
	// ser o que o usuário procurava.
	similares, err := buscarSimilares(ctx, q, referencia, limiteSimilares)
	if err != nil {
		return nil, err
	}
	dados.Similares = similares

	return dados, nil
}

// buscarPedidoPorChaves tenta cada estratégia de chave em ordem; a primeira
// linha encontrada encerra a busca.
func buscarPedidoPorChaves(ctx context.Context, q Querier, referencia string) (*entity.Pedido, string, error) {
	for _, chave := range chavesPedido {
		query := `
			SELECT ` + colunasPedido + `
			FROM pedidos
			WHERE ` + chave.Coluna + ` = $1
			ORDER BY data_emissao DESC
			LIMIT 1`
		pedido, err := scanPedido(q.QueryRow(ctx, query, referencia))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			return nil, "", fmt.Errorf("buscar pedido por %s: %w", chave.Nome, err)
		}
		return pedido, chave.Nome, nil
	}
	return nil, "", nil
}

// listarItens itens do pedido na ordem da sequência de linha. Os itens podem
// estar gravados sob qualquer uma das duas chaves do pedido (mesma situação
// do join de vendas e da busca de similares), então a consulta aceita as duas.
func listarItens(ctx context.Context, q Querier, pedido *entity.Pedido) ([]entity.ItemPedido, error) {
	query := `
		SELECT numero_pedido, seq, codigo_produto, descricao_produto, quantidade, valor_unitario, valor_total
		FROM itens_pedido
		WHERE numero_pedido = $1 OR numero_pedido = $2
		ORDER BY seq`
	rows, err := q.Query(ctx, query, pedido.NumeroPedido, pedido.Referencia)
	if err != nil {
		return nil, fmt.Errorf("listar itens: %w", err)
	}
	defer rows.Close()

	var itens []entity.ItemPedido
	for rows.Next() {
		var it entity.ItemPedido
		if err := rows.Scan(
			&it.NumeroPedido, &it.Seq, &it.CodigoProduto, &it.DescricaoProduto,
			&it.Quantidade, &it.ValorUnitario, &it.ValorTotal,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		itens = append(itens, it)
	}
	return itens, rows.Err()
}

// buscarSimilares pedidos cuja chave contém a referência informada como
// substring, com contagem de itens. Só entram candidatos com pelo menos um
// item, até o limite configurado.
func buscarSimilares(ctx context.Context, q Querier, referencia string, limite int) ([]repository.PedidoSimilar, error) {
	query := `
		SELECT p.numero_pedido, p.referencia, p.nome_cliente, p.valor_total, p.data_emissao, COUNT(i.seq) AS total_itens
		FROM pedidos p
		JOIN itens_pedido i
		  ON i.numero_pedido = p.numero_pedido OR i.numero_pedido = p.referencia
		WHERE p.numero_pedido ILIKE $1 OR p.referencia ILIKE $1
		GROUP BY p.numero_pedido, p.referencia, p.nome_cliente, p.valor_total, p.data_emissao
		HAVING COUNT(i.seq) >= 1
		ORDER BY p.data_emissao DESC
		LIMIT $2`
	rows, err := q.Query(ctx, query, padraoParcial(referencia), limite)
	if err != nil {
		return nil, fmt.Errorf("buscar similares: %w", err)
	}
	defer rows.Close()

	var similares []repository.PedidoSimilar
	for rows.Next() {
		var s repository.PedidoSimilar
		if err := rows.Scan(
			&s.NumeroPedido, &s.Referencia, &s.NomeCliente, &s.ValorTotal, &s.DataEmissao, &s.TotalItens,
		); err != nil {
			return nil, fmt.Errorf("scan similar: %w", err)
		}
		similares = append(similares, s)
	}
	return similares, rows.Err()
}

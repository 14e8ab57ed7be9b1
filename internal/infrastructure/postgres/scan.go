package postgres

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/entity"
)

// scanPedido lê uma linha de pedido na ordem de colunasPedido.
func scanPedido(row pgx.Row) (*entity.Pedido, error) {
	var p entity.Pedido
	err := row.Scan(
		&p.NumeroPedido, &p.Referencia, &p.NomeCliente, &p.CNPJCliente,
		&p.ValorTotal, &p.QtdItens, &p.Status, &p.Faturado, &p.NotaCancelada,
		&p.DataEmissao, &p.DataFaturamento, &p.DataCancelamento, &p.MotivoCancelamento,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// scanPedidos consome todas as linhas de um resultado de pedidos.
func scanPedidos(rows pgx.Rows) ([]*entity.Pedido, error) {
	var list []*entity.Pedido
	for rows.Next() {
		p, err := scanPedido(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

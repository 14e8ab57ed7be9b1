package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Teste interno: exercita a sequência de coleta sobre um Querier mockado,
// sem pool real (Coletar só acrescenta o acquire/release por cima).

var colunasPedidoMock = []string{
	"numero_pedido", "referencia", "nome_cliente", "cnpj_cliente", "valor_total",
	"qtd_itens", "status", "faturado", "nota_cancelada", "data_emissao",
	"data_faturamento", "data_cancelamento", "motivo_cancelamento",
}

var colunasItemMock = []string{
	"numero_pedido", "seq", "codigo_produto", "descricao_produto", "quantidade",
	"valor_unitario", "valor_total",
}

var colunasSimilarMock = []string{
	"numero_pedido", "referencia", "nome_cliente", "valor_total", "data_emissao", "total_itens",
}

func linhaPedidoMock(numero, referencia string) []any {
	return []any{
		numero, referencia, "Comercial Silva LTDA", "12345678000190",
		decimal.NewNullDecimal(decimal.NewFromFloat(100)), 1, "EM_ANDAMENTO",
		false, false, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		(*time.Time)(nil), (*time.Time)(nil), "",
	}
}

// A primeira estratégia de chave que acertar vence: quando numero_pedido não
// encontra, a busca cai para a coluna referencia.
func TestColetarDiagnostico_SegundaChaveVence(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(context.Background())

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE numero_pedido = $1`)).
		WithArgs("PED001").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE referencia = $1`)).
		WithArgs("PED001").
		WillReturnRows(pgxmock.NewRows(colunasPedidoMock).AddRow(linhaPedidoMock("1001", "PED001")...))
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE numero_pedido = $1 OR numero_pedido = $2`)).
		WithArgs("1001", "PED001").
		WillReturnRows(pgxmock.NewRows(colunasItemMock).
			AddRow("1001", 1, "P01", "Parafuso", decimal.NewFromInt(10),
				decimal.NewNullDecimal(decimal.NewFromFloat(1.5)),
				decimal.NewNullDecimal(decimal.NewFromInt(15))))
	mock.ExpectQuery(regexp.QuoteMeta(`p.numero_pedido ILIKE $1 OR p.referencia ILIKE $1`)).
		WithArgs("%PED001%", 5).
		WillReturnRows(pgxmock.NewRows(colunasSimilarMock))

	dados, err := coletarDiagnostico(context.Background(), mock, "PED001", 5)

	require.NoError(t, err)
	require.NotNil(t, dados.Pedido)
	assert.Equal(t, "1001", dados.Pedido.NumeroPedido)
	assert.Equal(t, "referencia", dados.ChaveUsada)
	assert.Len(t, dados.Itens, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Quando a primeira chave acerta, a segunda nem é consultada.
func TestColetarDiagnostico_PrimeiraChaveCurtoCircuito(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(context.Background())

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE numero_pedido = $1`)).
		WithArgs("1001").
		WillReturnRows(pgxmock.NewRows(colunasPedidoMock).AddRow(linhaPedidoMock("1001", "PED001")...))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM itens_pedido`)).
		WithArgs("1001", "PED001").
		WillReturnRows(pgxmock.NewRows(colunasItemMock))
	mock.ExpectQuery(regexp.QuoteMeta(`p.numero_pedido ILIKE $1 OR p.referencia ILIKE $1`)).
		WithArgs("%1001%", 5).
		WillReturnRows(pgxmock.NewRows(colunasSimilarMock).
			AddRow("1001", "PED001", "Comercial Silva LTDA",
				decimal.NewNullDecimal(decimal.NewFromFloat(100)),
				time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), 3))

	dados, err := coletarDiagnostico(context.Background(), mock, "1001", 5)

	require.NoError(t, err)
	assert.Equal(t, "numero_pedido", dados.ChaveUsada)
	assert.Empty(t, dados.Itens)
	require.Len(t, dados.Similares, 1)
	assert.Equal(t, 3, dados.Similares[0].TotalItens)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Pedido inexistente é terminal: nenhuma chave acerta e a coleta encerra ali,
// sem consultar itens nem similares.
func TestColetarDiagnostico_NaoEncontradoEncerraColeta(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(context.Background())

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE numero_pedido = $1`)).
		WithArgs("PED999").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE referencia = $1`)).
		WithArgs("PED999").
		WillReturnError(pgx.ErrNoRows)

	dados, err := coletarDiagnostico(context.Background(), mock, "PED999", 5)

	require.NoError(t, err)
	assert.Nil(t, dados.Pedido)
	assert.Empty(t, dados.ChaveUsada)
	assert.Empty(t, dados.Itens)
	assert.Empty(t, dados.Similares)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Itens gravados sob a chave prefixada do pedido continuam visíveis quando a
// resolução aconteceu pela referencia: a consulta de itens aceita as duas
// chaves, como o join de vendas e a busca de similares.
func TestColetarDiagnostico_ItensSobAChavePrefixada(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(context.Background())

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE numero_pedido = $1`)).
		WithArgs("PED001").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE referencia = $1`)).
		WithArgs("PED001").
		WillReturnRows(pgxmock.NewRows(colunasPedidoMock).AddRow(linhaPedidoMock("1001", "PED001")...))
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE numero_pedido = $1 OR numero_pedido = $2`)).
		WithArgs("1001", "PED001").
		WillReturnRows(pgxmock.NewRows(colunasItemMock).
			AddRow("PED001", 1, "P01", "Parafuso", decimal.NewFromInt(10),
				decimal.NewNullDecimal(decimal.NewFromFloat(1.5)),
				decimal.NewNullDecimal(decimal.NewFromInt(15))).
			AddRow("PED001", 2, "P02", "Porca", decimal.NewFromInt(5),
				decimal.NewNullDecimal(decimal.NewFromFloat(0.8)),
				decimal.NewNullDecimal(decimal.NewFromInt(4))))
	mock.ExpectQuery(regexp.QuoteMeta(`p.numero_pedido ILIKE $1 OR p.referencia ILIKE $1`)).
		WithArgs("%PED001%", 5).
		WillReturnRows(pgxmock.NewRows(colunasSimilarMock).
			AddRow("1001", "PED001", "Comercial Silva LTDA",
				decimal.NewNullDecimal(decimal.NewFromFloat(100)),
				time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), 2))

	dados, err := coletarDiagnostico(context.Background(), mock, "PED001", 5)

	require.NoError(t, err)
	assert.Equal(t, "referencia", dados.ChaveUsada)
	require.Len(t, dados.Itens, 2)
	require.Len(t, dados.Similares, 1)
	assert.Equal(t, len(dados.Itens), dados.Similares[0].TotalItens,
		"itens e contagem de similares do mesmo pedido não podem divergir")
	assert.NoError(t, mock.ExpectationsWereMet())
}

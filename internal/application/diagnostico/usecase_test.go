package diagnostico_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/application/diagnostico"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/entity"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/repository"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake do repositório de diagnóstico
// ──────────────────────────────────────────────────────────────────────────────

type repoFake struct {
	dados  *repository.DiagnosticoDados
	err    error
	limite int // limite recebido na última chamada
}

func (f *repoFake) Coletar(_ context.Context, _ string, limite int) (*repository.DiagnosticoDados, error) {
	f.limite = limite
	if f.err != nil {
		return nil, f.err
	}
	return f.dados, nil
}

func novoUC(f *repoFake) *diagnostico.UseCase {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return diagnostico.NewUseCase(f, 5, log)
}

func pedidoBase() *entity.Pedido {
	return &entity.Pedido{
		NumeroPedido: "1001",
		Referencia:   "PED001",
		NomeCliente:  "Comercial Silva LTDA",
		CNPJCliente:  "12.345.678/0001-90",
		ValorTotal:   decimal.NewNullDecimal(decimal.NewFromFloat(1234.56)),
		Status:       entity.StatusEmAndamento,
		DataEmissao:  time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC),
	}
}

func itemBase(seq int) entity.ItemPedido {
	return entity.ItemPedido{
		NumeroPedido:     "1001",
		Seq:              seq,
		CodigoProduto:    "P01",
		DescricaoProduto: "Parafuso",
		Quantidade:       decimal.NewFromInt(10),
		ValorUnitario:    decimal.NewNullDecimal(decimal.NewFromFloat(1.50)),
		ValorTotal:       decimal.NewNullDecimal(decimal.NewFromFloat(15)),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedido não encontrado
// ──────────────────────────────────────────────────────────────────────────────

func TestDiagnosticar_NaoEncontrado(t *testing.T) {
	uc := novoUC(&repoFake{dados: &repository.DiagnosticoDados{}})

	resp := uc.DiagnosticarPedido(context.Background(), "PED999")

	assert.False(t, resp.Pedido.Encontrado)
	assert.Equal(t, 0, resp.Itens.Total)
	assert.False(t, resp.Itens.TemItens)
	assert.Empty(t, resp.Itens.Dados)
	assert.Empty(t, resp.PedidosSimilares)
	require.Len(t, resp.Sugestoes, 1, "não encontrado deve ter exatamente uma sugestão")
	assert.Equal(t, diagnostico.SugestaoNaoEncontrado, resp.Sugestoes[0])
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedido encontrado
// ──────────────────────────────────────────────────────────────────────────────

func TestDiagnosticar_EncontradoComItens(t *testing.T) {
	f := &repoFake{dados: &repository.DiagnosticoDados{
		Pedido:     pedidoBase(),
		ChaveUsada: "numero_pedido",
		Itens:      []entity.ItemPedido{itemBase(1), itemBase(2)},
	}}
	uc := novoUC(f)

	resp := uc.DiagnosticarPedido(context.Background(), "1001")

	assert.True(t, resp.Pedido.Encontrado)
	require.NotNil(t, resp.Pedido.ChaveLocalizada)
	assert.Equal(t, "numero_pedido", *resp.Pedido.ChaveLocalizada)
	require.NotNil(t, resp.Pedido.ValorTotal)
	assert.Equal(t, "1.234,56", *resp.Pedido.ValorTotal, "valor formatado pt-BR")
	require.NotNil(t, resp.Pedido.DataEmissao)
	assert.Equal(t, "02/01/2026", *resp.Pedido.DataEmissao)
	assert.Equal(t, 2, resp.Itens.Total)
	assert.True(t, resp.Itens.TemItens)
	assert.Empty(t, resp.Sugestoes, "pedido normal com itens não gera sugestão")
	assert.Equal(t, 5, f.limite, "limite de similares configurado deve chegar ao repositório")
}

func TestDiagnosticar_EncontradoSemItens(t *testing.T) {
	uc := novoUC(&repoFake{dados: &repository.DiagnosticoDados{
		Pedido:     pedidoBase(),
		ChaveUsada: "referencia",
	}})

	resp := uc.DiagnosticarPedido(context.Background(), "PED001")

	assert.True(t, resp.Pedido.Encontrado)
	assert.False(t, resp.Itens.TemItens)
	assert.Contains(t, resp.Sugestoes, diagnostico.SugestaoSemItens)
}

func TestDiagnosticar_FaturadoENotaCancelada(t *testing.T) {
	p := pedidoBase()
	p.Faturado = true
	p.NotaCancelada = true
	uc := novoUC(&repoFake{dados: &repository.DiagnosticoDados{
		Pedido: p,
		Itens:  []entity.ItemPedido{itemBase(1)},
	}})

	resp := uc.DiagnosticarPedido(context.Background(), "1001")

	assert.True(t, resp.Pedido.Faturado)
	assert.True(t, resp.Pedido.NotaCancelada)
	require.Len(t, resp.Sugestoes, 2)
	assert.Equal(t, diagnostico.SugestaoFaturado, resp.Sugestoes[0])
	assert.Equal(t, diagnostico.SugestaoNotaCancelada, resp.Sugestoes[1])
}

func TestDiagnosticar_CanceladoComDataEMotivo(t *testing.T) {
	p := pedidoBase()
	cancelamento := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	p.DataCancelamento = &cancelamento
	p.MotivoCancelamento = "cliente desistiu"
	uc := novoUC(&repoFake{dados: &repository.DiagnosticoDados{
		Pedido: p,
		Itens:  []entity.ItemPedido{itemBase(1)},
	}})

	resp := uc.DiagnosticarPedido(context.Background(), "1001")

	assert.True(t, resp.Pedido.PedidoCancelado,
		"data de cancelamento presente marca o pedido como cancelado mesmo sem status")
	require.Len(t, resp.Sugestoes, 1)
	assert.Contains(t, resp.Sugestoes[0], "10/02/2026")
	assert.Contains(t, resp.Sugestoes[0], "cliente desistiu")
}

func TestDiagnosticar_CanceladoPorStatusSemData(t *testing.T) {
	p := pedidoBase()
	p.Status = entity.StatusCancelado
	uc := novoUC(&repoFake{dados: &repository.DiagnosticoDados{
		Pedido: p,
		Itens:  []entity.ItemPedido{itemBase(1)},
	}})

	resp := uc.DiagnosticarPedido(context.Background(), "1001")

	assert.True(t, resp.Pedido.PedidoCancelado)
	require.Len(t, resp.Sugestoes, 1)
	assert.Equal(t, diagnostico.SugestaoCancelado, resp.Sugestoes[0])
}

func TestDiagnosticar_SimilaresGeramSugestao(t *testing.T) {
	uc := novoUC(&repoFake{dados: &repository.DiagnosticoDados{
		Pedido: pedidoBase(),
		Itens:  []entity.ItemPedido{itemBase(1)},
		Similares: []repository.PedidoSimilar{
			{NumeroPedido: "1002", Referencia: "PED002", TotalItens: 3},
		},
	}})

	resp := uc.DiagnosticarPedido(context.Background(), "1001")

	require.Len(t, resp.PedidosSimilares, 1)
	assert.Equal(t, "1002", resp.PedidosSimilares[0].NumeroPedido)
	assert.Contains(t, resp.Sugestoes, diagnostico.SugestaoSimilares)
}

// Ordem completa das sugestões quando todas as condições valem ao mesmo tempo.
func TestDiagnosticar_OrdemDasSugestoes(t *testing.T) {
	p := pedidoBase()
	p.Faturado = true
	p.NotaCancelada = true
	p.Status = entity.StatusCancelado
	uc := novoUC(&repoFake{dados: &repository.DiagnosticoDados{
		Pedido: p,
		Similares: []repository.PedidoSimilar{
			{NumeroPedido: "1002"},
		},
	}})

	resp := uc.DiagnosticarPedido(context.Background(), "1001")

	require.Len(t, resp.Sugestoes, 5)
	assert.Equal(t, diagnostico.SugestaoSemItens, resp.Sugestoes[0])
	assert.Equal(t, diagnostico.SugestaoFaturado, resp.Sugestoes[1])
	assert.Equal(t, diagnostico.SugestaoNotaCancelada, resp.Sugestoes[2])
	assert.Equal(t, diagnostico.SugestaoCancelado, resp.Sugestoes[3])
	assert.Equal(t, diagnostico.SugestaoSimilares, resp.Sugestoes[4])
}

// ──────────────────────────────────────────────────────────────────────────────
// Falha de banco: mesma forma de "não encontrado", sugestão genérica
// ──────────────────────────────────────────────────────────────────────────────

func TestDiagnosticar_FalhaDeBancoNormalizada(t *testing.T) {
	uc := novoUC(&repoFake{err: errors.New("connection refused")})

	resp := uc.DiagnosticarPedido(context.Background(), "1001")

	assert.False(t, resp.Pedido.Encontrado)
	assert.Equal(t, 0, resp.Itens.Total)
	assert.Empty(t, resp.PedidosSimilares)
	require.Len(t, resp.Sugestoes, 1)
	assert.Equal(t, diagnostico.SugestaoIndisponivel, resp.Sugestoes[0])
}

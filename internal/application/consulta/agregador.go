package consulta

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/entity"
)

// Totais resultado da agregação financeira. Saldo = TotalEntradas - TotalSaidas.
type Totais struct {
	TotalEntradas decimal.Decimal
	TotalSaidas   decimal.Decimal
	Saldo         decimal.Decimal
}

// SomarMovimentos soma os movimentos por direção. Fold puro, sem efeitos:
// valores nulos contam como zero; tipos desconhecidos são ignorados.
func SomarMovimentos(movs []*entity.MovimentoFinanceiro) Totais {
	entradas := decimal.Zero
	saidas := decimal.Zero
	for _, m := range movs {
		valor := decimal.Zero
		if m.Valor.Valid {
			valor = m.Valor.Decimal
		}
		switch m.Tipo {
		case entity.MovimentoEntrada:
			entradas = entradas.Add(valor)
		case entity.MovimentoSaida:
			saidas = saidas.Add(valor)
		}
	}
	return Totais{
		TotalEntradas: entradas,
		TotalSaidas:   saidas,
		Saldo:         entradas.Sub(saidas),
	}
}

// HistoricoProduto agregado por produto do histórico de compras.
type HistoricoProduto struct {
	CodigoProduto    string
	DescricaoProduto string
	TotalPedidos     int
	QuantidadeTotal  decimal.Decimal
	PrimeiraCompra   time.Time
	UltimaCompra     time.Time
}

// AgruparHistoricoProdutos agrupa as linhas de venda por par exato
// (código, descrição): pedidos distintos, quantidade somada e primeira/última
// compra. Descrições quase iguais NÃO são fundidas. O resultado sai ordenado
// por número de pedidos decrescente; o agrupamento independe da ordem de
// entrada.
func AgruparHistoricoProdutos(vendas []entity.VendaProduto) []HistoricoProduto {
	type chave struct {
		codigo    string
		descricao string
	}
	type acumulador struct {
		pedidos map[string]struct{}
		qtd     decimal.Decimal
		min     time.Time
		max     time.Time
	}

	grupos := make(map[chave]*acumulador)
	for _, v := range vendas {
		k := chave{codigo: v.CodigoProduto, descricao: v.DescricaoProduto}
		g, ok := grupos[k]
		if !ok {
			g = &acumulador{
				pedidos: make(map[string]struct{}),
				qtd:     decimal.Zero,
				min:     v.DataEmissao,
				max:     v.DataEmissao,
			}
			grupos[k] = g
		}
		g.pedidos[v.NumeroPedido] = struct{}{}
		g.qtd = g.qtd.Add(v.Quantidade)
		if v.DataEmissao.Before(g.min) {
			g.min = v.DataEmissao
		}
		if v.DataEmissao.After(g.max) {
			g.max = v.DataEmissao
		}
	}

	out := make([]HistoricoProduto, 0, len(grupos))
	for k, g := range grupos {
		out = append(out, HistoricoProduto{
			CodigoProduto:    k.codigo,
			DescricaoProduto: k.descricao,
			TotalPedidos:     len(g.pedidos),
			QuantidadeTotal:  g.qtd,
			PrimeiraCompra:   g.min,
			UltimaCompra:     g.max,
		})
	}

	// Desempate por código e descrição para saída determinística.
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPedidos != out[j].TotalPedidos {
			return out[i].TotalPedidos > out[j].TotalPedidos
		}
		if out[i].CodigoProduto != out[j].CodigoProduto {
			return out[i].CodigoProduto < out[j].CodigoProduto
		}
		return out[i].DescricaoProduto < out[j].DescricaoProduto
	})
	return out
}

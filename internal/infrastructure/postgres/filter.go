package postgres

import (
	"fmt"
	"strings"

	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/repository"
)

// colunasOrdenacaoPedidos allow-list de colunas aceitas em OrdenarPor.
// Qualquer valor fora da lista é rejeitado — nomes de coluna nunca são
// montados a partir da entrada do chamador.
var colunasOrdenacaoPedidos = map[string]string{
	"data_emissao":  "data_emissao",
	"valor_total":   "valor_total",
	"numero_pedido": "numero_pedido",
}

// compilarFiltroPedidos compila a especificação tipada de filtros em uma
// cláusula WHERE parametrizada. Predicados ausentes não entram na cláusula;
// todos os valores viram parâmetros bind ($1, $2, ...).
func compilarFiltroPedidos(f repository.PedidoFiltro) (where string, orderBy string, args []any, err error) {
	var condicoes []string

	if f.NomeCliente != "" {
		args = append(args, padraoParcial(f.NomeCliente))
		condicoes = append(condicoes, fmt.Sprintf("nome_cliente ILIKE $%d", len(args)))
	}
	if f.DataEmissao != nil {
		args = append(args, *f.DataEmissao)
		condicoes = append(condicoes, fmt.Sprintf("data_emissao::date = $%d::date", len(args)))
	}

	where = ""
	if len(condicoes) > 0 {
		where = " WHERE " + strings.Join(condicoes, " AND ")
	}

	orderBy = "data_emissao DESC"
	if f.OrdenarPor != "" {
		coluna, ok := colunasOrdenacaoPedidos[f.OrdenarPor]
		if !ok {
			return "", "", nil, fmt.Errorf("%w: %s", domain.ErrColunaInvalida, f.OrdenarPor)
		}
		orderBy = coluna + " DESC"
	}
	return where, orderBy, args, nil
}

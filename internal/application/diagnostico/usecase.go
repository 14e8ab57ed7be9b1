// Package diagnostico monta o diagnóstico de consulta de pedido: localiza o
// pedido pelas chaves candidatas, lista os itens, busca pedidos parecidos e
// compõe a lista de sugestões para o usuário.
package diagnostico

import (
	"context"
	"fmt"

	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/application/dto"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/entity"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/repository"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/pkg/format"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/pkg/logger"
)

// Sugestões exibidas ao usuário, na ordem de composição.
const (
	SugestaoNaoEncontrado = "Pedido não encontrado. Verifique o número informado."
	SugestaoSemItens      = "Nenhum item encontrado para este pedido."
	SugestaoFaturado      = "Pedido já faturado. Consulte a nota fiscal."
	SugestaoNotaCancelada = "A nota fiscal deste pedido foi cancelada."
	SugestaoCancelado     = "O pedido está cancelado."
	SugestaoSimilares     = "Existem pedidos semelhantes que podem ser o pedido procurado."
	SugestaoIndisponivel  = "Não foi possível consultar o pedido no momento. Tente novamente."
)

// UseCase diagnóstico de pedido.
type UseCase struct {
	repo            repository.DiagnosticoRepository
	limiteSimilares int
	log             *logger.Logger
}

// NewUseCase constrói o caso de uso. limiteSimilares limita a busca de
// candidatos (o valor não segue a resolução principal de propósito; ver
// configuração).
func NewUseCase(repo repository.DiagnosticoRepository, limiteSimilares int, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, limiteSimilares: limiteSimilares, log: log}
}

// DiagnosticarPedido roda o diagnóstico completo. Nunca devolve erro: falha
// de banco é registrada e normalizada para o mesmo formato de "não
// encontrado", com uma sugestão genérica — o consumidor trabalha sempre com
// um único schema.
func (uc *UseCase) DiagnosticarPedido(ctx context.Context, referencia string) *dto.DiagnosticoPedidoResponse {
	dados, err := uc.repo.Coletar(ctx, referencia, uc.limiteSimilares)
	if err != nil {
		uc.log.Error().Err(err).Str("referencia", referencia).Msg("diagnóstico de pedido falhou")
		return respostaIndisponivel()
	}

	if dados.Pedido == nil {
		resp := respostaVazia()
		resp.Sugestoes = []string{SugestaoNaoEncontrado}
		return resp
	}

	resp := &dto.DiagnosticoPedidoResponse{
		Pedido:           montarPedido(dados.Pedido, dados.ChaveUsada),
		Itens:            montarItens(dados.Itens),
		PedidosSimilares: montarSimilares(dados.Similares),
	}
	resp.Sugestoes = montarSugestoes(dados.Pedido, len(dados.Itens), len(dados.Similares))
	return resp
}

// montarSugestoes compõe as sugestões na ordem fixa: sem itens, faturado,
// nota cancelada, pedido cancelado (com data e motivo quando houver) e, por
// fim, existência de similares.
func montarSugestoes(p *entity.Pedido, totalItens, totalSimilares int) []string {
	sugestoes := []string{}
	if totalItens == 0 {
		sugestoes = append(sugestoes, SugestaoSemItens)
	}
	if p.Faturado {
		sugestoes = append(sugestoes, SugestaoFaturado)
	}
	if p.NotaCancelada {
		sugestoes = append(sugestoes, SugestaoNotaCancelada)
	}
	if p.Cancelado() {
		sugestoes = append(sugestoes, sugestaoCancelamento(p))
	}
	if totalSimilares > 0 {
		sugestoes = append(sugestoes, SugestaoSimilares)
	}
	return sugestoes
}

// sugestaoCancelamento mensagem de cancelamento com a data formatada quando
// presente, acrescida do motivo se não estiver em branco.
func sugestaoCancelamento(p *entity.Pedido) string {
	msg := SugestaoCancelado
	if data, ok := format.Data(p.DataCancelamento); ok {
		msg = fmt.Sprintf("Pedido cancelado em %s.", data)
	}
	if p.MotivoCancelamento != "" {
		msg = fmt.Sprintf("%s Motivo: %s", msg, p.MotivoCancelamento)
	}
	return msg
}

func montarPedido(p *entity.Pedido, chave string) dto.PedidoDiagnosticoDTO {
	out := dto.PedidoDiagnosticoDTO{
		Encontrado:      true,
		NumeroPedido:    &p.NumeroPedido,
		Referencia:      &p.Referencia,
		ChaveLocalizada: &chave,
		NomeCliente:     &p.NomeCliente,
		Status:          &p.Status,
		Faturado:        p.Faturado,
		NotaCancelada:   p.NotaCancelada,
		PedidoCancelado: p.Cancelado(),
	}
	if v, ok := format.Moeda(p.ValorTotal); ok {
		out.ValorTotal = &v
	}
	emissao := format.DataValor(p.DataEmissao)
	out.DataEmissao = &emissao
	if d, ok := format.Data(p.DataFaturamento); ok {
		out.DataFaturamento = &d
	}
	if d, ok := format.Data(p.DataCancelamento); ok {
		out.DataCancelamento = &d
	}
	if p.MotivoCancelamento != "" {
		out.MotivoCancelamento = &p.MotivoCancelamento
	}
	return out
}

func montarItens(itens []entity.ItemPedido) dto.ItensDiagnosticoDTO {
	dados := make([]dto.ItemDiagnosticoDTO, 0, len(itens))
	for _, it := range itens {
		item := dto.ItemDiagnosticoDTO{
			Seq:              it.Seq,
			CodigoProduto:    it.CodigoProduto,
			DescricaoProduto: it.DescricaoProduto,
			Quantidade:       it.Quantidade,
		}
		if v, ok := format.Moeda(it.ValorUnitario); ok {
			item.ValorUnitario = &v
		}
		if v, ok := format.Moeda(it.ValorTotal); ok {
			item.ValorTotal = &v
		}
		dados = append(dados, item)
	}
	return dto.ItensDiagnosticoDTO{
		Total:    len(dados),
		TemItens: len(dados) > 0,
		Dados:    dados,
	}
}

func montarSimilares(similares []repository.PedidoSimilar) []dto.PedidoSimilarDTO {
	out := make([]dto.PedidoSimilarDTO, 0, len(similares))
	for _, s := range similares {
		item := dto.PedidoSimilarDTO{
			NumeroPedido: s.NumeroPedido,
			Referencia:   s.Referencia,
			NomeCliente:  s.NomeCliente,
			TotalItens:   s.TotalItens,
		}
		if v, ok := format.Moeda(s.ValorTotal); ok {
			item.ValorTotal = &v
		}
		emissao := s.DataEmissao
		if d, ok := format.Data(&emissao); ok {
			item.DataEmissao = &d
		}
		out = append(out, item)
	}
	return out
}

// respostaVazia shape de "não encontrado": coleções vazias, flags falsas.
func respostaVazia() *dto.DiagnosticoPedidoResponse {
	return &dto.DiagnosticoPedidoResponse{
		Pedido:           dto.PedidoDiagnosticoDTO{Encontrado: false},
		Itens:            dto.ItensDiagnosticoDTO{Total: 0, TemItens: false, Dados: []dto.ItemDiagnosticoDTO{}},
		PedidosSimilares: []dto.PedidoSimilarDTO{},
		Sugestoes:        []string{},
	}
}

// respostaIndisponivel falha de banco normalizada para o shape de "não
// encontrado", com uma sugestão genérica.
func respostaIndisponivel() *dto.DiagnosticoPedidoResponse {
	resp := respostaVazia()
	resp.Sugestoes = []string{SugestaoIndisponivel}
	return resp
}

// Package consulta resolve identificadores informados pelo usuário (CNPJ ou
// texto livre) contra clientes, pedidos, movimentos financeiros e histórico
// de produtos.
package consulta

import (
	"context"
	"fmt"

	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/application/dto"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/cnpj"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/entity"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/repository"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/pkg/format"
)

// UseCase casos de uso de consulta (somente leitura).
type UseCase struct {
	clienteRepo   repository.ClienteRepository
	pedidoRepo    repository.PedidoRepository
	movimentoRepo repository.MovimentoRepository
	vendaRepo     repository.VendaRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	clienteRepo repository.ClienteRepository,
	pedidoRepo repository.PedidoRepository,
	movimentoRepo repository.MovimentoRepository,
	vendaRepo repository.VendaRepository,
) *UseCase {
	return &UseCase{
		clienteRepo:   clienteRepo,
		pedidoRepo:    pedidoRepo,
		movimentoRepo: movimentoRepo,
		vendaRepo:     vendaRepo,
	}
}

// ResolverCliente classifica o identificador e busca cliente e pedidos.
// CNPJ vai pelo caminho exato (canônico dos dois lados); qualquer outro
// texto vai pela busca parcial. A resposta traz só o primeiro cliente
// localizado, mas a lista completa de pedidos — nunca há escolha automática
// entre candidatos ambíguos.
func (uc *UseCase) ResolverCliente(ctx context.Context, identificador string) (*dto.ConsultaClienteResponse, error) {
	id := cnpj.Classificar(identificador)

	var (
		clientes []*entity.Cliente
		pedidos  []*entity.Pedido
		err      error
	)
	if id.Tipo == cnpj.TipoCNPJ {
		clientes, err = uc.clienteRepo.BuscarPorCNPJ(ctx, id.Canonico)
		if err == nil {
			pedidos, err = uc.pedidoRepo.BuscarPorCNPJ(ctx, id.Canonico)
		}
	} else {
		clientes, err = uc.clienteRepo.BuscarPorTexto(ctx, id.Canonico)
		if err == nil {
			pedidos, err = uc.pedidoRepo.BuscarPorTexto(ctx, id.Canonico)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("resolver cliente: %w", err)
	}

	resp := &dto.ConsultaClienteResponse{Pedidos: mapPedidos(pedidos)}
	if len(clientes) > 0 {
		resp.Cliente = mapCliente(clientes[0])
	}
	return resp, nil
}

// HistoricoFinanceiro movimentos do cliente com os totais agregados.
func (uc *UseCase) HistoricoFinanceiro(ctx context.Context, identificador string) (*dto.ConsultaFinanceiraResponse, error) {
	id := cnpj.Classificar(identificador)

	var (
		movs []*entity.MovimentoFinanceiro
		err  error
	)
	if id.Tipo == cnpj.TipoCNPJ {
		movs, err = uc.movimentoRepo.BuscarPorCNPJ(ctx, id.Canonico)
	} else {
		movs, err = uc.movimentoRepo.BuscarPorTexto(ctx, id.Canonico)
	}
	if err != nil {
		return nil, fmt.Errorf("historico financeiro: %w", err)
	}

	totais := SomarMovimentos(movs)
	return &dto.ConsultaFinanceiraResponse{
		Movimentos: mapMovimentos(movs),
		Totais: dto.TotaisFinanceirosDTO{
			TotalEntradas: totais.TotalEntradas,
			TotalSaidas:   totais.TotalSaidas,
			Saldo:         totais.Saldo,
		},
	}, nil
}

// HistoricoProdutos histórico de compras agrupado por produto, ordenado por
// número de pedidos decrescente.
func (uc *UseCase) HistoricoProdutos(ctx context.Context, identificador string) ([]dto.HistoricoProdutoDTO, error) {
	id := cnpj.Classificar(identificador)

	var (
		vendas []entity.VendaProduto
		err    error
	)
	if id.Tipo == cnpj.TipoCNPJ {
		vendas, err = uc.vendaRepo.HistoricoPorCNPJ(ctx, id.Canonico)
	} else {
		vendas, err = uc.vendaRepo.HistoricoPorTexto(ctx, id.Canonico)
	}
	if err != nil {
		return nil, fmt.Errorf("historico de produtos: %w", err)
	}

	grupos := AgruparHistoricoProdutos(vendas)
	out := make([]dto.HistoricoProdutoDTO, 0, len(grupos))
	for _, g := range grupos {
		out = append(out, dto.HistoricoProdutoDTO{
			CodigoProduto:    g.CodigoProduto,
			DescricaoProduto: g.DescricaoProduto,
			TotalPedidos:     g.TotalPedidos,
			QuantidadeTotal:  g.QuantidadeTotal,
			PrimeiraCompra:   format.DataValor(g.PrimeiraCompra),
			UltimaCompra:     format.DataValor(g.UltimaCompra),
		})
	}
	return out, nil
}

// ListarPedidos listagem filtrada de pedidos (filtro tipado).
func (uc *UseCase) ListarPedidos(ctx context.Context, filtro repository.PedidoFiltro) ([]dto.PedidoDTO, error) {
	pedidos, err := uc.pedidoRepo.Listar(ctx, filtro)
	if err != nil {
		return nil, err
	}
	return mapPedidos(pedidos), nil
}

func mapCliente(c *entity.Cliente) *dto.ClienteDTO {
	return &dto.ClienteDTO{
		ID:           c.ID,
		RazaoSocial:  c.RazaoSocial,
		NomeFantasia: c.NomeFantasia,
		CNPJ:         c.CNPJ,
		Endereco:     c.Endereco,
		Cidade:       c.Cidade,
		UF:           c.UF,
		Telefone:     c.Telefone,
		Email:        c.Email,
		DataCadastro: c.DataCadastro,
	}
}

func mapPedidos(pedidos []*entity.Pedido) []dto.PedidoDTO {
	out := make([]dto.PedidoDTO, 0, len(pedidos))
	for _, p := range pedidos {
		out = append(out, dto.PedidoDTO{
			NumeroPedido:     p.NumeroPedido,
			Referencia:       p.Referencia,
			NomeCliente:      p.NomeCliente,
			CNPJCliente:      p.CNPJCliente,
			ValorTotal:       p.ValorTotal,
			QtdItens:         p.QtdItens,
			Status:           p.Status,
			DataEmissao:      p.DataEmissao,
			DataFaturamento:  p.DataFaturamento,
			DataCancelamento: p.DataCancelamento,
		})
	}
	return out
}

func mapMovimentos(movs []*entity.MovimentoFinanceiro) []dto.MovimentoDTO {
	out := make([]dto.MovimentoDTO, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovimentoDTO{
			ID:             m.ID,
			NomeCliente:    m.NomeCliente,
			CNPJCliente:    m.CNPJCliente,
			Tipo:           m.Tipo,
			Valor:          m.Valor,
			DataMovimento:  m.DataMovimento,
			FormaPagamento: m.FormaPagamento,
			Status:         m.Status,
		})
	}
	return out
}

package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrParametroObrigatorio = errors.New("parâmetro obrigatório ausente")
	ErrNaoEncontrado        = errors.New("registro não encontrado")
	ErrBancoIndisponivel    = errors.New("falha ao consultar o banco de dados")
	ErrColunaInvalida       = errors.New("coluna de ordenação não permitida")
)

package dto

// ErroResponse corpo de erro HTTP. Detalhes só é preenchido fora de produção.
type ErroResponse struct {
	Erro     string `json:"error"`
	Detalhes string `json:"details,omitempty"`
}

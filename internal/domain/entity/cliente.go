package entity

import "time"

// Cliente cadastro de cliente. O CNPJ pode estar gravado com ou sem máscara;
// nenhuma unicidade é garantida pelo banco (cadastros duplicados existem).
type Cliente struct {
	ID           int64
	RazaoSocial  string
	NomeFantasia string
	CNPJ         string
	Endereco     string
	Cidade       string
	UF           string
	Telefone     string
	Email        string
	DataCadastro time.Time
}

// Package cnpj normaliza identificadores informados pelo usuário antes da
// consulta. O banco guarda CNPJs ora com pontuação ("12.345.678/0001-90"),
// ora só com dígitos ("12345678000190"); a comparação sempre acontece sobre
// a forma canônica (apenas dígitos) dos dois lados.
package cnpj

import (
	"regexp"
	"strings"
)

// Tipo classifica a entrada do usuário.
type Tipo int

const (
	// TipoTextoLivre qualquer entrada que não seja um CNPJ (busca parcial).
	TipoTextoLivre Tipo = iota
	// TipoCNPJ um CNPJ completo, com ou sem máscara (busca exata).
	TipoCNPJ
)

// Identificador resultado da classificação: o tipo detectado e a forma
// canônica usada na consulta (para CNPJ, somente os 14 dígitos).
type Identificador struct {
	Tipo     Tipo
	Canonico string
}

var (
	// 14 dígitos sem máscara: 12345678000190
	reCNPJDigitos = regexp.MustCompile(`^\d{14}$`)
	// Máscara padrão: 12.345.678/0001-90
	reCNPJMascara = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)
	reNaoDigito   = regexp.MustCompile(`\D`)
)

// Classificar decide se a entrada é um CNPJ (exato) ou texto livre (parcial).
// A entrada já deve ter sido validada como não vazia pelo chamador.
func Classificar(entrada string) Identificador {
	entrada = strings.TrimSpace(entrada)
	if reCNPJDigitos.MatchString(entrada) || reCNPJMascara.MatchString(entrada) {
		return Identificador{Tipo: TipoCNPJ, Canonico: SomenteDigitos(entrada)}
	}
	return Identificador{Tipo: TipoTextoLivre, Canonico: entrada}
}

// SomenteDigitos remove todo caractere que não seja dígito.
func SomenteDigitos(s string) string {
	return reNaoDigito.ReplaceAllString(s, "")
}

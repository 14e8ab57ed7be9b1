package postgres

// padraoParcial monta o padrão de busca parcial usado com ILIKE.
// O valor entra sempre como parâmetro bind, nunca interpolado no SQL.
func padraoParcial(texto string) string {
	return "%" + texto + "%"
}

// exprCNPJCanonico expressão que normaliza uma coluna de CNPJ para a forma
// só-dígitos no momento da consulta. O banco guarda CNPJs com e sem máscara
// na mesma coluna; a igualdade só vale sobre a forma canônica.
func exprCNPJCanonico(coluna string) string {
	return "regexp_replace(" + coluna + ", '[^0-9]', '', 'g')"
}

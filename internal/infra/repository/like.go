package repository

import "strings"

func likeTerm(term string) string {
	term = strings.ToLower(strings.TrimSpace(term))
	// literal match: % and _ in user input are not wildcards
	term = strings.ReplaceAll(term, `\`, `\\`)
	term = strings.ReplaceAll(term, "%", `\%`)
	term = strings.ReplaceAll(term, "_", `\_`)
	return term
}

package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern turns free text into a substring pattern for ILIKE ... ESCAPE '\',
// so that %, _ and \ in the text match themselves.
func likePattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}

package repository

import "strings"

// batchSize bounds the rows sent in a single INSERT
const batchSize = 100

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere. LIKE wildcards in
// s are escaped so they match literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

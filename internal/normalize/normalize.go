// Package normalize keeps user-entered identifiers comparable:
// emails and names are trimmed and case-folded before they are
// stored or looked up.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

func Email(email string) string {
	return cases.Fold().String(strings.TrimSpace(email))
}

func Name(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

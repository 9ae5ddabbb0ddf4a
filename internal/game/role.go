package game

import "strings"

type Role string

const (
	Schizophrenia Role = "Schizophrenia"
	Autism        Role = "Autism Spectrum Disorder"
	Depression    Role = "Depression"
	ADHD          Role = "ADHD"
	Anxiety       Role = "Anxiety"

	// Uncategorized is what users without a role are grouped under
	Uncategorized Role = "Uncategorized"
)

var Roles = []Role{Schizophrenia, Autism, Depression, ADHD, Anxiety}

var roleAliases = map[string]Role{
	"schizophrenia": Schizophrenia,
	"autism":        Autism,
	"asd":           Autism,
	"depression":    Depression,
	"adhd":          ADHD,
	"anxiety":       Anxiety,
}

// ParseRole accepts either the full label or a short alias
func ParseRole(s string) (Role, bool) {
	for _, r := range Roles {
		if strings.EqualFold(s, string(r)) {
			return r, true
		}
	}
	r, ok := roleAliases[strings.ToLower(strings.TrimSpace(s))]
	return r, ok
}

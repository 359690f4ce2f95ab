package layout

import "fmt"

// NamingScheme selects how grid-layout sections are named.
type NamingScheme string

// Supported section naming schemes.
const (
	// NamingNumeric produces "Section 1", "Section 2", …
	NamingNumeric NamingScheme = "numeric"

	// NamingAlpha produces A, B, …, Z, AA, AB, … spreadsheet-style.
	NamingAlpha NamingScheme = "alpha"

	// NamingAlphanumeric pairs each letter with two numbered sections:
	// A1, A2, B1, B2, …
	NamingAlphanumeric NamingScheme = "alphanumeric"

	// NamingCustom cycles through a caller-supplied name list.
	NamingCustom NamingScheme = "custom"
)

// SectionName returns the display name for the 0-based section index under
// the given scheme. A custom scheme with an empty name list falls back to
// numeric naming; custom lists shorter than the section count are cycled.
func SectionName(scheme NamingScheme, index int, custom []string) string {
	switch scheme {
	case NamingAlpha:
		return alphaName(index)
	case NamingAlphanumeric:
		return fmt.Sprintf("%s%d", alphaName(index/2), index%2+1)
	case NamingCustom:
		if len(custom) > 0 {
			return custom[index%len(custom)]
		}
		return numericName(index)
	default:
		return numericName(index)
	}
}

func numericName(index int) string {
	return fmt.Sprintf("Section %d", index+1)
}

// alphaName converts a 0-based index to spreadsheet column letters:
// 0 → A, 25 → Z, 26 → AA.
func alphaName(index int) string {
	name := ""
	for index >= 0 {
		name = string(rune('A'+index%26)) + name
		index = index/26 - 1
	}
	return name
}

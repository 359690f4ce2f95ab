package layout

import "testing"

func TestSectionName(t *testing.T) {
	tests := []struct {
		name   string
		scheme NamingScheme
		index  int
		custom []string
		want   string
	}{
		{name: "numeric first", scheme: NamingNumeric, index: 0, want: "Section 1"},
		{name: "numeric later", scheme: NamingNumeric, index: 11, want: "Section 12"},
		{name: "default is numeric", scheme: "", index: 2, want: "Section 3"},
		{name: "alpha A", scheme: NamingAlpha, index: 0, want: "A"},
		{name: "alpha Z", scheme: NamingAlpha, index: 25, want: "Z"},
		{name: "alpha AA", scheme: NamingAlpha, index: 26, want: "AA"},
		{name: "alpha AB", scheme: NamingAlpha, index: 27, want: "AB"},
		{name: "alphanumeric A1", scheme: NamingAlphanumeric, index: 0, want: "A1"},
		{name: "alphanumeric A2", scheme: NamingAlphanumeric, index: 1, want: "A2"},
		{name: "alphanumeric B1", scheme: NamingAlphanumeric, index: 2, want: "B1"},
		{name: "custom", scheme: NamingCustom, index: 1, custom: []string{"North", "South"}, want: "South"},
		{name: "custom cycles", scheme: NamingCustom, index: 2, custom: []string{"North", "South"}, want: "North"},
		{name: "custom empty falls back", scheme: NamingCustom, index: 0, want: "Section 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SectionName(tt.scheme, tt.index, tt.custom); got != tt.want {
				t.Errorf("SectionName(%q, %d) = %q, want %q", tt.scheme, tt.index, got, tt.want)
			}
		})
	}
}

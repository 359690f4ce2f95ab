package placeid

// Parsed is a best-effort guess at the structure of an opaque identifier.
type Parsed struct {
	Section string `json:"section"`
	Seat    string `json:"seat"`
}

// Parse extracts putative section and seat tokens from an opaque place
// identifier by positional slicing: roughly the first 60% of the characters
// are treated as the section key, the remainder as the seat key.
//
// This is an inherently lossy heuristic, used only when ingesting
// externally sourced identifiers that carry no coordinates or section data.
// It must never be strengthened into a real contract: identifiers generated
// by this package happen to decode plausibly, but arbitrary third-party
// identifiers only yield stable, deterministic guesses.
func Parse(id string) Parsed {
	if len(id) <= 1 {
		return Parsed{Section: id}
	}

	cut := (len(id)*6 + 5) / 10 // ceil(len * 0.6)
	if cut >= len(id) {
		cut = len(id) - 1
	}
	return Parsed{
		Section: id[:cut],
		Seat:    id[cut:],
	}
}

package models

// SearchItem is one entry in the static predictive-search catalog.
// The catalog is seeded at startup and never mutated.
type SearchItem struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Category string   `json:"category"`
	URL      string   `json:"url"`
	Keywords []string `json:"keywords"`
}

// Guide is a plain-language how-to for obtaining one document type.
type Guide struct {
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Cost     string   `json:"cost"`
	Time     string   `json:"time"`
	Official string   `json:"official"`
	Steps    []string `json:"steps"`
}

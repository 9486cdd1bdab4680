package domain

import "time"

// IdentifierRecord is one input of a batch run.
type IdentifierRecord struct {
	// Identifier is the raw identifier.
	Identifier string `json:"id"`

	// Dataset is the scope for bare identifiers. Optional.
	Dataset string `json:"dataset,omitempty"`
}

// Concordance is the outcome of normalising one record: the mapping from a
// source identifier to its canonical URN.
type Concordance struct {
	// RunID groups the records of one batch run.
	RunID string `json:"run_id"`

	// Identifier is the raw identifier as received.
	Identifier string `json:"id"`

	// Dataset is the scope supplied with the identifier, if any.
	Dataset string `json:"dataset,omitempty"`

	// URN is the canonical URN. Empty when Error is set.
	URN string `json:"urn,omitempty"`

	// URL is the dereferenceable URL of the URN, when one exists.
	URL string `json:"url,omitempty"`

	// Error describes why the identifier could not be normalised.
	Error string `json:"error,omitempty"`

	// CreatedAt is when the record was normalised.
	CreatedAt time.Time `json:"created_at"`
}

// OK reports whether the record was normalised.
func (c Concordance) OK() bool {
	return c.Error == ""
}

// BatchSummary counts the outcomes of a batch run.
type BatchSummary struct {
	RunID   string
	Total   int
	Failed  int
	Results []Concordance
}

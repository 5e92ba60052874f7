package models

// SearchOptions narrows a search
type SearchOptions struct {
	Kinds InstrumentKindSet
}

// SearchResult is the resolver output for one query
type SearchResult struct {
	Query string `json:"query"`
	// Cards are de-duplicated by id in first-seen order; display order comes from ordering
	Cards             []Card   `json:"cards"`
	DetectedCategory  string   `json:"detectedCategory,omitempty"`
	MatchedCategories []string `json:"matchedCategories"`
	DirectMatches     int      `json:"directMatches"`
}

// HasDetectedCategory reports whether results are pinned to a category's benefits
func (r *SearchResult) HasDetectedCategory() bool {
	return r.DetectedCategory != ""
}

// CardIDs returns the ids of the result cards in result order
func (r *SearchResult) CardIDs() []string {
	ids := make([]string, 0, len(r.Cards))
	for _, c := range r.Cards {
		ids = append(ids, c.ID)
	}
	return ids
}

package domain

import "time"

// Record is one stored snippet with its embedding. Records are
// append-only: the ID is assigned at insert time in creation order and
// doubles as the pagination cursor.
type Record struct {
	ID        uint64    `json:"id"`
	Content   string    `json:"content"`
	Embedding []float32 `json:"embedding,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SearchResult pairs a record with its similarity to the query
// embedding. Stored embeddings are L2-normalized, so the score is a
// dot product and equals cosine similarity.
type SearchResult struct {
	Record Record  `json:"record"`
	Score  float64 `json:"score"`
}

// Page is one slice of the record set in ascending ID order.
// NextCursor is the ID of the last record in the page; passing it back
// continues strictly after it.
type Page struct {
	Records    []Record `json:"results"`
	NextCursor uint64   `json:"next_cursor"`
	HasMore    bool     `json:"has_more"`
}

package models

// ContextRequest asks for retrieval context for a free-text query, optionally
// anchored to the product or page the user is looking at.
type ContextRequest struct {
	Query     string `json:"query" binding:"required"`
	ProductID string `json:"product_id,omitempty"`
	Page      string `json:"page,omitempty"`
	MaxChunks int    `json:"max_chunks,omitempty"`
}

// ContextResponse carries the assembled context string.
type ContextResponse struct {
	Context    string `json:"context"`
	ChunkCount int    `json:"chunk_count"`
	SnapshotID string `json:"snapshot_id,omitempty"`
}

// RespondRequest asks the rule-based responder for a direct answer.
type RespondRequest struct {
	Query     string `json:"query" binding:"required"`
	ProductID string `json:"product_id,omitempty"`
}

// RespondResponse is the responder's answer. ContactRequired signals the
// caller to show a contact-us affordance instead of the reply text.
type RespondResponse struct {
	Reply           string `json:"reply"`
	ContactRequired bool   `json:"contact_required"`
}

package models

// ChunkType classifies the logical source of a knowledge chunk.
type ChunkType string

const (
	ChunkTypeCompany  ChunkType = "company"
	ChunkTypeProduct  ChunkType = "product"
	ChunkTypeService  ChunkType = "service"
	ChunkTypeCategory ChunkType = "category"
)

// ChunkMetadata carries optional hints used only to boost relevance scoring,
// never for filtering correctness.
type ChunkMetadata struct {
	ProductID   string   `json:"product_id,omitempty" bson:"product_id,omitempty"`
	ProductName string   `json:"product_name,omitempty" bson:"product_name,omitempty"`
	Category    Category `json:"category,omitempty" bson:"category,omitempty"`
	Tags        []string `json:"tags,omitempty" bson:"tags,omitempty"`
}

// KnowledgeChunk is one self-contained, independently retrievable unit of
// text. Content must not reference other chunks: any subset may be returned
// and concatenated on its own.
type KnowledgeChunk struct {
	ID       string        `json:"id" bson:"id"`
	Type     ChunkType     `json:"type" bson:"type"`
	Content  string        `json:"content" bson:"content"`
	Metadata ChunkMetadata `json:"metadata" bson:"metadata"`
}

package entities

import "time"

// GuideDocument is one ingested destination guide (pasted text or a fetched
// web page). Chunks carry the embeddings used for retrieval.
type GuideDocument struct {
	DocID     uint   `gorm:"primaryKey" json:"doc_id"`
	Title     string `json:"title"`
	Region    string `gorm:"index" json:"region"`
	SourceURL string `json:"source_url"`
	Tags      string `json:"tags"`
	CreatedAt time.Time
}

type GuideChunk struct {
	ChunkID   uint   `gorm:"primaryKey" json:"chunk_id"`
	DocID     uint   `gorm:"index" json:"doc_id"`
	Ord       int    `json:"ord"`
	Text      string `gorm:"type:text" json:"text"`
	Embedding []byte `json:"-"`
	CreatedAt time.Time
}

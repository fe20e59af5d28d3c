package repository

import "tripmind/entities"

type KBRepository interface {
	CreateDoc(*entities.GuideDocument) error
	BulkInsertChunks([]entities.GuideChunk) error
	ListDocs() ([]entities.GuideDocument, error)
	AllChunks() ([]entities.GuideChunk, error)
	ChunksByRegion(region string) ([]entities.GuideChunk, error)
	DocsByIDs(ids []uint) (map[uint]entities.GuideDocument, error)
}

package service

import "tripmind/entities"

type KBService interface {
	UpsertGuide(title, region, tags, text, sourceURL string) (*entities.GuideDocument, int, error)
	Search(query string, k int) ([]entities.GuideChunk, error)
	SearchRegion(region, query string, k int) ([]entities.GuideChunk, error)
	DocsMeta(ids []uint) (map[uint]entities.GuideDocument, error)
}

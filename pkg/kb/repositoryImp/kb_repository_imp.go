package repositoryImp

import (
	"gorm.io/gorm"

	"tripmind/entities"
	"tripmind/pkg/kb/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.KBRepository { return &repo{db} }

func (r *repo) CreateDoc(d *entities.GuideDocument) error { return r.db.Create(d).Error }

func (r *repo) BulkInsertChunks(cs []entities.GuideChunk) error { return r.db.Create(&cs).Error }

func (r *repo) ListDocs() ([]entities.GuideDocument, error) {
	var ds []entities.GuideDocument
	return ds, r.db.Order("doc_id DESC").Find(&ds).Error
}

func (r *repo) AllChunks() ([]entities.GuideChunk, error) {
	var cs []entities.GuideChunk
	return cs, r.db.Find(&cs).Error
}

func (r *repo) ChunksByRegion(region string) ([]entities.GuideChunk, error) {
	var cs []entities.GuideChunk
	err := r.db.
		Joins("JOIN guide_documents ON guide_documents.doc_id = guide_chunks.doc_id").
		Where("guide_documents.region = ?", region).
		Find(&cs).Error
	return cs, err
}

func (r *repo) DocsByIDs(ids []uint) (map[uint]entities.GuideDocument, error) {
	m := make(map[uint]entities.GuideDocument, len(ids))
	if len(ids) == 0 {
		return m, nil
	}
	var ds []entities.GuideDocument
	if err := r.db.Where("doc_id IN ?", ids).Find(&ds).Error; err != nil {
		return nil, err
	}
	for i := range ds {
		m[ds[i].DocID] = ds[i]
	}
	return m, nil
}

package serviceImp

import (
	"math"
	"sort"
	"strings"

	"tripmind/entities"
	"tripmind/pkg/kb/embedder"
	"tripmind/pkg/kb/repository"
	"tripmind/pkg/kb/service"
)

type Svc struct {
	r   repository.KBRepository
	emb *embedder.Client
}

func New(r repository.KBRepository, e *embedder.Client) service.KBService { return &Svc{r: r, emb: e} }

// chunkGuide splits on paragraph-ish boundaries, flushing once a chunk passes
// maxRunes at a newline so sentences stay whole.
func chunkGuide(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	var parts []string
	var cur strings.Builder
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *Svc) UpsertGuide(title, region, tags, text, sourceURL string) (*entities.GuideDocument, int, error) {
	d := &entities.GuideDocument{
		Title:     title,
		Region:    strings.ToLower(strings.TrimSpace(region)),
		Tags:      tags,
		SourceURL: sourceURL,
	}
	if err := s.r.CreateDoc(d); err != nil {
		return nil, 0, err
	}

	chs := chunkGuide(text, 1000)
	if len(chs) == 0 {
		return d, 0, nil
	}

	// Embedding failures degrade to nil vectors; keyword fallback still works.
	var embs [][]float32
	if s.emb.Configured() {
		embs, _ = s.emb.Embed(chs)
	}

	rows := make([]entities.GuideChunk, len(chs))
	for i := range chs {
		var vec []byte
		if i < len(embs) {
			vec = embedder.FloatsToBytes(embs[i])
		}
		rows[i] = entities.GuideChunk{DocID: d.DocID, Ord: i, Text: chs[i], Embedding: vec}
	}
	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return d, len(rows), nil
}

func (s *Svc) Search(query string, k int) ([]entities.GuideChunk, error) {
	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	return s.rank(query, k, chunks), nil
}

func (s *Svc) SearchRegion(region, query string, k int) ([]entities.GuideChunk, error) {
	chunks, err := s.r.ChunksByRegion(strings.ToLower(strings.TrimSpace(region)))
	if err != nil {
		return nil, err
	}
	return s.rank(query, k, chunks), nil
}

func (s *Svc) rank(query string, k int, chunks []entities.GuideChunk) []entities.GuideChunk {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 || len(chunks) == 0 {
		return nil
	}

	var qvec []float32
	if s.emb.Configured() {
		if vecs, err := s.emb.Embed([]string{q}); err == nil && len(vecs) > 0 {
			qvec = vecs[0]
		}
	}

	type scored struct {
		ch entities.GuideChunk
		sc float64
	}
	var list []scored
	if len(qvec) > 0 {
		for _, ch := range chunks {
			sc := cosine(qvec, embedder.BytesToFloats(ch.Embedding))
			if sc > 0 {
				list = append(list, scored{ch, sc})
			}
		}
	} else {
		// keyword fallback: score by how many query terms the chunk contains
		terms := strings.Fields(strings.ToLower(q))
		for _, ch := range chunks {
			low := strings.ToLower(ch.Text)
			sc := 0.0
			for _, t := range terms {
				if strings.Contains(low, t) {
					sc++
				}
			}
			if sc > 0 {
				list = append(list, scored{ch, sc})
			}
		}
	}

	sort.Slice(list, func(i, j int) bool { return list[i].sc > list[j].sc })
	if k > len(list) {
		k = len(list)
	}
	out := make([]entities.GuideChunk, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, list[i].ch)
	}
	return out
}

func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		v, w := float64(a[i]), float64(b[i])
		dot += v * w
		na += v * v
		nb += w * w
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func (s *Svc) DocsMeta(ids []uint) (map[uint]entities.GuideDocument, error) {
	return s.r.DocsByIDs(ids)
}

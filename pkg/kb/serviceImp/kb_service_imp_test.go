package serviceImp

import (
	"path/filepath"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tripmind/database"
	"tripmind/pkg/kb/embedder"
	"tripmind/pkg/kb/repositoryImp"
	"tripmind/pkg/kb/service"
)

func testSvc(t *testing.T) service.KBService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "kb.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	// No embedding endpoint configured: search runs on keyword fallback.
	return New(repositoryImp.New(db), embedder.New("", "", ""))
}

func TestUpsertGuideChunksLongText(t *testing.T) {
	svc := testSvc(t)
	para := strings.Repeat("The old town has cobbled lanes and a clock tower.\n", 60)

	doc, chunks, err := svc.UpsertGuide("Zurich guide", "Zurich", "city", para, "")
	require.NoError(t, err)
	assert.Greater(t, chunks, 1)
	assert.Equal(t, "zurich", doc.Region)
	assert.NotZero(t, doc.DocID)
}

func TestUpsertGuideEmptyText(t *testing.T) {
	svc := testSvc(t)
	doc, chunks, err := svc.UpsertGuide("Empty", "nowhere", "", "", "")
	require.NoError(t, err)
	assert.Zero(t, chunks)
	assert.NotZero(t, doc.DocID)
}

func TestKeywordSearchRanksByTermOverlap(t *testing.T) {
	svc := testSvc(t)
	_, _, err := svc.UpsertGuide("Zurich food", "zurich", "",
		"Zurich has excellent fondue restaurants near the lake.", "")
	require.NoError(t, err)
	_, _, err = svc.UpsertGuide("Bern sights", "bern", "",
		"Bern is known for its bear park and arcades.", "")
	require.NoError(t, err)

	hits, err := svc.Search("fondue restaurants Zurich", 5)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Contains(t, hits[0].Text, "fondue")

	none, err := svc.Search("volcano surfing", 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSearchRegionFiltersDocuments(t *testing.T) {
	svc := testSvc(t)
	_, _, err := svc.UpsertGuide("Zurich lake", "Zurich", "",
		"The lake promenade is worth a walk.", "")
	require.NoError(t, err)
	_, _, err = svc.UpsertGuide("Bern river", "Bern", "",
		"The Aare river loop is worth a walk.", "")
	require.NoError(t, err)

	hits, err := svc.SearchRegion("bern", "worth a walk", 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Contains(t, hits[0].Text, "Aare")
}

func TestDocsMeta(t *testing.T) {
	svc := testSvc(t)
	doc, _, err := svc.UpsertGuide("Zurich guide", "zurich", "city",
		"Some guide text here.", "https://example.org/zurich")
	require.NoError(t, err)

	meta, err := svc.DocsMeta([]uint{doc.DocID})
	require.NoError(t, err)
	require.Contains(t, meta, doc.DocID)
	assert.Equal(t, "https://example.org/zurich", meta[doc.DocID].SourceURL)

	empty, err := svc.DocsMeta(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

package property

import (
	"testing"
	"time"

	"estates-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedFiles(names ...string) []storage.StoredFile {
	files := make([]storage.StoredFile, 0, len(names))
	for i, name := range names {
		files = append(files, storage.StoredFile{
			URL:          "/uploads/file-" + string(rune('a'+i)) + ".bin",
			Key:          "file-" + string(rune('a'+i)) + ".bin",
			OriginalName: name,
		})
	}
	return files
}

func TestForcePrimaryImageNoneFlagged(t *testing.T) {
	files := storedFiles("a.jpg", "b.jpg")

	images := forcePrimaryImage(files, []bool{false, false})

	require.Len(t, images, 2)
	assert.True(t, images[0].IsPrimary, "first image must be promoted when none is flagged")
	assert.False(t, images[1].IsPrimary)
}

func TestForcePrimaryImageKeepsFlag(t *testing.T) {
	files := storedFiles("a.jpg", "b.jpg", "c.jpg")

	images := forcePrimaryImage(files, []bool{false, true, false})

	require.Len(t, images, 3)
	assert.False(t, images[0].IsPrimary)
	assert.True(t, images[1].IsPrimary)
	assert.False(t, images[2].IsPrimary)
}

func TestForcePrimaryImageMultipleFlagsCollapse(t *testing.T) {
	files := storedFiles("a.jpg", "b.jpg", "c.jpg")

	images := forcePrimaryImage(files, []bool{false, true, true})

	primaries := 0
	for _, img := range images {
		if img.IsPrimary {
			primaries++
		}
	}
	assert.Equal(t, 1, primaries, "exactly one image may be primary")
	assert.True(t, images[1].IsPrimary, "first flagged image wins")
}

func TestForcePrimaryImageEmpty(t *testing.T) {
	assert.Nil(t, forcePrimaryImage(nil, nil))
}

func TestPrimaryFlagsByFilename(t *testing.T) {
	files := storedFiles("front.jpg", "back.jpg")
	meta := []ImageMeta{{FileName: "back.jpg", IsPrimary: true}}

	flags := primaryFlags(files, meta)

	assert.Equal(t, []bool{false, true}, flags)
}

func TestCorrelateConfigFiles(t *testing.T) {
	files := storedFiles("2bhk.pdf", "3bhk.pdf")
	meta := []ConfigFileMeta{
		{Key: "cfg-2bhk", FileName: "2bhk.pdf"},
		{Key: "cfg-3bhk", FileName: "3bhk.pdf"},
		{Key: "cfg-4bhk", FileName: "missing.pdf"},
	}

	urlByKey := correlateConfigFiles(meta, files)

	assert.Equal(t, files[0].URL, urlByKey["cfg-2bhk"])
	assert.Equal(t, files[1].URL, urlByKey["cfg-3bhk"])
	_, ok := urlByKey["cfg-4bhk"]
	assert.False(t, ok, "unmatched configurations get no file URL")
}

func TestCorrelateConfigFilesDuplicateFilenames(t *testing.T) {
	files := storedFiles("plan.pdf", "plan.pdf")
	meta := []ConfigFileMeta{
		{Key: "first", FileName: "plan.pdf"},
		{Key: "second", FileName: "plan.pdf"},
	}

	urlByKey := correlateConfigFiles(meta, files)

	assert.Equal(t, files[0].URL, urlByKey["first"])
	assert.Equal(t, files[1].URL, urlByKey["second"], "each upload is consumed at most once")
}

func TestCorrelateDocumentsTypeDefaultsToNil(t *testing.T) {
	files := storedFiles("brochure.pdf", "untagged.pdf")
	brochure := "brochure"
	meta := []DocumentMeta{{FileName: "brochure.pdf", Type: &brochure}}

	docs := correlateDocuments(files, meta)

	require.Len(t, docs, 2)
	require.NotNil(t, docs[0].Type)
	assert.Equal(t, "brochure", *docs[0].Type)
	assert.Nil(t, docs[1].Type)
}

func TestValidNearestToSkipsPartialEntries(t *testing.T) {
	id := uint(3)
	dist := 1.5

	rows := validNearestTo(9, []NearestToEntry{
		{NearestToID: &id, Distance: &dist},
		{NearestToID: &id},
		{Distance: &dist},
		{},
	})

	require.Len(t, rows, 1)
	assert.Equal(t, uint(9), rows[0].PropertyID)
	assert.Equal(t, uint(3), rows[0].NearestToID)
	assert.Equal(t, 1.5, rows[0].Distance)
}

func TestDetailsSectionHasAny(t *testing.T) {
	var nilSection *DetailsSection
	assert.False(t, nilSection.hasAny())
	assert.False(t, (&DetailsSection{}).hasAny())

	city := "Pune"
	assert.True(t, (&DetailsSection{City: &city}).hasAny())
}

func TestBasicPatchColumnsOnlyPresentFields(t *testing.T) {
	title := "New title"
	price := 4500000.0

	cols := (&BasicPatch{Title: &title, ExpectedPrice: &price}).columns()

	assert.Equal(t, map[string]interface{}{
		"title":          "New title",
		"expected_price": 4500000.0,
	}, cols)
}

func TestLocationPatchColumnsEmptyWhenNothingSet(t *testing.T) {
	assert.Empty(t, (&LocationPatch{}).columns())
}

func TestParsePossessionDate(t *testing.T) {
	assert.Nil(t, parsePossessionDate(nil))

	junk := "soon"
	assert.Nil(t, parsePossessionDate(&junk))

	ok := "2027-06-15"
	got := parsePossessionDate(&ok)
	require.NotNil(t, got)
	assert.Equal(t, 2027, got.Year())
	assert.Equal(t, time.June, got.Month())
	assert.Equal(t, 15, got.Day())
}

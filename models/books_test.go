package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func readingLog() ReadingLog {
	return ReadingLog{
		LastUpdated: "2026-01-10",
		BasePath:    "Knowledge/Books",
		Books: []BookEntry{
			{Title: "One", File: "one.md", Tier: TierA, Status: BookRead},
			{Title: "Two", File: "two.md", Tier: TierA, Status: BookReading},
			{Title: "Three", File: "three.md", Tier: TierB, Status: BookUnread},
			{Title: "Four", File: "four.md", Tier: TierC, Status: BookUnread},
		},
	}
}

func TestBuildLibrary_NoFilter(t *testing.T) {
	lib := BuildLibrary(readingLog(), FilterAll, FilterAll)

	assert.Len(t, lib.Books, 4)
	assert.Equal(t, 4, lib.TierCounts["all"])
	assert.Equal(t, 2, lib.TierCounts["A"])
	assert.Equal(t, 1, lib.TierCounts["B"])
	assert.Equal(t, 1, lib.TierCounts["C"])
	assert.Equal(t, 2, lib.StatusCounts["unread"])
	assert.Equal(t, 1, lib.ReadCount)
	assert.Equal(t, 1, lib.ReadingCount)
	assert.InDelta(t, 0.375, lib.Progress, 1e-9)
	assert.Equal(t, "Knowledge/Books/one.md", lib.Books[0].SummaryPath)
}

func TestBuildLibrary_StatusCountsFollowTierFilter(t *testing.T) {
	lib := BuildLibrary(readingLog(), "A", "read")

	assert.Len(t, lib.Books, 1)
	assert.Equal(t, "one.md", lib.Books[0].File)
	assert.Equal(t, 2, lib.StatusCounts["all"])
	assert.Equal(t, 1, lib.StatusCounts["read"])
	assert.Equal(t, 1, lib.StatusCounts["reading"])
	assert.Equal(t, 0, lib.StatusCounts["unread"])
	assert.Equal(t, 4, lib.TierCounts["all"])
}

func TestBuildLibrary_Empty(t *testing.T) {
	lib := BuildLibrary(ReadingLog{}, "", "")

	assert.Empty(t, lib.Books)
	assert.Zero(t, lib.Progress)
}

func TestReadingLog_Find(t *testing.T) {
	log := readingLog()

	book := log.Find("two.md")
	assert.NotNil(t, book)
	book.Status = BookRead
	assert.Equal(t, BookRead, log.Books[1].Status)

	assert.Nil(t, log.Find("missing.md"))
}

func TestFilterKnowledge(t *testing.T) {
	files := []KnowledgeFile{
		{Path: "a", Category: KnowledgeReport},
		{Path: "b", Category: KnowledgeNote},
	}

	assert.Len(t, FilterKnowledge(files, "all"), 2)
	assert.Len(t, FilterKnowledge(files, ""), 2)
	assert.Equal(t, "b", FilterKnowledge(files, "note")[0].Path)
	assert.Empty(t, FilterKnowledge(files, "topic"))
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	githubMocks "github.com/hcstnb2047/lvdash/internal/github/mocks"
	"github.com/hcstnb2047/lvdash/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const readingLogPath = "Knowledge/Research/books/reading-log.yaml"

const readingLogYAML = `last_updated: "2026-02-20"
base_path: Knowledge/Books
books:
  - title: Atomic Habits
    file: atomic-habits.md
    tier: A
    category: habits
    status: reading
    vault_connection: Habits/README.md
    notes: []
  - title: Deep Work
    file: deep-work.md
    tier: B
    category: productivity
    status: unread
    notes:
      - date: "2026-01-02"
        text: first pass
`

func newTestBooks(t *testing.T, client *githubMocks.MockClient) *booksService {
	t.Helper()
	svc := NewBooksService(staticSource{client: client}, openStore(t), readingLogPath, "main", time.Minute).(*booksService)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC) }
	return svc
}

func TestBooksLog(t *testing.T) {
	ctx := t.Context()
	mockClient := githubMocks.NewMockClient(t)
	mockClient.
		EXPECT().
		GetFileContent(mock.Anything, readingLogPath, "main").
		Once().
		Return(readingLogYAML, "sha1", nil)

	svc := newTestBooks(t, mockClient)

	log, err := svc.Log(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-20", log.LastUpdated)
	assert.Equal(t, "Knowledge/Books", log.BasePath)
	require.Len(t, log.Books, 2)
	assert.Equal(t, models.TierA, log.Books[0].Tier)
	assert.Equal(t, "Habits/README.md", log.Books[0].VaultConnection)
	assert.Equal(t, []models.BookNote{{Date: "2026-01-02", Text: "first pass"}}, log.Books[1].Notes)

	// second read is served from the cache
	_, err = svc.Log(ctx)
	require.NoError(t, err)
}

func TestBooksLibrary(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)
	mockClient.
		EXPECT().
		GetFileContent(mock.Anything, readingLogPath, "main").
		Once().
		Return(readingLogYAML, "sha1", nil)

	lib, err := newTestBooks(t, mockClient).Library(t.Context(), "A", "all")

	require.NoError(t, err)
	require.Len(t, lib.Books, 1)
	assert.Equal(t, "Knowledge/Books/atomic-habits.md", lib.Books[0].SummaryPath)
	assert.Equal(t, 2, lib.Total)
}

func TestBooksUpdateStatus(t *testing.T) {
	ctx := t.Context()
	mockClient := githubMocks.NewMockClient(t)
	mockClient.
		EXPECT().
		GetFileContent(mock.Anything, readingLogPath, "main").
		Once().
		Return(readingLogYAML, "sha1", nil)

	var committed string
	mockClient.
		EXPECT().
		CreateOrUpdateFile(mock.Anything, readingLogPath, "main", "books: Atomic Habits を「read」に更新", mock.Anything, mock.Anything).
		Run(func(_ context.Context, _, _, _, content string, fileSHA *string) {
			committed = content
			require.NotNil(t, fileSHA)
			assert.Equal(t, "sha1", *fileSHA)
		}).
		Return("sha2", nil).
		Once()

	svc := newTestBooks(t, mockClient)
	book, err := svc.UpdateStatus(ctx, "atomic-habits.md", models.BookRead)

	require.NoError(t, err)
	assert.Equal(t, models.BookRead, book.Status)

	_, decoded, err := parseReadingLog(committed)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", decoded.LastUpdated)
	assert.Equal(t, models.BookRead, decoded.Books[0].Status)
	assert.Equal(t, models.BookUnread, decoded.Books[1].Status)

	// the cache now carries the committed log and its new SHA
	var cached cachedReadingLog
	_, ok, err := svc.store.GetCache(ctx, cacheReadingLog, time.Minute, &cached)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "sha2", cached.SHA)
	assert.Equal(t, committed, cached.Content)

	log, err := svc.Log(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.BookRead, log.Books[0].Status)
}

const readingLogWithExtras = `# maintained by hand and by the dashboard
last_updated: "2026-02-20"
base_path: Knowledge/Books
goals:
  yearly: 24
books:
  - title: Deep Work
    file: deep-work.md
    author: Cal Newport
    tier: B
    category: productivity
    status: unread
    notes: []
    rating: 4
`

func TestBooksUpdate_KeepsUnknownKeys(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)
	mockClient.
		EXPECT().
		GetFileContent(mock.Anything, readingLogPath, "main").
		Return(readingLogWithExtras, "sha1", nil).
		Once()

	var committed string
	mockClient.
		EXPECT().
		CreateOrUpdateFile(mock.Anything, readingLogPath, "main", mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _, _, _, content string, _ *string) {
			committed = content
		}).
		Return("sha2", nil).
		Once()

	book, err := newTestBooks(t, mockClient).AddNote(t.Context(), "deep-work.md", "focus blocks")
	require.NoError(t, err)
	assert.Equal(t, []models.BookNote{{Date: "2026-03-01", Text: "focus blocks"}}, book.Notes)

	assert.Contains(t, committed, "author: Cal Newport")
	assert.Contains(t, committed, "rating: 4")

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(committed), &raw))
	assert.Equal(t, map[string]any{"yearly": 24}, raw["goals"])
	assert.Equal(t, "2026-03-01", raw["last_updated"])

	books := raw["books"].([]any)
	require.Len(t, books, 1)
	deepWork := books[0].(map[string]any)
	assert.Equal(t, "Cal Newport", deepWork["author"])
	assert.Equal(t, "unread", deepWork["status"])
	assert.Equal(t, []any{map[string]any{"date": "2026-03-01", "text": "focus blocks"}}, deepWork["notes"])
}

func TestBooksAddNote(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)
	mockClient.
		EXPECT().
		GetFileContent(mock.Anything, readingLogPath, "main").
		Once().
		Return(readingLogYAML, "sha1", nil)
	mockClient.
		EXPECT().
		CreateOrUpdateFile(mock.Anything, readingLogPath, "main", "books: Deep Work にメモ追加", mock.Anything, mock.Anything).
		Once().
		Return("sha2", nil)

	book, err := newTestBooks(t, mockClient).AddNote(t.Context(), "deep-work.md", "  chapter 3 is key \n")

	require.NoError(t, err)
	assert.Equal(t, []models.BookNote{
		{Date: "2026-01-02", Text: "first pass"},
		{Date: "2026-03-01", Text: "chapter 3 is key"},
	}, book.Notes)
}

func TestBooksAddNote_Blank(t *testing.T) {
	_, err := newTestBooks(t, githubMocks.NewMockClient(t)).AddNote(t.Context(), "deep-work.md", "   ")

	assert.ErrorIs(t, err, ErrEmptyNote)
}

func TestBooksUpdateStatus_Invalid(t *testing.T) {
	_, err := newTestBooks(t, githubMocks.NewMockClient(t)).UpdateStatus(t.Context(), "deep-work.md", models.BookStatus("abandoned"))

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestBooksUpdateStatus_UnknownBook(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)
	mockClient.
		EXPECT().
		GetFileContent(mock.Anything, readingLogPath, "main").
		Once().
		Return(readingLogYAML, "sha1", nil)

	_, err := newTestBooks(t, mockClient).UpdateStatus(t.Context(), "missing.md", models.BookRead)

	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestBooksUpdate_FailureDropsCache(t *testing.T) {
	ctx := t.Context()
	mockClient := githubMocks.NewMockClient(t)
	mockClient.
		EXPECT().
		GetFileContent(mock.Anything, readingLogPath, "main").
		Twice().
		Return(readingLogYAML, "sha1", nil)
	mockClient.
		EXPECT().
		CreateOrUpdateFile(mock.Anything, readingLogPath, "main", mock.Anything, mock.Anything, mock.Anything).
		Once().
		Return("", errors.New("409 conflict"))

	svc := newTestBooks(t, mockClient)

	_, err := svc.UpdateStatus(ctx, "deep-work.md", models.BookReading)
	require.Error(t, err)

	log, err := svc.Log(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.BookUnread, log.Books[1].Status)
}

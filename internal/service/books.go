package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hcstnb2047/lvdash/models"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const cacheReadingLog = "reading-log"

var errNotMapping = errors.New("reading log is not a YAML mapping")

type BooksService interface {
	Log(ctx context.Context) (models.ReadingLog, error)
	Library(ctx context.Context, tier, status string) (models.Library, error)
	UpdateStatus(ctx context.Context, file string, status models.BookStatus) (models.BookEntry, error)
	AddNote(ctx context.Context, file, text string) (models.BookEntry, error)
}

// cachedReadingLog keeps the file as committed so keys the dashboard does not
// know about survive the next update.
type cachedReadingLog struct {
	Content string `json:"content"`
	SHA     string `json:"sha"`
}

// readingLog is the typed view of the file next to the YAML tree it was read
// from. Updates edit the tree and re-encode it.
type readingLog struct {
	Log  models.ReadingLog
	Root *yaml.Node
	SHA  string
}

// bookEdit changes one book's node and returns the commit message.
type bookEdit func(book *yaml.Node, entry models.BookEntry) string

type booksService struct {
	src   ClientSource
	store Store
	path  string
	ref   string
	ttl   time.Duration
	now   func() time.Time
	log   logrus.FieldLogger

	// serializes read-modify-write cycles so each commit sees the latest SHA
	mu sync.Mutex
}

func NewBooksService(src ClientSource, store Store, logPath, ref string, ttl time.Duration) BooksService {
	return &booksService{
		src:   src,
		store: store,
		path:  logPath,
		ref:   ref,
		ttl:   ttl,
		now:   time.Now,
		log:   logrus.WithFields(logrus.Fields{"component": "books", "path": logPath}),
	}
}

func (s *booksService) Log(ctx context.Context) (models.ReadingLog, error) {
	rl, err := s.load(ctx)
	if err != nil {
		return models.ReadingLog{}, err
	}
	return rl.Log, nil
}

func (s *booksService) Library(ctx context.Context, tier, status string) (models.Library, error) {
	log, err := s.Log(ctx)
	if err != nil {
		return models.Library{}, err
	}
	return models.BuildLibrary(log, tier, status), nil
}

func (s *booksService) UpdateStatus(ctx context.Context, file string, status models.BookStatus) (models.BookEntry, error) {
	if !status.Valid() {
		return models.BookEntry{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	return s.update(ctx, file, func(book *yaml.Node, entry models.BookEntry) string {
		setScalar(book, "status", string(status))
		return fmt.Sprintf("books: %s を「%s」に更新", entry.Title, status)
	})
}

func (s *booksService) AddNote(ctx context.Context, file, text string) (models.BookEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.BookEntry{}, ErrEmptyNote
	}

	return s.update(ctx, file, func(book *yaml.Node, entry models.BookEntry) string {
		appendNote(book, s.today(), text)
		return fmt.Sprintf("books: %s にメモ追加", entry.Title)
	})
}

// update applies edit to one book and commits the whole log. Any failure
// drops the cached copy so the next read starts from GitHub.
func (s *booksService) update(ctx context.Context, file string, edit bookEdit) (models.BookEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.commit(ctx, file, edit)
	if err != nil {
		if delErr := s.store.DeleteCache(ctx, cacheReadingLog); delErr != nil {
			s.log.WithError(delErr).Warn("dropping reading log cache failed")
		}
		return models.BookEntry{}, err
	}
	return book, nil
}

func (s *booksService) commit(ctx context.Context, file string, edit bookEdit) (models.BookEntry, error) {
	rl, err := s.load(ctx)
	if err != nil {
		return models.BookEntry{}, err
	}

	root, err := documentMapping(rl.Root)
	if err != nil {
		return models.BookEntry{}, err
	}
	bookNode := findBook(root, file)
	if bookNode == nil {
		return models.BookEntry{}, fmt.Errorf("%w: %s", ErrBookNotFound, file)
	}

	var entry models.BookEntry
	if err := bookNode.Decode(&entry); err != nil {
		return models.BookEntry{}, fmt.Errorf("parsing book %s: %w", file, err)
	}

	message := edit(bookNode, entry)
	setScalar(root, "last_updated", s.today())

	content, err := encodeReadingLog(rl.Root)
	if err != nil {
		return models.BookEntry{}, err
	}

	client, err := s.src.Client(ctx)
	if err != nil {
		return models.BookEntry{}, err
	}

	sha := rl.SHA
	newSHA, err := client.CreateOrUpdateFile(ctx, s.path, s.ref, message, content, &sha)
	if err != nil {
		return models.BookEntry{}, err
	}

	s.log.WithFields(logrus.Fields{"book": file, "sha": newSHA}).Info("reading log updated")

	if err := s.store.PutCache(ctx, cacheReadingLog, cachedReadingLog{Content: content, SHA: newSHA}); err != nil {
		s.log.WithError(err).Warn("caching reading log failed")
	}

	var updated models.BookEntry
	if err := bookNode.Decode(&updated); err != nil {
		return models.BookEntry{}, fmt.Errorf("parsing book %s: %w", file, err)
	}
	return updated, nil
}

func (s *booksService) load(ctx context.Context) (readingLog, error) {
	client, err := s.src.Client(ctx)
	if err != nil {
		return readingLog{}, err
	}

	var cached cachedReadingLog
	_, ok, err := s.store.GetCache(ctx, cacheReadingLog, s.ttl, &cached)
	if err != nil {
		s.log.WithError(err).Warn("reading log cache lookup failed")
	}
	if !ok {
		content, sha, err := client.GetFileContent(ctx, s.path, s.ref)
		if err != nil {
			return readingLog{}, err
		}
		cached = cachedReadingLog{Content: content, SHA: sha}
		if err := s.store.PutCache(ctx, cacheReadingLog, cached); err != nil {
			s.log.WithError(err).Warn("caching reading log failed")
		}
	}

	root, log, err := parseReadingLog(cached.Content)
	if err != nil {
		return readingLog{}, err
	}
	return readingLog{Log: log, Root: root, SHA: cached.SHA}, nil
}

func (s *booksService) today() string {
	return s.now().Format(time.DateOnly)
}

func parseReadingLog(content string) (*yaml.Node, models.ReadingLog, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(content), &root); err != nil {
		return nil, models.ReadingLog{}, fmt.Errorf("parsing reading log: %w", err)
	}

	var log models.ReadingLog
	if len(root.Content) > 0 {
		if err := root.Decode(&log); err != nil {
			return nil, models.ReadingLog{}, fmt.Errorf("parsing reading log: %w", err)
		}
	}
	return &root, log, nil
}

func encodeReadingLog(root *yaml.Node) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return "", fmt.Errorf("encoding reading log: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding reading log: %w", err)
	}
	return buf.String(), nil
}

func documentMapping(root *yaml.Node) (*yaml.Node, error) {
	if root == nil || root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, errNotMapping
	}
	return root.Content[0], nil
}

// mapValue returns the value node stored under key in a mapping node.
func mapValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func findBook(root *yaml.Node, file string) *yaml.Node {
	books := mapValue(root, "books")
	if books == nil || books.Kind != yaml.SequenceNode {
		return nil
	}
	for _, book := range books.Content {
		if book.Kind != yaml.MappingNode {
			continue
		}
		if f := mapValue(book, "file"); f != nil && f.Value == file {
			return book
		}
	}
	return nil
}

func stringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// setScalar sets key to a string value, adding the key when it is missing.
func setScalar(m *yaml.Node, key, value string) {
	if v := mapValue(m, key); v != nil {
		style := v.Style
		if v.Kind != yaml.ScalarNode {
			style = 0
		}
		*v = yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: style}
		return
	}
	m.Content = append(m.Content, stringNode(key), stringNode(value))
}

func appendNote(book *yaml.Node, date, text string) {
	note := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: []*yaml.Node{
		stringNode("date"), stringNode(date),
		stringNode("text"), stringNode(text),
	}}

	notes := mapValue(book, "notes")
	if notes == nil {
		book.Content = append(book.Content, stringNode("notes"), &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: []*yaml.Node{note}})
		return
	}
	if notes.Kind != yaml.SequenceNode {
		*notes = yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	}
	// an empty flow sequence ("notes: []") grows into block style
	notes.Style &^= yaml.FlowStyle
	notes.Content = append(notes.Content, note)
}

package service

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hcstnb2047/lvdash/models"
	"github.com/sirupsen/logrus"
)

const (
	cacheKnowledgeTree = "knowledge-tree"

	knowledgeRoot    = "Knowledge/"
	knowledgePattern = "Knowledge/**/*.md"
	promptsPattern   = "Knowledge/prompts/**"

	minSearchLength     = 2
	maxTextMatches      = 2
	searchLowWatermark  = 3
	searchLimitedWindow = time.Minute
)

var knowledgePrefixes = []struct {
	prefix   string
	category models.KnowledgeCategory
}{
	{"Knowledge/Research/", models.KnowledgeReport},
	{"Knowledge/Books/", models.KnowledgeBook},
	{"Knowledge/Notes/", models.KnowledgeNote},
	{"Knowledge/Topics/", models.KnowledgeTopic},
	{"Knowledge/WebClips/", models.KnowledgeWebclip},
}

var (
	datedFileName = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\.md$`)
	datePrefix    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[_-]?`)
)

type KnowledgeService interface {
	// Tree lists the knowledge markdown files, newest first. refresh skips
	// the cache.
	Tree(ctx context.Context, refresh bool) ([]models.KnowledgeFile, error)
	Content(ctx context.Context, filePath string) (string, error)
	Search(ctx context.Context, query string) (models.KnowledgeSearch, error)
}

type knowledgeService struct {
	src   ClientSource
	store Store
	ref   string
	ttl   time.Duration
	now   func() time.Time
	log   logrus.FieldLogger

	mu           sync.Mutex
	limitedUntil time.Time
}

func NewKnowledgeService(src ClientSource, store Store, ref string, ttl time.Duration) KnowledgeService {
	return &knowledgeService{
		src:   src,
		store: store,
		ref:   ref,
		ttl:   ttl,
		now:   time.Now,
		log:   logrus.WithField("component", "knowledge"),
	}
}

func (s *knowledgeService) Tree(ctx context.Context, refresh bool) ([]models.KnowledgeFile, error) {
	client, err := s.src.Client(ctx)
	if err != nil {
		return nil, err
	}

	if !refresh {
		var cached []models.KnowledgeFile
		_, ok, err := s.store.GetCache(ctx, cacheKnowledgeTree, s.ttl, &cached)
		if err != nil {
			s.log.WithError(err).Warn("reading knowledge cache failed")
		}
		if ok {
			return cached, nil
		}
	}

	tree, err := client.GetTree(ctx, s.ref, true)
	if err != nil {
		return nil, err
	}

	files := make([]models.KnowledgeFile, 0)
	for _, entry := range tree.Entries {
		if entry == nil || entry.GetType() != "blob" {
			continue
		}
		p := entry.GetPath()
		if !isKnowledgeFile(p) {
			continue
		}
		category, ok := categorize(p)
		if !ok {
			continue
		}

		name := path.Base(p)
		files = append(files, models.KnowledgeFile{
			Path:        p,
			Name:        name,
			DisplayName: displayName(name),
			Category:    category,
			Date:        fileDate(name),
			SHA:         entry.GetSHA(),
		})
	}
	sortKnowledge(files)

	if err := s.store.PutCache(ctx, cacheKnowledgeTree, files); err != nil {
		s.log.WithError(err).Warn("writing knowledge cache failed")
	}
	return files, nil
}

func (s *knowledgeService) Content(ctx context.Context, filePath string) (string, error) {
	if !strings.HasPrefix(filePath, knowledgeRoot) || strings.Contains(filePath, "..") {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, filePath)
	}

	client, err := s.src.Client(ctx)
	if err != nil {
		return "", err
	}

	content, _, err := client.GetFileContent(ctx, filePath, s.ref)
	if err != nil {
		return "", err
	}
	return content, nil
}

func (s *knowledgeService) Search(ctx context.Context, query string) (models.KnowledgeSearch, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minSearchLength {
		return models.KnowledgeSearch{Results: []models.KnowledgeSearchResult{}, RateLimitRemaining: -1, RateLimited: s.limited()}, nil
	}

	client, err := s.src.Client(ctx)
	if err != nil {
		return models.KnowledgeSearch{}, err
	}

	results, remaining, err := client.SearchCode(ctx, fmt.Sprintf("%s path:Knowledge extension:md", query))
	if err != nil {
		return models.KnowledgeSearch{}, err
	}

	out := models.KnowledgeSearch{
		Results:            make([]models.KnowledgeSearchResult, 0, len(results)),
		RateLimitRemaining: remaining,
	}
	for _, r := range results {
		if r == nil {
			continue
		}
		name := path.Base(r.GetPath())
		category, _ := categorize(r.GetPath())

		matches := make([]string, 0, maxTextMatches)
		for _, tm := range r.TextMatches {
			if len(matches) == maxTextMatches {
				break
			}
			matches = append(matches, tm.GetFragment())
		}

		out.Results = append(out.Results, models.KnowledgeSearchResult{
			Path:        r.GetPath(),
			Name:        name,
			DisplayName: displayName(name),
			Category:    category,
			TextMatches: matches,
		})
	}

	if remaining < searchLowWatermark {
		s.mu.Lock()
		s.limitedUntil = s.now().Add(searchLimitedWindow)
		s.mu.Unlock()
		s.log.WithField("remaining", remaining).Warn("search quota nearly exhausted")
	}
	out.RateLimited = s.limited()

	return out, nil
}

func (s *knowledgeService) limited() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now().Before(s.limitedUntil)
}

func isKnowledgeFile(p string) bool {
	if ok, _ := doublestar.Match(promptsPattern, p); ok {
		return false
	}
	ok, _ := doublestar.Match(knowledgePattern, p)
	return ok
}

func categorize(p string) (models.KnowledgeCategory, bool) {
	for _, kp := range knowledgePrefixes {
		if strings.HasPrefix(p, kp.prefix) {
			return kp.category, true
		}
	}
	return "", false
}

func fileDate(name string) string {
	if m := datedFileName.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return ""
}

func displayName(name string) string {
	base := strings.TrimSuffix(name, ".md")
	if trimmed := datePrefix.ReplaceAllString(base, ""); trimmed != "" {
		return trimmed
	}
	return base
}

// sortKnowledge orders dated files newest first, then undated files by
// display name.
func sortKnowledge(files []models.KnowledgeFile) {
	sort.SliceStable(files, func(i, j int) bool {
		a, b := files[i], files[j]
		switch {
		case a.Date != "" && b.Date != "":
			return a.Date > b.Date
		case a.Date != "":
			return true
		case b.Date != "":
			return false
		}
		return a.DisplayName < b.DisplayName
	})
}

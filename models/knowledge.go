package models

type KnowledgeCategory string

const (
	KnowledgeReport  KnowledgeCategory = "report"
	KnowledgeBook    KnowledgeCategory = "book"
	KnowledgeNote    KnowledgeCategory = "note"
	KnowledgeTopic   KnowledgeCategory = "topic"
	KnowledgeWebclip KnowledgeCategory = "webclip"
)

var knowledgeCategoryLabels = map[KnowledgeCategory]string{
	KnowledgeReport:  "レポート",
	KnowledgeBook:    "ブック",
	KnowledgeNote:    "ノート",
	KnowledgeTopic:   "トピック",
	KnowledgeWebclip: "ウェブクリップ",
}

func (c KnowledgeCategory) Label() string {
	if l, ok := knowledgeCategoryLabels[c]; ok {
		return l
	}
	return string(c)
}

func (c KnowledgeCategory) Valid() bool {
	_, ok := knowledgeCategoryLabels[c]
	return ok
}

type KnowledgeFile struct {
	Path        string            `json:"path"`
	Name        string            `json:"name"`
	DisplayName string            `json:"displayName"`
	Category    KnowledgeCategory `json:"category"`
	Date        string            `json:"date,omitempty"`
	SHA         string            `json:"sha"`
}

type KnowledgeSearchResult struct {
	Path        string            `json:"path"`
	Name        string            `json:"name"`
	DisplayName string            `json:"displayName"`
	Category    KnowledgeCategory `json:"category,omitempty"`
	TextMatches []string          `json:"textMatches"`
}

// KnowledgeSearch is one page of search results. RateLimitRemaining is -1
// when the query was too short to be sent.
type KnowledgeSearch struct {
	Results            []KnowledgeSearchResult `json:"results"`
	RateLimitRemaining int                     `json:"rateLimitRemaining"`
	RateLimited        bool                    `json:"rateLimited"`
}

// FilterKnowledge keeps files of the given category; "" and "all" keep everything.
func FilterKnowledge(files []KnowledgeFile, category string) []KnowledgeFile {
	if category == "" || category == FilterAll {
		return files
	}
	out := make([]KnowledgeFile, 0, len(files))
	for _, f := range files {
		if string(f.Category) == category {
			out = append(out, f)
		}
	}
	return out
}

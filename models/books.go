package models

type BookTier string

const (
	TierA BookTier = "A"
	TierB BookTier = "B"
	TierC BookTier = "C"
)

type BookStatus string

const (
	BookUnread  BookStatus = "unread"
	BookReading BookStatus = "reading"
	BookRead    BookStatus = "read"
)

var bookStatusLabels = map[BookStatus]string{
	BookUnread:  "未読",
	BookReading: "読書中",
	BookRead:    "読了",
}

func (s BookStatus) Valid() bool {
	_, ok := bookStatusLabels[s]
	return ok
}

func (s BookStatus) Label() string {
	if l, ok := bookStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

type BookNote struct {
	Date string `yaml:"date" json:"date"`
	Text string `yaml:"text" json:"text"`
}

type BookEntry struct {
	Title           string     `yaml:"title" json:"title"`
	File            string     `yaml:"file" json:"file"`
	Tier            BookTier   `yaml:"tier" json:"tier"`
	Category        string     `yaml:"category" json:"category"`
	Status          BookStatus `yaml:"status" json:"status"`
	VaultConnection string     `yaml:"vault_connection,omitempty" json:"vault_connection,omitempty"`
	Notes           []BookNote `yaml:"notes" json:"notes"`
}

type ReadingLog struct {
	LastUpdated string      `yaml:"last_updated" json:"last_updated"`
	BasePath    string      `yaml:"base_path" json:"base_path"`
	Books       []BookEntry `yaml:"books" json:"books"`
}

func (l *ReadingLog) Find(file string) *BookEntry {
	for i := range l.Books {
		if l.Books[i].File == file {
			return &l.Books[i]
		}
	}
	return nil
}

func (l *ReadingLog) SummaryPath(book BookEntry) string {
	return l.BasePath + "/" + book.File
}

type BookView struct {
	BookEntry
	SummaryPath string `json:"summaryPath"`
}

type Library struct {
	Books        []BookView     `json:"books"`
	TierCounts   map[string]int `json:"tierCounts"`
	StatusCounts map[string]int `json:"statusCounts"`
	ReadCount    int            `json:"readCount"`
	ReadingCount int            `json:"readingCount"`
	Total        int            `json:"total"`
	Progress     float64        `json:"progress"`
	LastUpdated  string         `json:"lastUpdated"`
}

// BuildLibrary applies the tier and status filters ("all" or "" disables one).
// Tier counts cover the whole log, status counts only the tier-filtered books.
func BuildLibrary(log ReadingLog, tier, status string) Library {
	lib := Library{
		TierCounts:   map[string]int{FilterAll: len(log.Books), string(TierA): 0, string(TierB): 0, string(TierC): 0},
		StatusCounts: map[string]int{string(BookUnread): 0, string(BookReading): 0, string(BookRead): 0},
		Total:        len(log.Books),
		LastUpdated:  log.LastUpdated,
		Books:        []BookView{},
	}

	var byTier []BookEntry
	for _, b := range log.Books {
		lib.TierCounts[string(b.Tier)]++
		switch b.Status {
		case BookRead:
			lib.ReadCount++
		case BookReading:
			lib.ReadingCount++
		}
		if tier == "" || tier == FilterAll || string(b.Tier) == tier {
			byTier = append(byTier, b)
		}
	}

	lib.StatusCounts[FilterAll] = len(byTier)
	for _, b := range byTier {
		lib.StatusCounts[string(b.Status)]++
		if status == "" || status == FilterAll || string(b.Status) == status {
			lib.Books = append(lib.Books, BookView{BookEntry: b, SummaryPath: log.SummaryPath(b)})
		}
	}

	if lib.Total > 0 {
		lib.Progress = (float64(lib.ReadCount) + float64(lib.ReadingCount)*0.5) / float64(lib.Total)
	}
	return lib
}

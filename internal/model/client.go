package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Goal is one row of a repeating goal/amount/timeline question.
type Goal struct {
	Goal     string `json:"goal"`
	Amount   string `json:"amount"`
	Timeline string `json:"timeline"`
}

// Empty reports whether every field of the row is blank.
func (g Goal) Empty() bool {
	return g.Goal == "" && g.Amount == "" && g.Timeline == ""
}

// Answer holds the stored response for one question. Which fields are
// populated depends on the question type; an Answer with no populated
// fields is equivalent to no answer at all.
type Answer struct {
	Selections     []string          `json:"selections,omitempty"`
	Value          string            `json:"value,omitempty"`
	FollowUpChecks []string          `json:"followUpChecks,omitempty"`
	Goals          []Goal            `json:"goals,omitempty"`
	AccountValues  map[string]string `json:"accountValues,omitempty"`
	Assets         string            `json:"assets,omitempty"`
	Liabilities    string            `json:"liabilities,omitempty"`
}

// ClientRecord is the full questionnaire state for one client.
// Timestamps are epoch milliseconds to stay wire-compatible with the
// browser frontend.
type ClientRecord struct {
	ClientName string            `json:"clientName"`
	Date       string            `json:"date"` // yyyy-mm-dd
	Advisor    string            `json:"advisor"`
	Answers    map[string]Answer `json:"answers"`
	CreatedAt  int64             `json:"createdAt"`
	UpdatedAt  int64             `json:"updatedAt"`
}

// IndexEntry is the denormalized client summary kept in the list index.
// It must track the record's clientName/updatedAt on every save.
type IndexEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// NowMillis returns the current time as epoch milliseconds.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// NewClientRecord builds a fresh record for the given (already trimmed)
// client name: empty answers, today's date, createdAt == updatedAt.
func NewClientRecord(name string) *ClientRecord {
	now := NowMillis()
	return &ClientRecord{
		ClientName: name,
		Date:       time.Now().Format("2006-01-02"),
		Advisor:    "",
		Answers:    map[string]Answer{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NewClientID generates an id unique enough to avoid accidental collision:
// millisecond timestamp plus a random suffix, using only chars from the
// safe id alphabet.
func NewClientID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return "c_" + strconv.FormatInt(NowMillis(), 10) + "_" + suffix
}

// IndexEntryFor projects a record into its index form.
func IndexEntryFor(id string, rec *ClientRecord) IndexEntry {
	return IndexEntry{
		ID:        id,
		Name:      rec.ClientName,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

// Package importer turns pasted or uploaded roster text into student candidates.
package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/campus-showcase/showcase-api/internal/models"
)

// Delimiter separates the cells of a roster line. Quotes carry no meaning.
const Delimiter = ","

// RequiredColumns is the positional layout every data row must start with.
var RequiredColumns = []string{"PIN", "Name", "Branch", "Year", "Section"}

// ErrNoValidRows is returned when the input holds no acceptable data row.
var ErrNoValidRows = errors.New("no valid student rows found")

// RowError explains why one input line was rejected. Line is 1-based and counts
// every physical line of the input, blank ones included.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Result is the outcome of parsing a roster. CandidateLines holds the input
// line of each candidate.
type Result struct {
	Candidates     []models.StudentCandidate `json:"candidates"`
	CandidateLines []int                     `json:"-"`
	TotalRows      int                       `json:"totalRows"`
	Rejected       []RowError                `json:"rejected,omitempty"`
	HeaderSkip     bool                      `json:"headerSkipped"`
}

// Parse reads roster text. The first non-blank line is treated as a header when
// its first cell contains "pin" in any letter case. Rows whose first five cells
// are all present and non-empty become candidates; the rest are recorded in
// Rejected. When no row is accepted the partial result is returned together
// with ErrNoValidRows.
func Parse(text string) (*Result, error) {
	res := &Result{}
	first := true
	for i, raw := range strings.Split(normalizeNewlines(text), "\n") {
		lineNo := i + 1
		if strings.TrimSpace(raw) == "" {
			continue
		}

		cells := splitLine(raw)
		if first {
			first = false
			if isHeader(cells) {
				res.HeaderSkip = true
				continue
			}
		}

		res.TotalRows++
		candidate, reason := toCandidate(cells)
		if reason != "" {
			res.Rejected = append(res.Rejected, RowError{Line: lineNo, Reason: reason})
			continue
		}
		res.Candidates = append(res.Candidates, candidate)
		res.CandidateLines = append(res.CandidateLines, lineNo)
	}

	if len(res.Candidates) == 0 {
		return res, ErrNoValidRows
	}
	return res, nil
}

func normalizeNewlines(text string) string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

func splitLine(line string) []string {
	cells := strings.Split(line, Delimiter)
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

func isHeader(cells []string) bool {
	return len(cells) > 0 && strings.Contains(strings.ToLower(cells[0]), "pin")
}

func toCandidate(cells []string) (models.StudentCandidate, string) {
	if len(cells) < len(RequiredColumns) {
		return models.StudentCandidate{}, fmt.Sprintf("expected at least %d columns, got %d", len(RequiredColumns), len(cells))
	}
	for i, name := range RequiredColumns {
		if cells[i] == "" {
			return models.StudentCandidate{}, fmt.Sprintf("%s is empty", name)
		}
	}
	return models.StudentCandidate{
		PIN:     cells[0],
		Name:    cells[1],
		Branch:  cells[2],
		Year:    cells[3],
		Section: cells[4],
	}, ""
}

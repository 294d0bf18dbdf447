// Package importer parses eBuddie-style cookie report exports (CSV) and
// maps their columns onto catalog cookie codes and their rows onto rostered
// scouts. Matching is best-effort: case-insensitive substring containment
// against both the cookie codes and their display labels, and against scout
// names and usernames. Unmatched rows and columns are reported, not fatal.
package importer

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"troop_cookies/internal/catalog"
	"troop_cookies/internal/models"
)

// Cell is one matched import value: a scout name as it appeared in the
// report plus a cookie quantity.
type Cell struct {
	ScoutName  string
	CookieType string
	Quantity   int
}

// Report is the parsed import file.
type Report struct {
	Cells  []Cell
	Errors []string
}

// nameColumns are header names that identify the scout column.
var nameColumns = []string{"name", "scout", "girl", "member", "username"}

func isNameColumn(header string) bool {
	h := strings.ToLower(strings.TrimSpace(header))
	for _, candidate := range nameColumns {
		if strings.Contains(h, candidate) {
			return true
		}
	}
	return false
}

// matchCookieColumn maps a report header to a catalog code, or "" when the
// header names no known cookie.
func matchCookieColumn(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	if h == "" {
		return ""
	}
	for _, code := range catalog.CookieTypes {
		if strings.Contains(h, strings.ToLower(code)) {
			return code
		}
		label := strings.ToLower(catalog.Labels[code])
		if strings.Contains(h, label) || strings.Contains(label, h) {
			return code
		}
	}
	return ""
}

func parseQuantity(raw string) int {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if cleaned == "" {
		return 0
	}
	qty, err := strconv.Atoi(cleaned)
	if err != nil || qty < 0 {
		return 0
	}
	return qty
}

// Parse reads a CSV report. The first row is the header; the scout name is
// taken from a column whose header looks like a name column, falling back to
// the first column.
func Parse(csvText string) (*Report, error) {
	reader := csv.NewReader(strings.NewReader(csvText))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("parsing report: no data rows")
	}

	header := rows[0]
	nameIdx := 0
	for i, h := range header {
		if isNameColumn(h) {
			nameIdx = i
			break
		}
	}

	report := &Report{}
	cookieColumns := make(map[int]string)
	for i, h := range header {
		if i == nameIdx {
			continue
		}
		code := matchCookieColumn(h)
		if code == "" {
			if strings.TrimSpace(h) != "" {
				report.Errors = append(report.Errors, fmt.Sprintf("column %q does not match any cookie type", strings.TrimSpace(h)))
			}
			continue
		}
		cookieColumns[i] = code
	}

	if len(cookieColumns) == 0 {
		report.Errors = append(report.Errors, "no cookie columns recognized in header")
		return report, nil
	}

	for rowNum, row := range rows[1:] {
		if nameIdx >= len(row) {
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: missing scout name", rowNum+2))
			continue
		}
		scoutName := strings.TrimSpace(row[nameIdx])
		if scoutName == "" {
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: missing scout name", rowNum+2))
			continue
		}

		for idx, code := range cookieColumns {
			if idx >= len(row) {
				continue
			}
			if qty := parseQuantity(row[idx]); qty > 0 {
				report.Cells = append(report.Cells, Cell{ScoutName: scoutName, CookieType: code, Quantity: qty})
			}
		}
	}

	return report, nil
}

// MatchScout finds the rostered scout whose name or username contains (or is
// contained by) the reported name, case-insensitively. Returns nil when no
// scout matches.
func MatchScout(users []models.User, reportedName string) *models.User {
	needle := strings.ToLower(strings.TrimSpace(reportedName))
	if needle == "" {
		return nil
	}
	for i := range users {
		name := strings.ToLower(users[i].Name)
		username := strings.ToLower(users[i].Username)
		if name == needle || username == needle {
			return &users[i]
		}
	}
	for i := range users {
		name := strings.ToLower(users[i].Name)
		if strings.Contains(name, needle) || strings.Contains(needle, name) {
			return &users[i]
		}
	}
	return nil
}

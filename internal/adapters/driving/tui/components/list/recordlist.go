// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/styles"
	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
)

// RecordList displays parse records in a navigable list.
type RecordList struct {
	records  []domain.ParseRecord
	total    int
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewRecordList creates a new record list component.
func NewRecordList(s *styles.Styles) *RecordList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &RecordList{
		records:  nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the record list.
func (r *RecordList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *RecordList) Update(msg tea.Msg) (*RecordList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			r.MoveUp()
		case tea.KeyDown:
			r.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			r.MoveUp()
		case "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the record list.
func (r *RecordList) View() string {
	if len(r.records) == 0 {
		return r.styles.Muted.Render("No records")
	}

	lines := make([]string, 0, len(r.records)*2+2)

	// Header
	header := r.styles.Subtitle.Render(fmt.Sprintf("History (%d of %d)", len(r.records), r.total))
	lines = append(lines, header, "")

	// Each record takes 2 lines (title line + detail line), plus header
	visibleCount := (r.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.records) {
		end = len(r.records)
	}

	for i := start; i < end; i++ {
		line := r.renderRecord(i, &r.records[i])
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderRecord formats a single parse record with a detail line.
func (r *RecordList) renderRecord(index int, record *domain.ParseRecord) string {
	// Indicator for selected item
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	title := record.Title
	if title == "" {
		title = domain.Snippet(record.Input, 60)
	}
	if title == "" {
		title = "(Untitled)"
	}

	// Truncate title if too long
	maxTitleLen := r.width - 20
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	status := record.Status.String()

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitleLen, title, status))
	} else {
		titleLine = r.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxTitleLen, title)) +
			r.statusStyle(record.Status).Render(status)
	}

	// Detail line: failure reason, filed destination, or the submitted input
	detail := ""
	switch {
	case record.Status == domain.ParseStatusFailed && record.Error != "":
		detail = record.Error
	case record.Filed():
		detail = "filed → " + record.NotebookID
	default:
		detail = record.Input
	}

	maxDetailLen := r.width - 6
	if maxDetailLen < 20 {
		maxDetailLen = 20
	}
	if len(detail) > maxDetailLen {
		detail = detail[:maxDetailLen-3] + "..."
	}

	detailLine := r.styles.Muted.Render("    " + detail)

	return titleLine + "\n" + detailLine
}

// statusStyle picks a style for the record status column.
func (r *RecordList) statusStyle(status domain.ParseStatus) lipgloss.Style {
	if status == domain.ParseStatusFailed {
		return r.styles.Error
	}
	return r.styles.Muted
}

// SetRecords updates the record list.
func (r *RecordList) SetRecords(records []domain.ParseRecord, total int) {
	r.records = records
	r.total = total
	r.selected = 0
}

// Records returns the current records.
func (r *RecordList) Records() []domain.ParseRecord {
	return r.records
}

// Total returns the total number of records in the history.
func (r *RecordList) Total() int {
	return r.total
}

// Selected returns the index of the selected record.
func (r *RecordList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *RecordList) SetSelected(index int) {
	if index >= 0 && index < len(r.records) {
		r.selected = index
	}
}

// SelectedRecord returns the currently selected record, or nil if none.
func (r *RecordList) SelectedRecord() *domain.ParseRecord {
	if len(r.records) == 0 || r.selected < 0 || r.selected >= len(r.records) {
		return nil
	}
	return &r.records[r.selected]
}

// MoveUp moves selection up.
func (r *RecordList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *RecordList) MoveDown() {
	if r.selected < len(r.records)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *RecordList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *RecordList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *RecordList) Height() int {
	return r.height
}

// Count returns the number of records.
func (r *RecordList) Count() int {
	return len(r.records)
}

// IsEmpty returns whether the list is empty.
func (r *RecordList) IsEmpty() bool {
	return len(r.records) == 0
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-edu-resources/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type printer struct {
	out  io.Writer
	json bool
}

// result prints v as JSON, or calls human otherwise.
func (p *printer) result(v any, human func()) error {
	if p.json {
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	human()
	return nil
}

func (p *printer) table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(p.out, t.Render())
}

// fields prints key/value pairs, skipping empty values.
func (p *printer) fields(pairs ...[2]string) {
	rows := make([][]string, 0, len(pairs))
	for _, kv := range pairs {
		if kv[1] != "" {
			rows = append(rows, []string{kv[0], kv[1]})
		}
	}
	p.table([]string{"FIELD", "VALUE"}, rows)
}

func (p *printer) ok(format string, args ...any) {
	fmt.Fprintln(p.out, okStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// status is the JSON shape of commands that only report an outcome.
type status struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

func userFields(u models.User) [][2]string {
	role := u.Role
	if u.Admin() {
		role = models.RoleAdmin
	}
	return [][2]string{
		{"Name", u.Name},
		{"Email", u.Email},
		{"USN", u.USN},
		{"Course", u.Course},
		{"Semester", u.Semester},
		{"Role", role},
		{"Verified", yesNo(u.Verified)},
		{"Photo", u.ProfilePhoto},
		{"Member since", date(u.CreatedAt)},
	}
}

func resourceFields(r models.Resource) [][2]string {
	return [][2]string{
		{"ID", r.ID},
		{"Title", r.Title},
		{"File", r.Filename},
		{"Authors", strings.Join(r.Authors, ", ")},
		{"Tags", strings.Join(r.Tags, ", ")},
		{"Course", r.CourseCode},
		{"Branch", r.Branch},
		{"Year", r.Year},
		{"Description", r.Description},
		{"Abstract", r.Abstract},
		{"Downloads", fmt.Sprint(r.DownloadCount)},
		{"Added", date(r.CreatedAt)},
	}
}

func goalRow(g models.Goal) []string {
	state := fmt.Sprintf("%d%%", g.Progress)
	if g.Completed {
		state = "done"
	}
	return []string{g.ID, g.Title, g.TargetDate, state}
}

func date(ts models.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format("2006-01-02")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

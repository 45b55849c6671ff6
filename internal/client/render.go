package client

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-contact-keeper/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Faint(true).Width(12)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)

	stateStyles = map[models.SyncState]lipgloss.Style{
		models.Synced:   cellStyle.Foreground(lipgloss.Color("2")),
		models.ToSync:   cellStyle.Foreground(lipgloss.Color("3")),
		models.ToDelete: cellStyle.Foreground(lipgloss.Color("1")),
	}
)

const stateColumn = 5

func renderContacts(contacts []models.Contact) string {
	if len(contacts) == 0 {
		return helpStyle.Render("no contacts")
	}

	rows := make([][]string, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, []string{
			strconv.FormatInt(c.LocalID, 10),
			c.Name,
			valueOrDash(c.FirstName),
			valueOrDash(c.PhoneNumber),
			phoneTypeOrDash(c.Type),
			c.SyncState.String(),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "FIRST NAME", "PHONE", "TYPE", "STATE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == stateColumn && row < len(contacts) {
				return stateStyles[contacts[row].SyncState]
			}
			return cellStyle
		})

	return t.String()
}

func renderContact(c models.Contact) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fullName(c)))
	b.WriteString("\n")
	for _, line := range [][2]string{
		{"id", strconv.FormatInt(c.LocalID, 10)},
		{"birthday", birthdayOrDash(c)},
		{"email", valueOrDash(c.Email)},
		{"address", valueOrDash(c.Address)},
		{"zip", valueOrDash(c.Zip)},
		{"city", valueOrDash(c.City)},
		{"phone", valueOrDash(c.PhoneNumber)},
		{"type", phoneTypeOrDash(c.Type)},
		{"state", c.SyncState.String()},
	} {
		b.WriteString(labelStyle.Render(line[0]))
		b.WriteString(line[1])
		b.WriteString("\n")
	}

	return boxStyle.Render(strings.TrimSuffix(b.String(), "\n"))
}

func renderReport(r models.SyncReport) string {
	summary := fmt.Sprintf("deleted %d, pushed %d, failed %d", r.Deleted, r.Pushed, r.Failed)
	if r.OK() {
		return titleStyle.Render("sync complete") + " " + helpStyle.Render(summary)
	}
	return titleStyle.Render("sync incomplete") + " " + helpStyle.Render(summary)
}

func fullName(c models.Contact) string {
	if c.FirstName == nil || *c.FirstName == "" {
		return c.Name
	}
	return *c.FirstName + " " + c.Name
}

func valueOrDash(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "-"
	}
	return *v
}

func phoneTypeOrDash(t *models.PhoneType) string {
	if t == nil {
		return "-"
	}
	return string(*t)
}

func birthdayOrDash(c models.Contact) string {
	if c.Birthday == nil {
		return "-"
	}
	return c.Birthday.Format(dateLayout)
}

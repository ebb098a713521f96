package views

import (
	"project_showcase/internal/models"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	placeholder = "N/A"
	dateLayout  = "January 2, 2006"
)

// FilterProjects keeps the projects whose name or description contains
// term, ignoring case. A blank term keeps everything.
func FilterProjects(projects []models.Project, term string) []models.Project {
	term = strings.TrimSpace(term)
	if term == "" {
		return projects
	}

	fold := cases.Fold()
	needle := fold.String(term)

	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if strings.Contains(fold.String(p.Name), needle) || strings.Contains(fold.String(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}

// CountLabel renders "1 project" or "N projects".
func CountLabel(n int) string {
	p := message.NewPrinter(language.English)
	if n == 1 {
		return p.Sprintf("%d project", n)
	}
	return p.Sprintf("%d projects", n)
}

// FormatDate renders t as "January 2, 2006" in UTC, or N/A when absent.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return placeholder
	}
	return t.UTC().Format(dateLayout)
}

func orPlaceholder(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return placeholder
	}
	return *s
}

func textOrPlaceholder(s string) string {
	return orPlaceholder(&s)
}

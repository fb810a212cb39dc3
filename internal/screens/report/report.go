// Package report renders the final interview verdict.
package report

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/crucible/internal/interview"
	"github.com/abhisek/crucible/internal/screen"
	"github.com/abhisek/crucible/internal/ui/layout"
	"github.com/abhisek/crucible/internal/ui/theme"
)

// ReportScreen implements screen.Screen for the final verdict view.
type ReportScreen struct {
	verdict *interview.Verdict
	logPath string
	scroll  int
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a report screen. A nil verdict renders a placeholder.
func New(verdict *interview.Verdict, logPath string) *ReportScreen {
	return &ReportScreen{verdict: verdict, logPath: logPath}
}

func (s *ReportScreen) Init() tea.Cmd {
	return nil
}

func (s *ReportScreen) Title() string {
	return "Interview Report"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
		case "down", "j":
			s.scroll++
		}
	}
	return s, nil
}

var (
	sectionStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(theme.TextDim)
	valueStyle   = lipgloss.NewStyle().Foreground(theme.Text)
	goodStyle    = lipgloss.NewStyle().Foreground(theme.Success)
	badStyle     = lipgloss.NewStyle().Foreground(theme.Error)
)

func (s *ReportScreen) View(width, height int) string {
	if s.verdict == nil {
		return lipgloss.NewStyle().Padding(1, 2).Foreground(theme.TextDim).
			Render("No report available.")
	}

	v := s.verdict
	wrap := lipgloss.NewStyle().Width(width - 6)

	var b strings.Builder

	if v.Fallback {
		b.WriteString(badStyle.Render("Report generation failed; partial verdict shown.") + "\n\n")
	}

	b.WriteString(sectionStyle.Render("Verdict") + "\n")
	b.WriteString(row("Assessed grade", string(v.AssessedGrade)))
	b.WriteString(row("Recommendation", recommendationText(v.Recommendation)))
	b.WriteString(row("Confidence", fmt.Sprintf("%d%%", v.Confidence)))
	b.WriteString("\n" + wrap.Foreground(theme.Text).Render(v.Reasoning) + "\n")

	if len(v.ConfirmedSkills) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Confirmed skills") + "\n")
		for _, sk := range v.ConfirmedSkills {
			b.WriteString("  " + goodStyle.Render("✓") + " " +
				valueStyle.Render(fmt.Sprintf("%s (%d/10)", sk.Topic, sk.Score)) + "\n")
		}
	}
	if len(v.KnowledgeGaps) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Knowledge gaps") + "\n")
		for _, sk := range v.KnowledgeGaps {
			b.WriteString("  " + badStyle.Render("✗") + " " +
				valueStyle.Render(fmt.Sprintf("%s (%d/10)", sk.Topic, sk.Score)) + "\n")
		}
	}

	b.WriteString("\n" + sectionStyle.Render("Soft skills") + "\n")
	b.WriteString(row("Clarity", fmt.Sprintf("%d/10", v.SoftSkills.Clarity)))
	b.WriteString(row("Honesty", fmt.Sprintf("%d/10", v.SoftSkills.Honesty)))
	b.WriteString(row("Engagement", fmt.Sprintf("%d/10", v.SoftSkills.Engagement)))
	if v.SoftSkills.Notes != "" {
		b.WriteString(wrap.Foreground(theme.TextDim).Render(v.SoftSkills.Notes) + "\n")
	}

	if len(v.Roadmap) > 0 {
		b.WriteString("\n" + sectionStyle.Render("What to study next") + "\n")
		for _, item := range v.Roadmap {
			b.WriteString("  • " + valueStyle.Render(item) + "\n")
		}
	}
	if len(v.Resources) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Resources") + "\n")
		for _, item := range v.Resources {
			b.WriteString("  • " + valueStyle.Render(item) + "\n")
		}
	}

	if s.logPath != "" {
		b.WriteString("\n" + labelStyle.Render("Full transcript: "+s.logPath) + "\n")
	}

	content := lipgloss.NewStyle().Padding(1, 2).Render(b.String())

	lines := strings.Split(content, "\n")
	if s.scroll > len(lines)-1 {
		s.scroll = len(lines) - 1
	}
	lines = lines[s.scroll:]
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func row(label, value string) string {
	return fmt.Sprintf("  %s %s\n",
		labelStyle.Render(fmt.Sprintf("%-16s", label+":")),
		valueStyle.Render(value))
}

func recommendationText(r interview.Recommendation) string {
	switch r {
	case interview.RecStrongHire:
		return "strong hire"
	case interview.RecHire:
		return "hire"
	case interview.RecNoHire:
		return "no hire"
	}
	return "unknown"
}

package chat

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/crucible/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var (
	interviewerLabel = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	candidateLabel   = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	noteStyle        = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
)

func (s *ChatScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Foreground(theme.Error).
			Padding(1, 2).
			Render("Interview failed: " + s.errMsg)
	}

	inputArea := s.renderInputArea(width)
	inputHeight := lipgloss.Height(inputArea)

	transcriptHeight := height - inputHeight - 1
	if transcriptHeight < 0 {
		transcriptHeight = 0
	}
	transcript := s.renderTranscript(width, transcriptHeight)

	return transcript + "\n" + inputArea
}

// renderTranscript renders the newest messages that fit in the given
// height. There is no scrollback; the session log holds the full record.
func (s *ChatScreen) renderTranscript(width, height int) string {
	bodyStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(width - 4)

	var blocks []string
	for _, e := range s.entries {
		label := interviewerLabel.Render("Interviewer")
		if e.speaker == speakerCandidate {
			label = candidateLabel.Render("You")
		}
		block := "  " + label + "\n" +
			lipgloss.NewStyle().PaddingLeft(2).Render(bodyStyle.Render(e.text))
		for _, n := range e.notes {
			block += "\n" + lipgloss.NewStyle().PaddingLeft(4).Render(
				noteStyle.Width(width-6).Render(n))
		}
		blocks = append(blocks, block)
	}

	content := strings.Join(blocks, "\n\n")
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return strings.Join(lines, "\n")
}

func (s *ChatScreen) renderInputArea(width int) string {
	if s.done {
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Padding(0, 2).
			Render("Interview complete — see the report.")
	}
	if s.waiting {
		frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
		return lipgloss.NewStyle().
			Foreground(theme.Accent).
			Padding(0, 2).
			Render(frame + " interviewer is thinking...")
	}

	box := lipgloss.NewStyle().
		Width(width-4).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(s.input.View())
	return lipgloss.NewStyle().PaddingLeft(2).Render(box)
}

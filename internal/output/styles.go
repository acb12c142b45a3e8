package output

import (
	"github.com/charmbracelet/lipgloss"
)

// SummaryStyles holds the lipgloss styles used by the summary table
type SummaryStyles struct {
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Muted  lipgloss.Style
}

// Styles are the summary styles for a color terminal
var Styles = SummaryStyles{
	Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")), // Gray
	Value:  lipgloss.NewStyle().Bold(true),
	Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
}

// PlainStyles render text unchanged, for pipes and files
var PlainStyles = SummaryStyles{
	Header: lipgloss.NewStyle(),
	Label:  lipgloss.NewStyle(),
	Value:  lipgloss.NewStyle(),
	Muted:  lipgloss.NewStyle(),
}

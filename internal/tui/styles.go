package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	helpStyle      = lipgloss.NewStyle().Faint(true)
	errorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	deletedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	pinnedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	unseenStyle    = lipgloss.NewStyle().Bold(true)
	tagStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	readerBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

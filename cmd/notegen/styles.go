package main

import "github.com/charmbracelet/lipgloss"

// cliStyles groups the lipgloss styles used for human output.
type cliStyles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Title   lipgloss.Style
	Key     lipgloss.Style
	Dim     lipgloss.Style
}

func styles() cliStyles {
	return cliStyles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Dim:     lipgloss.NewStyle().Faint(true),
	}
}

// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles of the banner and tables
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Banner   lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Border   lipgloss.Style
}

// DefaultTheme returns the default theme
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Banner: lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Header: lipgloss.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center),
		Cell:   lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right),
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Title     lipgloss.Style
	Date      lipgloss.Style
	Fill      lipgloss.Style
	FillDone  lipgloss.Style
	Track     lipgloss.Style
	Count     lipgloss.Style
	Hint      lipgloss.Style
	Celebrate lipgloss.Style
	Warn      lipgloss.Style
	Status    lipgloss.Style
	Week      WeekTheme
}

// WeekTheme groups styles used by the seven day strip.
type WeekTheme struct {
	Label lipgloss.Style
	Met   lipgloss.Style
	Short lipgloss.Style
	Today lipgloss.Style
}

// For returns the dark or light theme.
func For(dark bool) Theme {
	if dark {
		return Dark()
	}
	return Light()
}

// Dark is tuned for dark terminal backgrounds.
func Dark() Theme {
	return Theme{
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Date:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Fill:      lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		FillDone:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Track:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Count:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		Celebrate: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Week: WeekTheme{
			Label: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Met:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Short: lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
			Today: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
	}
}

// Light is tuned for light terminal backgrounds.
func Light() Theme {
	return Theme{
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("125")).Bold(true),
		Date:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Fill:      lipgloss.NewStyle().Foreground(lipgloss.Color("26")),
		FillDone:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Track:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Count:     lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Bold(true),
		Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),
		Celebrate: lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		Warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Week: WeekTheme{
			Label: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Met:   lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
			Short: lipgloss.NewStyle().Foreground(lipgloss.Color("26")),
			Today: lipgloss.NewStyle().Foreground(lipgloss.Color("125")).Bold(true),
		},
	}
}

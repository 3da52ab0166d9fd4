package tui

import "github.com/charmbracelet/lipgloss"

var (
	docStyle = lipgloss.NewStyle().
			Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")). // purple
			Padding(1, 0, 0, 0)
	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"}).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("245"))
	focusedLabelStyle = labelStyle.
				Foreground(lipgloss.Color("62"))

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 3).
			MarginTop(1)
	focusedButtonStyle = buttonStyle.
				Background(lipgloss.Color("99")).
				Underline(true)
	disabledButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("243")).
				Background(lipgloss.Color("237"))

	statusMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}) // green
	errorMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("9")) // red
	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Underline(true)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"}).
			MarginTop(1)
)

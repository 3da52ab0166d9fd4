package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type authOpenedMsg struct {
	url string
	err error
}

// openAuthCmd sends the browser to the server's consent redirect. The
// refresh token shown after the callback goes into YOUTUBE_REFRESH_TOKEN.
func openAuthCmd(openURL func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		return authOpenedMsg{url: url, err: openURL(url)}
	}
}

func (m *AppModel) handleAuthOpened(msg authOpenedMsg) {
	if msg.err != nil {
		m.logger.Error("could not open browser", msg.err)
		m.authNotice = "Open this link in your browser to authorize YouTube uploads:"
	} else {
		m.logger.Info("browser opened for YouTube authorization")
		m.authNotice = "Authorize in the browser, then save the refresh_token as YOUTUBE_REFRESH_TOKEN:"
	}
	m.authURL = msg.url
}

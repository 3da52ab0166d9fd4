package tui

import (
	"context"
	"fmt"
	"strings"

	"dog_video_factory/infrastructure/logger"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
)

type focusField int

const (
	focusPrompt focusField = iota
	focusTitle
	focusDescription
	focusTags
	focusButton
	focusCount
)

const maxFormWidth = 80

type AppModel struct {
	client  *APIClient
	logger  logger.Logger
	openURL func(string) error

	prompt      textarea.Model
	title       textinput.Model
	description textarea.Model
	tags        textinput.Model
	spinner     spinner.Model
	focus       focusField

	state    workflowState
	pending  submission
	status   string
	errMsg   string
	videoURL string

	authNotice string
	authURL    string

	// cancelled on quit
	appContext context.Context
	cancelApp  context.CancelFunc

	width  int
	height int
}

func NewAppModel(client *APIClient, log logger.Logger) *AppModel {
	appCtx, cancel := context.WithCancel(context.Background())

	prompt := textarea.New()
	prompt.Placeholder = "A golden retriever puppy playing in a sunny park, chasing a butterfly, slow motion, cinematic"
	prompt.ShowLineNumbers = false
	prompt.SetHeight(4)
	prompt.Focus()

	title := textinput.New()
	title.Placeholder = "Adorable Golden Retriever Puppy Playing"
	title.Prompt = ""

	description := textarea.New()
	description.Placeholder = "Watch this adorable AI-generated dog video!"
	description.ShowLineNumbers = false
	description.SetHeight(3)

	tags := textinput.New()
	tags.Prompt = ""
	tags.SetValue(defaultTagsField)

	m := &AppModel{
		client:      client,
		logger:      log,
		openURL:     browser.OpenURL,
		prompt:      prompt,
		title:       title,
		description: description,
		tags:        tags,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		focus:       focusPrompt,
		state:       stateIdle,
		appContext:  appCtx,
		cancelApp:   cancel,
	}
	m.setWidth(maxFormWidth)
	return m
}

func (m *AppModel) Init() tea.Cmd {
	return textarea.Blink
}

// canTrigger is false while a request is in flight or the prompt is blank.
func (m *AppModel) canTrigger() bool {
	return !m.state.loading() && strings.TrimSpace(m.prompt.Value()) != ""
}

func (m *AppModel) trigger() tea.Cmd {
	if !m.canTrigger() {
		return nil
	}

	m.pending = submission{
		prompt:      m.prompt.Value(),
		title:       withDefault(m.title.Value(), defaultTitle),
		description: withDefault(m.description.Value(), defaultDescription),
		tags:        parseTags(m.tags.Value()),
	}
	m.setState(stateGenerating)
	m.status = "Generating video with Veo 3.1..."
	m.errMsg = ""
	m.videoURL = ""

	return tea.Batch(
		m.spinner.Tick,
		generateCmd(m.appContext, m.client, m.logger, m.pending.prompt),
	)
}

func (m *AppModel) setState(next workflowState) {
	m.logger.Info(fmt.Sprintf("workflow %s -> %s", m.state, next))
	m.state = next
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.logger.Info("Ctrl+C or Esc pressed, quitting.")
			m.cancelApp()
			return m, tea.Quit
		case tea.KeyTab:
			return m, m.moveFocus(1)
		case tea.KeyShiftTab:
			return m, m.moveFocus(-1)
		case tea.KeyCtrlS:
			return m, m.trigger()
		case tea.KeyCtrlA:
			return m, openAuthCmd(m.openURL, m.client.AuthURL())
		case tea.KeyEnter:
			if m.focus == focusButton {
				return m, m.trigger()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.setWidth(min(msg.Width-6, maxFormWidth))
		return m, nil

	case spinner.TickMsg:
		// let the spinner stop once nothing is loading
		if !m.state.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case videoGeneratedMsg:
		if m.state != stateGenerating {
			return m, nil
		}
		m.setState(stateUploading)
		m.status = "Uploading to YouTube..."
		return m, uploadCmd(m.appContext, m.client, m.logger, m.pending, msg.resp)

	case videoUploadedMsg:
		if m.state != stateUploading {
			return m, nil
		}
		m.setState(stateSucceeded)
		m.videoURL = msg.resp.VideoURL
		m.status = fmt.Sprintf("Success! Video uploaded to YouTube: %s", msg.resp.VideoID)
		m.logger.Info(m.status)
		return m, nil

	case workflowErrorMsg:
		m.setState(stateFailed)
		m.errMsg = msg.err.Error()
		m.status = ""
		m.videoURL = ""
		return m, nil

	case authOpenedMsg:
		m.handleAuthOpened(msg)
		return m, nil
	}

	return m, m.updateFocused(msg)
}

func (m *AppModel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusPrompt:
		m.prompt, cmd = m.prompt.Update(msg)
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusDescription:
		m.description, cmd = m.description.Update(msg)
	case focusTags:
		m.tags, cmd = m.tags.Update(msg)
	}
	return cmd
}

func (m *AppModel) moveFocus(delta int) tea.Cmd {
	m.prompt.Blur()
	m.title.Blur()
	m.description.Blur()
	m.tags.Blur()

	m.focus = focusField((int(m.focus) + delta + int(focusCount)) % int(focusCount))

	switch m.focus {
	case focusPrompt:
		return m.prompt.Focus()
	case focusTitle:
		return m.title.Focus()
	case focusDescription:
		return m.description.Focus()
	case focusTags:
		return m.tags.Focus()
	}
	return nil
}

func (m *AppModel) setWidth(w int) {
	if w < 20 {
		w = 20
	}
	m.prompt.SetWidth(w)
	m.description.SetWidth(w)
	m.title.Width = w
	m.tags.Width = w
}

func (m *AppModel) label(text string, field focusField) string {
	if m.focus == field {
		return focusedLabelStyle.Render(text)
	}
	return labelStyle.Render(text)
}

func (m *AppModel) button() string {
	switch {
	case m.state.loading():
		return disabledButtonStyle.Render(m.spinner.View() + " Processing...")
	case !m.canTrigger():
		return disabledButtonStyle.Render("Generate & Upload to YouTube")
	case m.focus == focusButton:
		return focusedButtonStyle.Render("Generate & Upload to YouTube")
	default:
		return buttonStyle.Render("Generate & Upload to YouTube")
	}
}

func (m *AppModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🐕 Dog Video Factory"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Generate AI videos of dogs with Veo 3.1 and upload to YouTube Shorts"))
	b.WriteString("\n")

	b.WriteString(m.label("Video Prompt *", focusPrompt) + "\n")
	b.WriteString(m.prompt.View() + "\n\n")
	b.WriteString(m.label("YouTube Title", focusTitle) + "\n")
	b.WriteString(m.title.View() + "\n\n")
	b.WriteString(m.label("YouTube Description", focusDescription) + "\n")
	b.WriteString(m.description.View() + "\n\n")
	b.WriteString(m.label("Tags (comma-separated)", focusTags) + "\n")
	b.WriteString(m.tags.View() + "\n")

	b.WriteString(m.button())
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(statusMessageStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorMessageStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.videoURL != "" {
		b.WriteString(urlStyle.Render(m.videoURL))
		b.WriteString("\n")
	}
	if m.authURL != "" {
		b.WriteString("\n" + m.authNotice + "\n")
		b.WriteString(urlStyle.Render(m.authURL))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab: next field • ctrl+s: generate & upload • ctrl+a: authorize YouTube • esc: quit"))
	return docStyle.Render(b.String())
}

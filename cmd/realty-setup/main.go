package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultServerURL = "http://localhost:8000"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	tokenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			PaddingLeft(2)
)

type step int

const (
	stepEnteringUsername step = iota
	stepEnteringPassword
	stepRegistering
	stepLoggingIn
	stepComplete
)

type model struct {
	step         step
	serverURL    string
	username     string
	password     string
	currentInput string
	token        string
	message      string
	quitting     bool
}

type registerSuccessMsg struct{}
type registerConflictMsg struct{}
type loginSuccessMsg struct {
	token string
}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	serverURL := os.Getenv("REALTY_SERVER_URL")
	if serverURL == "" {
		serverURL = defaultServerURL
	}
	return model{
		step:      stepEnteringUsername,
		serverURL: serverURL,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func registerUser(serverURL, username, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"username": username,
			"password": password,
		}

		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", serverURL+"/auth/register", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable at %s: %w", serverURL, err)}
		}
		defer resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusOK:
			return registerSuccessMsg{}
		case http.StatusConflict:
			// Account already exists; fall through to login with these credentials
			return registerConflictMsg{}
		default:
			return errMsg{fmt.Errorf("registration failed with status %d", resp.StatusCode)}
		}
	}
}

func loginUser(serverURL, username, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		form := url.Values{}
		form.Set("username", username)
		form.Set("password", password)

		req, _ := http.NewRequest("POST", serverURL+"/auth/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable at %s: %w", serverURL, err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("login failed: check username and password")}
		}

		var result map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected login response: %w", err)}
		}

		token, ok := result["access_token"].(string)
		if !ok || token == "" {
			return errMsg{fmt.Errorf("login response contained no token")}
		}

		return loginSuccessMsg{token: token}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			if m.step == stepEnteringUsername || m.step == stepEnteringPassword {
				m.currentInput += msg.String()
			}

		case "enter":
			switch m.step {
			case stepEnteringUsername:
				if m.currentInput != "" {
					m.username = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.password = m.currentInput
					m.currentInput = ""
					m.step = stepRegistering
					m.message = "Registering account..."
					return m, registerUser(m.serverURL, m.username, m.password)
				}

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case registerSuccessMsg:
		m.step = stepLoggingIn
		m.message = successStyle.Render("✓ Account created, logging in...")
		return m, loginUser(m.serverURL, m.username, m.password)

	case registerConflictMsg:
		m.step = stepLoggingIn
		m.message = "Account already exists, trying to log in..."
		return m, loginUser(m.serverURL, m.username, m.password)

	case loginSuccessMsg:
		m.token = msg.token
		m.step = stepComplete
		m.message = successStyle.Render("✓ Logged in as " + m.username)

	case errMsg:
		m.message = errorStyle.Render("✗ " + msg.err.Error())
		m.step = stepEnteringUsername
		m.currentInput = ""
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("🏠 Realty Account Setup\n\n"))
	s.WriteString(fmt.Sprintf("Server: %s\n\n", m.serverURL))

	switch m.step {
	case stepEnteringUsername:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Choose a username:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Choose a password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepRegistering, stepLoggingIn:
		s.WriteString(m.message + "\n")

	case stepComplete:
		s.WriteString(m.message + "\n\n")
		s.WriteString("Your bearer token (valid for 30 minutes):\n")
		s.WriteString(tokenStyle.Render(m.token) + "\n")
		s.WriteString("\nUse it as:  Authorization: Bearer <token>\n")
		s.WriteString("\nPress Enter to exit\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

package ui

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimary))

// Spinner shows progress for a blocking operation using Bubble Tea.
// It must be stopped before any prompt is shown.
type Spinner struct {
	mu        sync.Mutex
	program   *tea.Program
	isRunning bool
	isTTY     bool
	quitCh    chan struct{}
}

type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
}

type msgUpdate string
type msgQuit struct{}

func newSpinnerModel(message string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return spinnerModel{
		spinner: s,
		message: message,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case msgUpdate:
		m.message = string(msg)
		return m, nil
	case msgQuit:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), DimStyle.Render(m.message))
}

func NewSpinner() *Spinner {
	return &Spinner{
		isTTY:  term.IsTerminal(int(os.Stderr.Fd())),
		quitCh: make(chan struct{}),
	}
}

// Start shows the spinner, or prints the message once when stderr is not a terminal.
func (s *Spinner) Start(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		s.program.Send(msgUpdate(message))
		return
	}

	if !s.isTTY {
		fmt.Fprintln(stderr, DimStyle.Render(message))
		return
	}

	s.isRunning = true
	s.quitCh = make(chan struct{})
	s.program = tea.NewProgram(newSpinnerModel(message), tea.WithOutput(os.Stderr), tea.WithInput(nil))

	go func() {
		_, _ = s.program.Run()
		close(s.quitCh)
	}()
}

// Stop hides the spinner and waits for the terminal to be released.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	program := s.program
	s.program = nil
	s.mu.Unlock()

	program.Send(msgQuit{})
	<-s.quitCh
}

// WithSpinnerResult executes a function that returns a value while showing a spinner.
func WithSpinnerResult[T any](message string, fn func() (T, error)) (T, error) {
	s := NewSpinner()
	s.Start(message)
	result, err := fn()
	s.Stop()
	return result, err
}

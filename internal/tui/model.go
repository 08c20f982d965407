// Package tui provides the terminal user interface for rangepick.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rangepick/internal/calendar"
	"github.com/javiermolinar/rangepick/internal/config"
	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/rangepick"
	"github.com/javiermolinar/rangepick/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // Typing a jump target
	ModeModal
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModePrompt:
		return "Prompt"
	case ModeModal:
		return "Modal"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone   ModalType = iota
	ModalResult           // Classified range after apply
	ModalHelp
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config     *config.Config
	classifier *rangepick.Classifier

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	today  dateutil.Date
	year   int   // displayed year
	years  []int // year options, most recent first
	grid   calendar.Year
	cursor dateutil.Date
	mode   Mode

	// Modal state
	modalType ModalType
	result    *rangepick.ClassifiedRange // last applied range

	// Overlay state
	overlay OverlayModel

	// Components
	prompt textinput.Model

	// Terminal dimensions and layout
	width        int
	height       int
	scrollOffset int // first visible month row
	focused      bool
	layoutCache  LayoutCache

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithYear sets the initially displayed year. Zero keeps today's year.
func WithYear(year int) ModelOption {
	return func(m *Model) {
		if year != 0 {
			m.setYear(calendar.ClampYear(year))
		}
	}
}

// WithToday pins "today", for tests and reproducible screenshots.
func WithToday(d dateutil.Date) ModelOption {
	return func(m *Model) {
		m.today = d
		m.years = calendar.YearOptions(d.Year(), m.config.UI.YearOptions)
		m.setYear(d.Year())
		m.cursor = d
	}
}

// WithClassifier replaces the default classifier, e.g. to attach an observer.
func WithClassifier(c *rangepick.Classifier) ModelOption {
	return func(m *Model) {
		if c != nil {
			m.classifier = c
		}
	}
}

// New creates a new TUI model.
func New(cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Placeholder = "2024-03-04, 2019, today, next-friday"
	ti.CharLimit = 32
	ti.Prompt = ""
	ti.PlaceholderStyle = styles.ModalPlaceholderStyle
	ti.TextStyle = styles.ModalInputTextStyle
	ti.Cursor.Style = styles.ModalInputCursorStyle
	ti.Cursor.TextStyle = styles.ModalInputTextStyle

	today := dateutil.Today()
	m := &Model{
		config:     cfg,
		classifier: rangepick.NewClassifier(rangepick.WithLogger(Logger())),
		theme:      t,
		styles:     styles,
		today:      today,
		years:      calendar.YearOptions(today.Year(), cfg.UI.YearOptions),
		cursor:     today,
		mode:       ModeNormal,
		prompt:     ti,
		overlay:    NewOverlayModel(),
		focused:    true,
	}
	m.setYear(today.Year())

	for _, opt := range opts {
		opt(m)
	}
	m.layoutCache = m.buildLayoutCache(0, 0)

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Result returns the last applied range, if any.
func (m Model) Result() (rangepick.ClassifiedRange, bool) {
	if m.result == nil {
		return rangepick.ClassifiedRange{}, false
	}
	return *m.result, true
}

// Selection returns the classifier's current selection.
func (m Model) Selection() rangepick.Selection {
	return m.classifier.Selection()
}

// Options configures Run.
type Options struct {
	Year     int
	Debug    bool
	Observer rangepick.Observer
}

// Run starts the TUI and blocks until the user quits. Applied ranges reach
// the caller through opts.Observer.
func Run(cfg *config.Config, opts Options) error {
	if err := InitDebugLogger(opts.Debug, cfg.Log.DebugFile, cfg.Log.Level); err != nil {
		return err
	}
	defer CloseDebugLogger()

	classifier := rangepick.NewClassifier(
		rangepick.WithLogger(Logger()),
		rangepick.WithObserver(opts.Observer),
	)
	model := New(cfg, WithYear(opts.Year), WithClassifier(classifier))

	p := tea.NewProgram(*model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

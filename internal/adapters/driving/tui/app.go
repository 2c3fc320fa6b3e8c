package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/keypad-cli/internal/adapters/driving/tui/components/display"
	"github.com/custodia-labs/keypad-cli/internal/adapters/driving/tui/components/keypad"
	"github.com/custodia-labs/keypad-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/keypad-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/keypad-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/keypad-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/keypad-cli/internal/core/domain"
	"github.com/custodia-labs/keypad-cli/internal/logger"
)

// notificationBuffer bounds how many notifications may queue between renders.
// Further notifications are dropped; the next one carries the full state anyway.
const notificationBuffer = 64

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// Keyboard input goes through Calculator.Press and mouse clicks through
// Calculator.Apply. The display never reads the result of those calls:
// it is driven by the session's notifications, so intents from any other
// driver of the same session show up too.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles  *styles.Styles
	keymap  *keymap.KeyMap
	display *display.Display
	keypad  *keypad.Keypad
	status  *status.Bar

	// notes receives session notifications from the subscriber.
	notes       chan domain.Notification
	done        chan struct{}
	unsubscribe func()

	// flash is how long a pressed key stays highlighted.
	flash time.Duration

	showHelp bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports and subscribes
// to the calculator's notifications. Call Close when done.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	profile := ports.Calculator.Profile()

	flash := domain.TUISettings{}.FlashDuration()
	if ports.Settings != nil {
		if settings, err := ports.Settings.Get(); err == nil {
			flash = settings.TUI.FlashDuration()
		} else {
			logger.Warn("loading tui settings: %v", err)
		}
	}

	a := &App{
		ports:   ports,
		ctx:     context.Background(),
		styles:  s,
		keymap:  km,
		display: display.New(s),
		keypad:  keypad.New(s, profile),
		status:  status.NewBar(s, km),
		notes:   make(chan domain.Notification, notificationBuffer),
		done:    make(chan struct{}),
		flash:   flash,
	}
	a.applyProfile(profile)
	a.display.SetState(ports.Calculator.State())
	a.status.SetPhase(ports.Calculator.State().Phase)

	a.unsubscribe = ports.Calculator.Subscribe(func(n domain.Notification) {
		select {
		case a.notes <- n:
		default:
			logger.Debug("tui: dropped notification for %s", n.Control)
		}
	})

	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Close removes the notification subscription.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
		close(a.done)
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("keypad"),
		a.waitForNotification(),
	)
}

// waitForNotification blocks until the session publishes a notification.
func (a *App) waitForNotification() tea.Cmd {
	notes, done := a.notes, a.done
	return func() tea.Msg {
		select {
		case n := <-notes:
			return messages.Notified{Notification: n}
		case <-done:
			return nil
		}
	}
}

func (a *App) expireFlash(control string, seq int) tea.Cmd {
	return tea.Tick(a.flash, func(time.Time) tea.Msg {
		return messages.FlashExpired{Control: control, Seq: seq}
	})
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.status.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case tea.MouseMsg:
		return a, a.handleMouse(msg)

	case messages.Notified:
		n := msg.Notification
		a.display.Apply(n)
		a.status.SetPhase(n.State.Phase)
		seq := a.keypad.Flash(n.Control)
		return a, tea.Batch(a.waitForNotification(), a.expireFlash(n.Control, seq))

	case messages.FlashExpired:
		a.keypad.Expire(msg.Seq)
		return a, nil

	case messages.SettingsChanged:
		profile, err := msg.Settings.ResolveProfile()
		if err != nil {
			a.setError(err)
			return a, nil
		}
		a.ports.Calculator.SetProfile(profile)
		a.applyProfile(profile)
		a.status.Clear()
		a.flash = msg.Settings.TUI.FlashDuration()
		return a, nil

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// applyProfile rebuilds the profile-dependent parts of the screen.
func (a *App) applyProfile(p domain.Profile) {
	a.keypad.SetProfile(p)
	a.keymap.Root.SetEnabled(p.SupportsSquareRoot)
	a.display.SetWidth(a.keypad.Width())
	a.status.SetProfile(p)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := msg.String()

	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return tea.Quit
	case keymap.Matches(k, a.keymap.Help):
		a.showHelp = !a.showHelp
		return nil
	}

	a.status.Clear()
	if _, _, err := a.ports.Calculator.Press(a.ctx, k); err != nil {
		a.setError(err)
	}
	return nil
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	key, ok := a.keypad.KeyAt(msg.X, msg.Y-a.keypadTop())
	if !ok {
		return nil
	}

	a.status.Clear()
	if _, err := a.ports.Calculator.Apply(a.ctx, key.Intent); err != nil {
		a.setError(err)
	}
	return nil
}

func (a *App) setError(err error) {
	a.err = err
	a.status.SetMessage(err.Error())
}

// keypadTop is the screen row of the keypad's first line.
func (a *App) keypadTop() int {
	return lipgloss.Height(a.display.View())
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	sections := []string{a.display.View(), a.keypad.View()}
	if a.showHelp {
		sections = append(sections, a.viewHelp())
	}
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	gap := a.height - lipgloss.Height(body) - 1
	if gap < 0 {
		gap = 0
	}
	return body + "\n" + strings.Repeat("\n", gap) + a.status.View()
}

// viewHelp renders the full keybinding list.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Keys"))
	for _, group := range a.keymap.FullHelp() {
		b.WriteString("\n")
		for _, binding := range group {
			if !binding.Enabled() {
				continue
			}
			h := binding.Help()
			b.WriteString(fmt.Sprintf("\n  %-10s %s", h.Key, a.styles.Help.Render(h.Desc)))
		}
	}
	return b.String()
}

// NewProgram wraps the app in a Bubbletea program using the alternate
// screen with mouse click reporting.
func (a *App) NewProgram(opts ...tea.ProgramOption) *tea.Program {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, opts...)
	return tea.NewProgram(a, opts...)
}

// Display returns the display component.
func (a *App) Display() *display.Display {
	return a.display
}

// Keypad returns the keypad component.
func (a *App) Keypad() *keypad.Keypad {
	return a.keypad
}

// ShowingHelp reports whether the help panel is open.
func (a *App) ShowingHelp() bool {
	return a.showHelp
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.status.SetWidth(width)
}

package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/keypad-cli/internal/adapters/driven/engine/govaluate"
	"github.com/custodia-labs/keypad-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/keypad-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/keypad-cli/internal/core/domain"
	"github.com/custodia-labs/keypad-cli/internal/core/services"
)

// MockSettingsService implements driving.SettingsService for testing.
type MockSettingsService struct {
	settings domain.AppSettings
	getErr   error
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	s := m.settings
	return &s, nil
}
func (m *MockSettingsService) Save(s *domain.AppSettings) error  { m.settings = *s; return nil }
func (m *MockSettingsService) SetProfile(string) error           { return nil }
func (m *MockSettingsService) SetRounding(domain.Rounding) error { return nil }
func (m *MockSettingsService) SetStrictSentinel(bool) error      { return nil }
func (m *MockSettingsService) Profile() (domain.Profile, error)  { return m.settings.ResolveProfile() }
func (m *MockSettingsService) Reload() error                     { return nil }
func (m *MockSettingsService) GetDefaults() domain.AppSettings   { return domain.DefaultAppSettings() }

func newTestApp(t *testing.T, profile domain.Profile) (*App, *services.Calculator) {
	t.Helper()
	calc := services.NewCalculator(govaluate.New(), profile)
	app, err := NewApp(NewPorts(calc, &MockSettingsService{settings: domain.DefaultAppSettings()}))
	require.NoError(t, err)
	t.Cleanup(app.Close)
	app.SetDimensions(80, 24)
	return app, calc
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// deliver feeds the next pending notification into the app.
func deliver(t *testing.T, app *App) tea.Cmd {
	t.Helper()
	select {
	case n := <-app.notes:
		_, cmd := app.Update(messages.Notified{Notification: n})
		return cmd
	default:
		t.Fatal("expected a pending notification")
		return nil
	}
}

func press(t *testing.T, app *App, msgs ...tea.KeyMsg) {
	t.Helper()
	for _, msg := range msgs {
		_, cmd := app.Update(msg)
		assert.Nil(t, cmd)
		deliver(t, app)
	}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil)
	assert.ErrorIs(t, err, ErrInvalidPorts)

	_, err = NewApp(&Ports{})
	assert.ErrorIs(t, err, ErrMissingCalculator)
}

func TestNewApp_WithoutSettings(t *testing.T) {
	calc := services.NewCalculator(govaluate.New(), domain.ClassicProfile())

	app, err := NewApp(NewPorts(calc, nil))
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, domain.DefaultFlashMillis, int(app.flash.Milliseconds()))
	assert.Equal(t, domain.ProfileClassic, app.Keypad().Profile().Name)
}

func TestNewApp_SettingsErrorFallsBack(t *testing.T) {
	calc := services.NewCalculator(govaluate.New(), domain.ClassicProfile())

	app, err := NewApp(NewPorts(calc, &MockSettingsService{getErr: errors.New("disk")}))
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, domain.DefaultFlashMillis, int(app.flash.Milliseconds()))
}

func TestApp_Init(t *testing.T) {
	app, _ := newTestApp(t, domain.ExtendedProfile())

	assert.NotNil(t, app.Init())
}

func TestApp_ViewBeforeReady(t *testing.T) {
	calc := services.NewCalculator(govaluate.New(), domain.ClassicProfile())
	app, err := NewApp(NewPorts(calc, nil))
	require.NoError(t, err)
	defer app.Close()

	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_WindowSize(t *testing.T) {
	app, _ := newTestApp(t, domain.ExtendedProfile())

	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.True(t, app.Ready())
	assert.Equal(t, 100, app.status.Width())
}

func TestApp_TypingUpdatesDisplayAndFlashes(t *testing.T) {
	app, calc := newTestApp(t, domain.ExtendedProfile())

	press(t, app, runes("1"), runes("2"), runes("+"), runes("3"))

	assert.Equal(t, "12+3", app.Display().State().Buffer)
	assert.Equal(t, "3", app.Keypad().Pressed())
	assert.Equal(t, calc.State(), app.Display().State())

	press(t, app, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "15", app.Display().State().Buffer)
	assert.Equal(t, "12+3 =", app.Display().Formula())
	assert.Equal(t, "=", app.Keypad().Pressed())
	assert.Equal(t, domain.PhaseResult, app.status.Phase())
	assert.Contains(t, app.View(), "15")
}

func TestApp_NamedKeys(t *testing.T) {
	app, _ := newTestApp(t, domain.ExtendedProfile())

	press(t, app, runes("4"), runes("2"), tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "4", app.Display().State().Buffer)
	assert.Equal(t, domain.ControlBackspace, app.Keypad().Pressed())

	press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "0", app.Display().State().Buffer)
	assert.Equal(t, domain.ControlClear, app.Keypad().Pressed())
}

func TestApp_UnknownKeyIsIgnored(t *testing.T) {
	app, _ := newTestApp(t, domain.ClassicProfile())

	_, cmd := app.Update(runes("x"))
	assert.Nil(t, cmd)

	// Square root is not on the classic keypad.
	_, cmd = app.Update(runes("r"))
	assert.Nil(t, cmd)

	assert.Empty(t, app.notes)
	assert.Equal(t, "0", app.Display().State().Buffer)
}

func TestApp_NotificationCmdsFlashAndRelisten(t *testing.T) {
	app, _ := newTestApp(t, domain.ExtendedProfile())

	_, _ = app.Update(runes("7"))
	cmd := deliver(t, app)

	require.NotNil(t, cmd)
	assert.Equal(t, "7", app.Keypad().Pressed())
}

func TestApp_FlashExpired(t *testing.T) {
	app, _ := newTestApp(t, domain.ExtendedProfile())
	press(t, app, runes("7"))
	first := app.keypad.Flash("7")
	press(t, app, runes("8"))

	app.Update(messages.FlashExpired{Control: "7", Seq: first})
	assert.Equal(t, "8", app.Keypad().Pressed())

	app.Update(messages.FlashExpired{Control: "8", Seq: first + 1})
	assert.Empty(t, app.Keypad().Pressed())
}

func TestApp_WaitForNotification(t *testing.T) {
	app, calc := newTestApp(t, domain.ExtendedProfile())

	_, err := calc.Apply(context.Background(), domain.Digit('5'))
	require.NoError(t, err)

	msg := app.waitForNotification()()
	notified, ok := msg.(messages.Notified)
	require.True(t, ok)
	assert.Equal(t, "5", notified.Notification.State.Buffer)
}

func TestApp_WaitForNotificationAfterClose(t *testing.T) {
	calc := services.NewCalculator(govaluate.New(), domain.ExtendedProfile())
	app, err := NewApp(NewPorts(calc, nil))
	require.NoError(t, err)

	app.Close()
	app.Close()

	assert.Nil(t, app.waitForNotification()())

	_, err = calc.Apply(context.Background(), domain.Digit('5'))
	require.NoError(t, err)
	assert.Empty(t, app.notes)
}

func TestApp_OtherDriversAreShown(t *testing.T) {
	app, calc := newTestApp(t, domain.ExtendedProfile())

	_, err := calc.Apply(context.Background(), domain.Digit('9'))
	require.NoError(t, err)
	deliver(t, app)

	assert.Equal(t, "9", app.Display().State().Buffer)
	assert.Equal(t, "9", app.Keypad().Pressed())
}

func TestApp_MouseClick(t *testing.T) {
	app, _ := newTestApp(t, domain.ExtendedProfile())
	top := app.keypadTop()

	// Row 1 holds 7 8 9 +.
	_, cmd := app.Update(click(1, top+styles.ButtonHeight+1))
	assert.Nil(t, cmd)
	deliver(t, app)
	assert.Equal(t, "7", app.Display().State().Buffer)

	// Row 4 column 3 is the square root on the extended keypad.
	app.Update(click(3*styles.ButtonWidth+2, top+4*styles.ButtonHeight))
	deliver(t, app)
	assert.Equal(t, "7√", app.Display().State().Buffer)
}

func TestApp_MouseIgnoredOutsideKeypad(t *testing.T) {
	app, _ := newTestApp(t, domain.ExtendedProfile())

	// The display is above the keypad.
	app.Update(click(1, 0))
	// Release events do not press keys.
	app.Update(tea.MouseMsg{X: 1, Y: app.keypadTop() + 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	// Right clicks do not press keys.
	app.Update(tea.MouseMsg{X: 1, Y: app.keypadTop() + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})

	assert.Empty(t, app.notes)
}

func TestApp_Quit(t *testing.T) {
	app, _ := newTestApp(t, domain.ExtendedProfile())

	_, cmd := app.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	_, cmd = app.Update(messages.Quit{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_HelpToggle(t *testing.T) {
	app, _ := newTestApp(t, domain.ExtendedProfile())

	app.Update(runes("?"))
	assert.True(t, app.ShowingHelp())
	assert.Contains(t, app.View(), "square root")

	app.Update(runes("?"))
	assert.False(t, app.ShowingHelp())
	assert.NotContains(t, app.View(), "square root")
}

func TestApp_HelpHidesRootOnClassic(t *testing.T) {
	app, _ := newTestApp(t, domain.ClassicProfile())

	app.Update(runes("?"))

	assert.NotContains(t, app.View(), "square root")
	assert.Contains(t, app.View(), "evaluate")
}

func TestApp_SettingsChanged(t *testing.T) {
	app, calc := newTestApp(t, domain.ExtendedProfile())
	settings := domain.DefaultAppSettings()
	settings.Calculator.Profile = domain.ProfileClassic
	settings.TUI.FlashMillis = 250

	app.Update(messages.SettingsChanged{Settings: settings})

	assert.Equal(t, domain.ProfileClassic, calc.Profile().Name)
	assert.Equal(t, domain.ProfileClassic, app.Keypad().Profile().Name)
	assert.Len(t, app.Keypad().Rows()[4], 2)
	assert.Equal(t, int64(250), app.flash.Milliseconds())
	assert.Contains(t, app.View(), "classic")
}

func TestApp_SettingsChangedInvalid(t *testing.T) {
	app, calc := newTestApp(t, domain.ExtendedProfile())
	settings := domain.DefaultAppSettings()
	settings.Calculator.Profile = "scientific"

	app.Update(messages.SettingsChanged{Settings: settings})

	assert.ErrorIs(t, app.Err(), domain.ErrUnknownProfile)
	assert.Equal(t, domain.ProfileExtended, calc.Profile().Name)
}

func TestApp_ErrorOccurred(t *testing.T) {
	app, _ := newTestApp(t, domain.ExtendedProfile())

	app.Update(messages.ErrorOccurred{Err: errors.New("watch failed")})

	assert.EqualError(t, app.Err(), "watch failed")
	assert.Contains(t, app.View(), "watch failed")

	// The next key press clears the message.
	press(t, app, runes("1"))
	assert.NotContains(t, app.View(), "watch failed")
}

func TestApp_CancelledContext(t *testing.T) {
	app, _ := newTestApp(t, domain.ExtendedProfile())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	app.WithContext(ctx)

	app.Update(runes("1"))

	assert.ErrorIs(t, app.Err(), context.Canceled)
	assert.Empty(t, app.notes)
}

func TestApp_NewProgram(t *testing.T) {
	app, _ := newTestApp(t, domain.ExtendedProfile())

	assert.NotNil(t, app.NewProgram())
}

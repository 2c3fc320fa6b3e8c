package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/keypad-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the keypad profile, result rounding and other options.

Settings are stored in ~/.keypad/config.toml. A running 'keypad tui' picks
up changes to that file immediately.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsProfileCmd = &cobra.Command{
	Use:   "profile [classic|extended]",
	Short: "Select the keypad profile",
	Long: `Select the keypad profile. Without an argument a numbered list is shown.

Available profiles:
  classic  - + - × ÷, results at full precision
  extended - adds % and √, results to two decimals

Selecting a profile clears any rounding override.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsProfile,
}

var settingsRoundingCmd = &cobra.Command{
	Use:   "rounding [whole_or_default|whole_or_fixed2]",
	Short: "Override how results are rounded",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSettingsRounding,
}

var settingsStrictCmd = &cobra.Command{
	Use:   "strict-sentinel <on|off>",
	Short: "Only reset the display after the Undefined message",
	Long: `With strict-sentinel on, typing after "Cannot divide by zero" or
"Result is undefined" appends to the message instead of replacing it.
Only "Undefined" is replaced. The default (off) replaces every error
message.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsStrict,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsProfileCmd)
	settingsCmd.AddCommand(settingsRoundingCmd)
	settingsCmd.AddCommand(settingsStrictCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	profile, err := settings.ResolveProfile()
	if err != nil {
		return fmt.Errorf("failed to resolve profile: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Calculator]")
	cmd.Printf("  Profile: %s\n", describeProfile(profile))
	rounding := profile.Rounding.Description()
	if settings.Calculator.Rounding == "" {
		rounding += " (profile default)"
	}
	cmd.Printf("  Rounding: %s\n", rounding)
	cmd.Printf("  Strict sentinel: %s\n", onOff(settings.Calculator.StrictSentinel))
	cmd.Println()

	cmd.Println("[TUI]")
	cmd.Printf("  Key flash: %s\n", settings.TUI.FlashDuration())

	return nil
}

func runSettingsProfile(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	name := ""
	if len(args) == 1 {
		name = args[0]
	} else {
		names := domain.ProfileNames()
		cmd.Println("Select Profile")
		cmd.Println("--------------")
		for i, n := range names {
			p, _ := domain.ProfileByName(n) //nolint:errcheck // names come from ProfileNames
			cmd.Printf("  %d. %s\n", i+1, describeProfile(p))
		}
		cmd.Print("\nEnter choice: ")
		idx := parseChoice(readLine(bufio.NewReader(cmd.InOrStdin())), len(names), 0)
		if idx == 0 {
			return errors.New("invalid selection")
		}
		name = names[idx-1]
	}

	if err := settingsService.SetProfile(name); err != nil {
		return fmt.Errorf("failed to set profile: %w", err)
	}
	cmd.Printf("Profile set to: %s\n", name)
	return nil
}

func runSettingsRounding(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var rounding domain.Rounding
	if len(args) == 1 {
		r, err := domain.ParseRounding(args[0])
		if err != nil {
			return err
		}
		rounding = r
	} else {
		all := domain.AllRoundings()
		cmd.Println("Select Rounding")
		cmd.Println("---------------")
		for i, r := range all {
			cmd.Printf("  %d. %s\n", i+1, r.Description())
		}
		cmd.Print("\nEnter choice: ")
		idx := parseChoice(readLine(bufio.NewReader(cmd.InOrStdin())), len(all), 0)
		if idx == 0 {
			return errors.New("invalid selection")
		}
		rounding = all[idx-1]
	}

	if err := settingsService.SetRounding(rounding); err != nil {
		return fmt.Errorf("failed to set rounding: %w", err)
	}
	cmd.Printf("Rounding set to: %s\n", rounding.Description())
	return nil
}

func runSettingsStrict(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	strict, err := parseOnOff(args[0])
	if err != nil {
		return err
	}

	if err := settingsService.SetStrictSentinel(strict); err != nil {
		return fmt.Errorf("failed to set strict sentinel: %w", err)
	}
	cmd.Printf("Strict sentinel: %s\n", onOff(strict))
	return nil
}

func describeProfile(p domain.Profile) string {
	ops := "+ - × ÷"
	if p.SupportsModulo {
		ops += " %"
	}
	if p.SupportsSquareRoot {
		ops += " √"
	}
	return fmt.Sprintf("%s (%s)", p.Name, ops)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("expected on or off, got %q", s)
	}
	return b, nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

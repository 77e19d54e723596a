package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/extracttext/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure extraction, filter and watch settings.

Settings resolve as defaults, then the config file, then EXTRACTTEXT_*
environment variables.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a single setting",
	Long: `Set a single setting by key. Run 'extracttext settings keys' to list keys.

Examples:
  extracttext settings set extract.max_length 65536
  extracttext settings set filters.disabled docconv,markdown`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List settable keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

var settingsLineBreakCmd = &cobra.Command{
	Use:   "line-break",
	Short: "Choose the line break sequence",
	Long: `Choose the sequence written between sentences, paragraphs and chunks.

Available modes:
  crlf - CR LF (Windows style, default)
  lf   - LF (Unix style)`,
	Args: cobra.NoArgs,
	RunE: runSettingsLineBreak,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	settingsCmd.AddCommand(settingsLineBreakCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	// Extract settings
	cmd.Println("[Extract]")
	cmd.Printf("  Max length: %s\n", formatMaxLength(settings.Extract.MaxLength))
	cmd.Printf("  Line break: %s\n", settings.Extract.LineBreak.Description())
	cmd.Printf("  Jobs: %d\n", settings.Extract.Jobs)
	cmd.Println()

	// Filter settings
	cmd.Println("[Filters]")
	if len(settings.Filters.Disabled) > 0 {
		cmd.Printf("  Disabled: %s\n", strings.Join(settings.Filters.Disabled, ", "))
	} else {
		cmd.Printf("  Disabled: (none)\n")
	}
	cmd.Printf("  MIME sniffing: %s\n", yesNo(settings.Filters.Sniff))
	cmd.Printf("  Readability: %s\n", yesNo(settings.Filters.Readability))
	cmd.Println()

	// Watch settings
	cmd.Println("[Watch]")
	cmd.Printf("  Events per second: %s\n", strconv.FormatFloat(settings.Watch.EventsPerSecond, 'g', -1, 64))
	cmd.Printf("  Burst: %d\n", settings.Watch.Burst)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Println(successStyle.Render(fmt.Sprintf("Set %s to %s", key, value)))
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

func runSettingsLineBreak(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Println("Select Line Break")
	cmd.Println("-----------------")
	modes := domain.AllLineBreakModes()
	current := 1
	for i, mode := range modes {
		marker := " "
		if mode == settings.Extract.LineBreak {
			marker = "*"
			current = i + 1
		}
		cmd.Printf(" %s%d. %s\n", marker, i+1, mode.Description())
	}
	cmd.Printf("\nEnter choice [%d]: ", current)
	choice := parseChoice(readLine(reader), len(modes), current)
	selected := modes[choice-1]

	settings.Extract.LineBreak = selected
	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	cmd.Println(successStyle.Render("Set line break to: " + selected.Description()))
	return nil
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

func formatMaxLength(n int) string {
	if n == 0 {
		return "unbounded"
	}
	return strconv.Itoa(n) + " code units"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lacquerai/yearword/internal/numword"
	"github.com/lacquerai/yearword/internal/style"
)

const (
	yearPrompt = "Enter the year (4 digits): "
	banner     = "The year in words is:"
)

// sayCmd represents the say command
var sayCmd = &cobra.Command{
	Use:   "say [year]",
	Short: "Spell out a year in English words",
	Long: `Convert a four-digit year into its English-word representation.

The year may be passed as an argument; without one, yearword prompts
for it and reads a single line from standard input. Years must lie
between 1000 and 9999.`,
	Example: `
  yearword say 1984                # One thousand Nine hundred Eighty Four
  yearword say                     # prompt and read the year from stdin
  echo 2000 | yearword say         # read the year from a pipe
  yearword say 1984 --output json  # structured output for scripting`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := sayYear(cmd, args); err != nil {
			style.Error(cmd.ErrOrStderr(), "The year must contain 4 digits.")
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(sayCmd)
}

// SayResult represents the outcome of spelling out a year
type SayResult struct {
	Year  int    `json:"year" yaml:"year"`
	Words string `json:"words" yaml:"words"`
}

func sayYear(cmd *cobra.Command, args []string) error {
	year, err := resolveYear(cmd, args)
	if err != nil {
		return err
	}

	words, err := numword.Spell(year)
	if err != nil {
		return err
	}

	log.Debug().
		Int("year", year).
		Str("words", words).
		Msg("Spelled out year")

	result := SayResult{Year: year, Words: words}

	switch viper.GetString("output") {
	case "json":
		style.PrintJSON(cmd.OutOrStdout(), result)
	case "yaml":
		style.PrintYAML(cmd.OutOrStdout(), result)
	default:
		printSayResult(cmd, result)
	}

	return nil
}

// resolveYear takes the year from the positional argument when present,
// otherwise prompts and reads one line from standard input.
func resolveYear(cmd *cobra.Command, args []string) (int, error) {
	var raw string

	if len(args) == 1 {
		raw = args[0]
	} else {
		if !viper.GetBool("quiet") {
			fmt.Fprint(cmd.ErrOrStderr(), style.PromptStyle.Render(yearPrompt))
		}

		scanner := bufio.NewScanner(cmd.InOrStdin())
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("reading year: %w", err)
			}
			return 0, fmt.Errorf("no input: %w", numword.ErrNotFourDigits)
		}
		raw = scanner.Text()
	}

	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%q is not a year: %w", raw, numword.ErrNotFourDigits)
	}

	return year, nil
}

func printSayResult(cmd *cobra.Command, result SayResult) {
	if viper.GetBool("quiet") {
		fmt.Fprintln(cmd.OutOrStdout(), result.Words)
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), style.BannerStyle.Render(banner))
	fmt.Fprintln(cmd.OutOrStdout(), style.WordsStyle.Render(result.Words))
}

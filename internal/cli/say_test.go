package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacquerai/yearword/internal/numword"
)

func TestSayCommand(t *testing.T) {
	output, err := executeCommand(rootCmd, "say", "1984")
	require.NoError(t, err)
	assert.Contains(t, output, "The year in words is:")
	assert.Contains(t, output, "One thousand Nine hundred Eighty Four")
}

func TestSayCommandRoundThousand(t *testing.T) {
	output, err := executeCommand(rootCmd, "say", "2000")
	require.NoError(t, err)
	assert.Contains(t, output, "Two thousand")
	assert.NotContains(t, output, "hundred")
}

func TestSayCommandTeens(t *testing.T) {
	output, err := executeCommand(rootCmd, "say", "1015")
	require.NoError(t, err)
	assert.Contains(t, output, "One thousand Fifteen")
}

func TestSayCommandFromStdin(t *testing.T) {
	output, err := executeCommandWithInput(rootCmd, strings.NewReader("1776\n"), "say")
	require.NoError(t, err)
	assert.Contains(t, output, "Enter the year (4 digits):")
	assert.Contains(t, output, "One thousand Seven hundred Seventy Six")
}

func TestSayCommandJSON(t *testing.T) {
	output, err := executeCommand(rootCmd, "say", "1984", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, output, `"year": 1984`)
	assert.Contains(t, output, `"words": "One thousand Nine hundred Eighty Four"`)

	t.Cleanup(func() { resetOutputFlag(t) })
}

func TestSayCommandYAML(t *testing.T) {
	output, err := executeCommand(rootCmd, "say", "1984", "--output", "yaml")
	require.NoError(t, err)
	assert.Contains(t, output, "year: 1984")
	assert.Contains(t, output, "words: One thousand Nine hundred Eighty Four")

	t.Cleanup(func() { resetOutputFlag(t) })
}

func TestSayCommandQuiet(t *testing.T) {
	viper.Set("quiet", true)
	t.Cleanup(func() { viper.Set("quiet", false) })

	output, err := executeCommand(rootCmd, "say", "2525")
	require.NoError(t, err)
	assert.NotContains(t, output, "The year in words is:")
	assert.Contains(t, output, "Two thousand Five hundred Twenty Five")
}

func TestSayYearOutOfRange(t *testing.T) {
	for _, arg := range []string{"500", "999", "10000"} {
		t.Run(arg, func(t *testing.T) {
			err := sayYear(newSayTestCmd(t, ""), []string{arg})
			require.Error(t, err)
			assert.ErrorIs(t, err, numword.ErrNotFourDigits)
		})
	}
}

func TestSayYearNotANumber(t *testing.T) {
	err := sayYear(newSayTestCmd(t, ""), []string{"nineteen-eighty-four"})
	require.Error(t, err)
	assert.ErrorIs(t, err, numword.ErrNotFourDigits)
}

func TestSayYearEmptyStdin(t *testing.T) {
	err := sayYear(newSayTestCmd(t, ""), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, numword.ErrNotFourDigits)
}

func TestResolveYearTrimsWhitespace(t *testing.T) {
	year, err := resolveYear(newSayTestCmd(t, "  1984  \n"), nil)
	require.NoError(t, err)
	assert.Equal(t, 1984, year)
}

func newSayTestCmd(t *testing.T, input string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "say"}
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(input))

	return cmd
}

// resetOutputFlag restores the shared --output flag so later tests see
// the text default again.
func resetOutputFlag(t *testing.T) {
	t.Helper()
	require.NoError(t, rootCmd.PersistentFlags().Set("output", "text"))
}

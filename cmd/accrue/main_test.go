package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/accrue/internal/domain"
)

// execute runs the CLI with args and returns what it wrote to stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	return out.String(), err
}

func daysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format("2006-01-02")
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "accrue", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	out, err := execute(t)
	assert.NoError(t, err)
	assert.NotEmpty(t, out, "Expected root command to show help/usage")
}

func TestCommandSubcommands(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"calculate", "batch", "validate", "example", "version"} {
		found, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, found.Name())
	}
}

func TestCalculate_WithLoan(t *testing.T) {
	out, err := execute(t, "calculate", "--date", daysAgo(400), "--amount", "100000", "--rate", "1.5")
	require.NoError(t, err)

	assert.Contains(t, out, "The selected date was 1 year and ")
	assert.Contains(t, out, "Loan Amount: ₹1,00,000.00\n")
	assert.Contains(t, out, "Monthly Interest Rate: 1.50%\n")
	assert.Contains(t, out, "Interest Accrued: ₹")
	assert.Contains(t, out, "Total Amount Payable: ₹")
}

func TestCalculate_DateOnlyWhenNoLoanInput(t *testing.T) {
	out, err := execute(t, "calculate", "--date", daysAgo(3))
	require.NoError(t, err)

	assert.Equal(t, "The selected date was 3 days ago.\n", out)
}

func TestCalculate_DateOnlyFlag(t *testing.T) {
	out, err := execute(t, "calculate", "--date", daysAgo(1), "--amount", "abc", "--date-only")
	require.NoError(t, err)

	assert.Equal(t, "The selected date was 1 day ago.\n", out)
}

func TestCalculate_SameDay(t *testing.T) {
	out, err := execute(t, "calculate", "--date", daysAgo(0), "--amount", "500", "--rate", "2")
	require.NoError(t, err)

	assert.Equal(t, domain.MsgSameDay+"\n", out)
}

func TestCalculate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"future date", []string{"--date", daysAgo(-1)}, domain.MsgFutureDate},
		{"missing date", []string{"--amount", "100", "--rate", "1"}, domain.MsgMissingDate},
		{"bad amount", []string{"--date", daysAgo(10), "--amount", "-5", "--rate", "1"}, domain.MsgInvalidAmount},
		{"bad rate", []string{"--date", daysAgo(10), "--amount", "5", "--rate", "abc"}, domain.MsgInvalidRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"calculate"}, tt.args...)...)

			require.Error(t, err)
			assert.True(t, errors.Is(err, errValidation))
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestCalculate_JSON(t *testing.T) {
	out, err := execute(t, "calculate", "--date", daysAgo(-1), "-f", "json")
	require.Error(t, err)

	var results []domain.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.True(t, results[0].IsFutureDate())
}

func TestCalculate_UnknownFormat(t *testing.T) {
	_, err := execute(t, "calculate", "--date", daysAgo(5), "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestCalculate_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "accrue.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("locale: en-US\ncurrency_symbol: \"$\"\n"), 0o644))

	out, err := execute(t, "calculate", "--config", cfgPath, "--date", daysAgo(40), "--amount", "123456", "--rate", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Loan Amount: $123,456.00\n")
}

func TestCalculate_EnvFile(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("ACCRUE_VARIANT=date_only\n"), 0o644))

	out, err := execute(t, "calculate", "--env-file", envPath, "--date", daysAgo(2), "--amount", "x", "--rate", "y")
	require.NoError(t, err)
	assert.Equal(t, "The selected date was 2 days ago.\n", out)
}

func TestBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.yaml")
	content := "requests:\n" +
		"  - label: old loan\n" +
		"    date: \"" + daysAgo(45) + "\"\n" +
		"    amount: \"250000\"\n" +
		"    rate: \"2\"\n" +
		"  - label: tomorrow\n" +
		"    date: \"" + daysAgo(-1) + "\"\n" +
		"    amount: \"1\"\n" +
		"    rate: \"1\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := execute(t, "batch", path, "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "old loan,success,"))
	assert.True(t, strings.HasPrefix(lines[2], "tomorrow,validation_error,future_date,"))
}

func TestBatch_OutputDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requests.yaml")
	content := "variant: date_only\nrequests:\n  - date: \"" + daysAgo(2) + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	outDir := filepath.Join(dir, "reports")
	out, err := execute(t, "batch", path, "--format", "html", "--output-dir", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to ")

	matches, err := filepath.Glob(filepath.Join(outDir, "accrue_report_*.html"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "The selected date was 2 days ago.")
}

func TestValidateAndExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.yaml")

	out, err := execute(t, "example", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Example configuration saved to")

	out, err = execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("variant: yearly\n"), 0o644))
	_, err = execute(t, "validate", bad)
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "accrue dev (commit none, built unknown)"))
}

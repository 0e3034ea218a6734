package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

const invalidInputMessage = "\nInvalid input! Please try again."

// Filter axes accepted by the month/day filter prompt.
const (
	axisMonth = "month"
	axisDay   = "day"
	axisBoth  = "both"
)

// prompter writes prompts and reads one line of reply for each.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints the prompt and returns the trimmed reply.
// Returns io.EOF once the input is exhausted.
func (p *prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", err
		}
	}
	return strings.TrimSpace(line), nil
}

// askUntil repeats the prompt until parse accepts the reply.
func askUntil[T any](p *prompter, prompt, retry string, parse func(string) (T, error)) (T, error) {
	for {
		answer, err := p.ask(prompt)
		if err != nil {
			var zero T
			return zero, err
		}

		value, err := parse(answer)
		if err == nil {
			return value, nil
		}
		fmt.Fprintln(p.out, retry)
	}
}

// foldCase and titleCase build a Caser per call; Casers are not safe for
// concurrent use.
func foldCase(s string) string {
	return cases.Fold().String(s)
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// parseMenuChoice parses a 1-based menu choice no greater than maxVal.
func parseMenuChoice(input string, maxVal int) (int, error) {
	return parseIntInRange(input, 1, maxVal)
}

// parseMonth parses a filter month, 1-6.
func parseMonth(input string) (int, error) {
	return parseIntInRange(input, domain.FirstFilterMonth, domain.LastFilterMonth)
}

// parseDay parses a day of month, 1-31.
func parseDay(input string) (int, error) {
	return parseIntInRange(input, 1, 31)
}

func parseIntInRange(input string, lo, hi int) (int, error) {
	val, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, invalid("%q is not a number", input)
	}
	if val < lo || val > hi {
		return 0, invalid("%d not in %d-%d", val, lo, hi)
	}
	return val, nil
}

// parseWeekday accepts a three-letter abbreviation or a full weekday name,
// in any case, and returns the full name.
func parseWeekday(input string) (string, error) {
	input = strings.TrimSpace(input)
	if name, ok := domain.WeekdayFromAbbreviation(input); ok {
		return name, nil
	}
	if name := titleCase(input); domain.IsWeekdayName(name) {
		return name, nil
	}
	return "", invalid("unknown weekday %q", input)
}

// parseStartStep parses "start step" given on one line.
func parseStartStep(input string) (int, int, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return 0, 0, invalid("expected start and step, got %q", input)
	}

	start, err := strconv.Atoi(fields[0])
	if err != nil || start < 0 {
		return 0, 0, invalid("start must be a non-negative integer")
	}

	step, err := parseStep(fields[1])
	if err != nil {
		return 0, 0, err
	}
	return start, step, nil
}

// span is a start index and window size.
type span struct {
	start int
	step  int
}

func parseSpan(input string) (span, error) {
	start, step, err := parseStartStep(input)
	return span{start: start, step: step}, err
}

// parseStep parses a window size of at least one row.
func parseStep(input string) (int, error) {
	step, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || step < 1 {
		return 0, invalid("step must be a positive integer")
	}
	return step, nil
}

// parseYesNo accepts y, yes, n and no in any case.
func parseYesNo(input string) (bool, error) {
	switch foldCase(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, invalid("expected y or n, got %q", input)
	}
}

// parseFilterAxis accepts month, day or both in any case.
func parseFilterAxis(input string) (string, error) {
	axis := foldCase(strings.TrimSpace(input))
	switch axis {
	case axisMonth, axisDay, axisBoth:
		return axis, nil
	default:
		return "", invalid("expected month, day or both, got %q", input)
	}
}

// isYes reports whether the reply folds to "yes" exactly.
func isYes(input string) bool {
	return foldCase(strings.TrimSpace(input)) == "yes"
}

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"yashubustudio/decider/decider"
)

type cliOptions struct {
	configPath       string
	alternativesPath string
	factorsPath      string
	standard         int
	reportPath       string
	csvPath          string
	quiet            bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "decider-cli: %v\n", err)
		os.Exit(1)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "decider-cli: %v\n", err)
		var iie *decider.InsufficientInputError
		if errors.As(err, &iie) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func parseFlags() (cliOptions, error) {
	var opts cliOptions
	flag.StringVar(&opts.configPath, "config", "", "Path to decider.yaml (default: ./decider.yaml)")
	flag.StringVar(&opts.alternativesPath, "alternatives", "", "Text file seeding the alternatives list (one name per line)")
	flag.StringVar(&opts.factorsPath, "factors", "", "Text file seeding the factors list (one name per line)")
	flag.IntVar(&opts.standard, "standard", 0, "Baseline scale value, 0-1000 (overrides config)")
	flag.StringVar(&opts.reportPath, "report", "", "Write the result summary to this file (.md or .html)")
	flag.StringVar(&opts.csvPath, "csv", "", "Write elicited importances and ratings to this CSV file")
	flag.BoolVar(&opts.quiet, "quiet", false, "Skip the introduction text")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	opts.configPath = strings.TrimSpace(opts.configPath)
	opts.alternativesPath = strings.TrimSpace(opts.alternativesPath)
	opts.factorsPath = strings.TrimSpace(opts.factorsPath)
	opts.reportPath = strings.TrimSpace(opts.reportPath)
	opts.csvPath = strings.TrimSpace(opts.csvPath)
	return opts, nil
}

func run(opts cliOptions) error {
	cfg, err := decider.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.standard != 0 {
		cfg.Standard = opts.standard
	}

	ui := &termUI{
		in:    bufio.NewScanner(os.Stdin),
		out:   os.Stdout,
		quiet: opts.quiet,
	}
	for _, path := range []string{opts.alternativesPath, opts.factorsPath} {
		seed, err := readSeedLines(path)
		if err != nil {
			return err
		}
		ui.seeds = append(ui.seeds, seed)
	}

	session := decider.NewSession(ui, decider.WeightedScorer{}, cfg, nil)
	ranked, err := session.Run()
	if err != nil {
		return err
	}

	if opts.reportPath != "" {
		if err := decider.WriteReport(opts.reportPath, ranked); err != nil {
			return err
		}
		fmt.Fprintf(ui.out, "report written to %s\n", opts.reportPath)
	}
	if opts.csvPath != "" {
		f, err := os.Create(opts.csvPath)
		if err != nil {
			return fmt.Errorf("create csv: %w", err)
		}
		defer f.Close()
		if err := decider.WriteCSV(f, ui.alts, ui.factors, ui.ratings); err != nil {
			return err
		}
		fmt.Fprintf(ui.out, "csv written to %s\n", opts.csvPath)
	}
	return nil
}

// readSeedLines loads one name per line; blank lines are skipped by the
// list's own add filtering.
func readSeedLines(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return strings.Split(string(data), "\n"), nil
}

// termUI drives the elicitation session over stdin/stdout. Empty input
// confirms a step, "/cancel" abandons it.
type termUI struct {
	in    *bufio.Scanner
	out   io.Writer
	quiet bool
	seeds [][]string

	// captured in elicitation order for the -csv export
	alts    []decider.Alternative
	factors []decider.Factor
	ratings [][]float64
}

func (t *termUI) readLine(prompt string) (string, bool) {
	fmt.Fprint(t.out, prompt)
	if !t.in.Scan() {
		return "", false
	}
	return t.in.Text(), true
}

func (t *termUI) ShowIntroduction() {
	if t.quiet {
		return
	}
	fmt.Fprintln(t.out, "Decision Support Aid")
	fmt.Fprintln(t.out, "Compare alternatives against factors, then compute a preferred choice.")
	fmt.Fprintln(t.out, "All numeric values are validated to the 0-1000 scale.")
	fmt.Fprintln(t.out)
}

func (t *termUI) EditNameList(prompt decider.ListPrompt, list *decider.NameList) bool {
	if len(t.seeds) > 0 {
		seed := t.seeds[0]
		t.seeds = t.seeds[1:]
		if len(seed) > 0 {
			for _, s := range seed {
				list.Add(s)
			}
			if list.CanConfirm() {
				return true
			}
		}
	}

	fmt.Fprintf(t.out, "%s — %s\n", prompt.Title, prompt.Hint)
	fmt.Fprintln(t.out, "Empty line finishes, /rm N removes item N, /cancel abandons.")
	for {
		for i, it := range list.Items() {
			fmt.Fprintf(t.out, "  %d. %s\n", i+1, it)
		}
		line, ok := t.readLine(prompt.FieldLabel + ": ")
		if !ok {
			return false
		}
		switch {
		case strings.TrimSpace(line) == "":
			if !list.CanConfirm() {
				fmt.Fprintln(t.out, "please add at least one item")
				continue
			}
			return true
		case strings.TrimSpace(line) == "/cancel":
			return false
		case strings.HasPrefix(strings.TrimSpace(line), "/rm "):
			arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "/rm "))
			if n, err := strconv.Atoi(arg); err == nil {
				list.Remove(n - 1)
			}
		default:
			if !list.Add(line) {
				fmt.Fprintln(t.out, "name must not be empty")
			}
		}
	}
}

func (t *termUI) EditImportances(factors []decider.Factor, vec *decider.ImportanceVector) bool {
	standard := vec.Standard()
	baseline := vec.BaselineIndex()
	fmt.Fprintf(t.out, "\nFactor importances. Baseline %q is fixed at %d.\n", factors[baseline].Name, standard)
	for i := range factors {
		if i == baseline {
			continue
		}
		line, ok := t.readLine(fmt.Sprintf("importance of %s [%d]: ", factors[i].Name, vec.Get(i)))
		if !ok || strings.TrimSpace(line) == "/cancel" {
			return false
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			v = standard
		}
		vec.Set(i, v)
	}
	return true
}

func (t *termUI) EditRatings(alts []decider.Alternative, factors []decider.Factor, b *decider.MatrixBuilder) bool {
	t.alts = append([]decider.Alternative(nil), alts...)
	t.factors = append([]decider.Factor(nil), factors...)

	fmt.Fprintf(t.out, "\nRatings. %q is the anchor row, fixed at %d for every factor.\n", alts[0].Name, b.Standard())
	confirmed := t.editRatingCells(alts, factors, b)
	if confirmed {
		t.ratings = b.Confirm()
	} else {
		t.ratings = b.Abandon()
	}
	return confirmed
}

func (t *termUI) editRatingCells(alts []decider.Alternative, factors []decider.Factor, b *decider.MatrixBuilder) bool {
	for r := 1; r < len(alts); r++ {
		for c := range factors {
			line, ok := t.readLine(fmt.Sprintf("rating of %s on %s [%g]: ", alts[r].Name, factors[c].Name, b.Get(r, c)))
			if !ok || strings.TrimSpace(line) == "/cancel" {
				return false
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			b.SetString(r, c, line)
		}
	}
	return true
}

func (t *termUI) PresentResults(ranked []decider.Alternative) {
	fmt.Fprintln(t.out)
	fmt.Fprint(t.out, decider.SummaryMarkdown(ranked))
}

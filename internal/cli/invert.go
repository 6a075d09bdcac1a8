package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/invcache/cache"
	"github.com/katalvlaran/invcache/internal/config"
	"github.com/katalvlaran/invcache/matrix"
)

// ErrVerifyFailed is returned by --verify when A × A⁻¹ is not close to I.
var ErrVerifyFailed = errors.New("cli: inverse verification failed")

const (
	outputText = "text"
	outputYAML = "yaml"

	sourceComputed = "computed"
	sourceCache    = "cache"
)

// InvertFlags holds the flags of the invert command. Flags that are set
// explicitly override the scenario file.
type InvertFlags struct {
	File     string
	PivotTol float64
	NoPivot  bool
	Repeat   int
	Verify   bool
	Output   string
}

// Step is one inversion request and its outcome.
type Step struct {
	Label   string      `yaml:"label"`
	Source  string      `yaml:"source"`
	Inverse [][]float64 `yaml:"inverse"`
}

// Report is the YAML form of a whole run.
type Report struct {
	Steps    []Step `yaml:"steps"`
	Hits     uint64 `yaml:"hits"`
	Misses   uint64 `yaml:"misses"`
	Failures uint64 `yaml:"failures"`
}

func newInvertCmd() *cobra.Command {
	var flags InvertFlags

	cmd := &cobra.Command{
		Use:   "invert",
		Short: "Invert the matrix of a scenario file through the cache",
		Long: `Loads a scenario file, inverts its matrix "repeat" times and then applies each
update in order, inverting after every update.

The first request for a matrix is computed; repeated requests are served from
the cache until the matrix is replaced by an update.`,
		Example: `  invcache invert -f scenario.yaml --repeat 3 --verify`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInvert(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.File, "file", "f", "", "scenario YAML file (required)")
	cmd.Flags().Float64Var(&flags.PivotTol, "pivot-tol", matrix.DefaultPivotTolerance, "largest |pivot| treated as zero")
	cmd.Flags().BoolVar(&flags.NoPivot, "no-pivot", false, "disable partial pivoting")
	cmd.Flags().IntVar(&flags.Repeat, "repeat", config.DefaultRepeat, "number of requests for the initial matrix")
	cmd.Flags().BoolVar(&flags.Verify, "verify", false, "check A × A⁻¹ ≈ I for every result")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", outputText, "output format (text, yaml)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// runInvert executes the invert command.
func runInvert(cmd *cobra.Command, flags InvertFlags) error {
	if flags.Output != outputText && flags.Output != outputYAML {
		return fmt.Errorf("unsupported output format %q", flags.Output)
	}

	s, err := config.LoadScenario(flags.File)
	if err != nil {
		return err
	}

	opts := s.Inversion.Options()
	if cmd.Flags().Changed("pivot-tol") {
		if !(flags.PivotTol >= 0) || math.IsInf(flags.PivotTol, 1) {
			return fmt.Errorf("pivot-tol must be finite and >= 0, got %g", flags.PivotTol)
		}
		opts = append(opts, matrix.WithPivotTolerance(flags.PivotTol))
	}
	if flags.NoPivot {
		opts = append(opts, matrix.WithNoPivoting())
	}
	repeat := s.RepeatCount()
	if cmd.Flags().Changed("repeat") {
		if flags.Repeat < 0 {
			return fmt.Errorf("repeat must be >= 0, got %d", flags.Repeat)
		}
		repeat = flags.Repeat
	}

	// opts also carry the NaN/Inf policy of the matrices.
	initial, err := matrix.NewDenseFrom(s.Matrix, opts...)
	if err != nil {
		return fmt.Errorf("scenario matrix: %w", err)
	}

	r := &runner{opts: opts, verify: flags.Verify}
	r.c = cache.New(initial, cache.WithLogger(logger), cache.WithOnHit(r.markHit))

	for i := 0; i < repeat; i++ {
		if err = r.step(fmt.Sprintf("request %d", i+1)); err != nil {
			return err
		}
	}
	for i, u := range s.Updates {
		next, uerr := matrix.NewDenseFrom(u, opts...)
		if uerr != nil {
			return fmt.Errorf("scenario update %d: %w", i+1, uerr)
		}
		r.c.SetValue(next)
		logger.Debug().Int("update", i+1).Msg("matrix replaced, cache cleared")
		if err = r.step(fmt.Sprintf("update %d", i+1)); err != nil {
			return err
		}
	}

	stats := r.c.Stats()
	report := Report{Steps: r.steps, Hits: stats.Hits, Misses: stats.Misses, Failures: stats.Failures}

	if flags.Output == outputYAML {
		return writeYAML(cmd.OutOrStdout(), report)
	}

	return writeText(cmd.OutOrStdout(), report)
}

// runner performs inversion steps against one Cacheable.
type runner struct {
	c      *cache.Cacheable
	opts   []matrix.Option
	verify bool
	steps  []Step
	hit    bool // set by the OnHit hook during the current step
}

func (r *runner) markHit(matrix.Matrix) { r.hit = true }

func (r *runner) step(label string) error {
	r.hit = false
	inv, err := cache.Inverse(r.c, r.opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}

	source := sourceComputed
	if r.hit {
		source = sourceCache
	}

	if r.verify {
		rtol, atol := matrix.DefaultTolerances()
		ok, verr := matrix.CheckInverse(r.c.Value(), inv, rtol, atol)
		if verr != nil {
			return fmt.Errorf("%s: %w", label, verr)
		}
		if !ok {
			return fmt.Errorf("%s: %w", label, ErrVerifyFailed)
		}
	}

	rows, err := matrix.RowsOf(inv)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	r.steps = append(r.steps, Step{Label: label, Source: source, Inverse: rows})
	logger.Info().Str("step", label).Str("source", source).Msg("inverse ready")

	return nil
}

func writeText(w io.Writer, rep Report) error {
	var b strings.Builder
	for _, s := range rep.Steps {
		fmt.Fprintf(&b, "%s (%s):\n", s.Label, s.Source)
		for _, row := range s.Inverse {
			b.WriteString("  [")
			for j, v := range row {
				if j > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "%g", v)
			}
			b.WriteString("]\n")
		}
	}
	fmt.Fprintf(&b, "hits=%d misses=%d failures=%d\n", rep.Hits, rep.Misses, rep.Failures)

	_, err := io.WriteString(w, b.String())

	return err
}

func writeYAML(w io.Writer, rep Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	return enc.Close()
}

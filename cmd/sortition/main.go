package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/sortition/dataset"
	"github.com/katalvlaran/sortition/rational"
	"github.com/katalvlaran/sortition/tickets"
	"github.com/katalvlaran/sortition/weights"
)

var (
	// Global flags
	verbose    int
	outputPath string
	twArg      string
	tnArg      string
	sumOnly    bool
	reVerify   bool
	skipAudit  bool
	ticketCap  int64

	logger *zap.Logger
)

// rootCmd carries the shared flags; the variant subcommands do the work.
var rootCmd = &cobra.Command{
	Use:   "sortition",
	Short: "Exact minimal ticket allocations for weighted thresholds",
	Long: `sortition converts a weighted threshold structure into an unweighted
one: given party weights and two thresholds tw and tn, it finds the
smallest ticket total N and an integer assignment such that coalition
weight shares and ticket shares respect the chosen constraint.

Two constraint variants exist:
  wr  weight restriction    every coalition with weight share < tw
                            holds ticket share < tn
  wq  weight qualification  every coalition with weight share >= tw
                            holds ticket share >= tn

Weights are read as positive rationals (integers, decimals or a/b
fractions) separated by whitespace; '#' starts a comment. All arithmetic
is exact.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		switch {
		case verbose >= 2:
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		case verbose == 1:
			config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		default:
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var wrCmd = &cobra.Command{
	Use:   "wr [weights-file]",
	Short: "Solve the weight-restriction variant",
	Long: `Solves the weight-restriction instance read from the dataset file (or
standard input when the argument is absent or "-"): every coalition
commanding strictly less than tw of the weight must end up with strictly
less than tn of the tickets.

Example:
  sortition wr --tw 1/3 --tn 1/2 weights.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVariant(tickets.WeightRestriction, args)
	},
}

var wqCmd = &cobra.Command{
	Use:   "wq [weights-file]",
	Short: "Solve the weight-qualification variant",
	Long: `Solves the weight-qualification instance read from the dataset file (or
standard input when the argument is absent or "-"): every coalition
commanding at least tw of the weight must end up with at least tn of the
tickets.

Example:
  echo "0.5 0.3 0.2" | sortition wq --tw 1/3 --tn 1/2`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVariant(tickets.WeightQualification, args)
	},
}

func buildProblem(kind tickets.Kind, args []string) (*tickets.Problem, error) {
	tw, err := rational.ParseThreshold(twArg)
	if err != nil {
		return nil, fmt.Errorf("--tw: %w", err)
	}
	tn, err := rational.ParseThreshold(tnArg)
	if err != nil {
		return nil, fmt.Errorf("--tn: %w", err)
	}

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	ws, err := dataset.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("weights loaded", zap.Int("parties", len(ws)), zap.String("input", path))

	m, err := weights.NewModel(ws)
	if err != nil {
		return nil, err
	}
	return tickets.NewProblem(m, tw, tn, kind)
}

func runVariant(kind tickets.Kind, args []string) error {
	p, err := buildProblem(kind, args)
	if err != nil {
		return err
	}

	opts := tickets.DefaultOptions()
	opts.SkipAudit = skipAudit
	opts.TicketCap = ticketCap

	res, err := tickets.Solve(p, opts)
	if err != nil {
		return err
	}
	logger.Info("solved",
		zap.String("variant", kind.String()),
		zap.Int64("total", res.Total))

	if reVerify {
		if err := tickets.Verify(p, res.Tickets); err != nil {
			return fmt.Errorf("self-check: %w", err)
		}
		logger.Debug("self-check passed")
	}
	return report(res)
}

// report writes the result to --output, or standard output by default.
// --sum-only reduces the report to the total alone, matching the terse
// mode expected by table-generation scripts.
func report(res tickets.Result) error {
	out := os.Stdout
	if outputPath != "" && outputPath != "-" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		defer f.Close()
		out = f
	}

	if sumOnly {
		_, err := fmt.Fprintln(out, res.Total)
		return err
	}
	if _, err := fmt.Fprintln(out, res.Total); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, formatTickets(res.Tickets))
	return err
}

func formatTickets(ts []int64) string {
	var b strings.Builder
	for i, v := range ts {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", v)
	}
	return b.String()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "write the result to this file instead of stdout")
	rootCmd.PersistentFlags().StringVar(&twArg, "tw", "", "weight threshold in (0,1), e.g. 1/3 or 0.33")
	rootCmd.PersistentFlags().StringVar(&tnArg, "tn", "", "ticket threshold in (0,1), e.g. 1/2 or 0.5")
	rootCmd.PersistentFlags().BoolVar(&sumOnly, "sum-only", false, "print only the minimal ticket total")
	rootCmd.PersistentFlags().BoolVar(&reVerify, "verify", false, "independently re-verify the allocation before printing")
	rootCmd.PersistentFlags().BoolVar(&skipAudit, "skip-audit", false, "trust the critical-coalition scan, skip the exact audit")
	rootCmd.PersistentFlags().Int64Var(&ticketCap, "cap", 0, "upper bound on the ticket total search (0 = automatic)")

	_ = rootCmd.MarkPersistentFlagRequired("tw")
	_ = rootCmd.MarkPersistentFlagRequired("tn")

	rootCmd.AddCommand(wrCmd, wqCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

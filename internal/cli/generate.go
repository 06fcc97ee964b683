package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/stablematch/builder"
	"github.com/katalvlaran/stablematch/matching"
	"github.com/katalvlaran/stablematch/matrix"
)

// Generation methods accepted by --method.
const (
	methodRandom    = "random"
	methodIdentical = "identical"
	methodCyclic    = "cyclic"
	methodTextbook  = "textbook"
)

// GenerateResult is the JSON payload of generate when writing to a file.
type GenerateResult struct {
	Path   string `json:"path"`
	Method string `json:"method"`
	N      int    `json:"n"`
	Seed   int64  `json:"seed,omitempty"`
}

func (r GenerateResult) String() string {
	return fmt.Sprintf("Wrote %s instance (n=%d) to %s", r.Method, r.N, r.Path)
}

type generateFlags struct {
	n      int
	seed   int64
	method string
	out    string
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a preference matrix file",
		Long: `Generate an instance and write it as a preference matrix.

Without --out the matrix is printed to standard output regardless of --format.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("n") {
				flags.n = rootOpts.Config.N
			}
			if !cmd.Flags().Changed("seed") {
				flags.seed = rootOpts.Config.Seed
			}
			return runGenerate(rootOpts, flags, cmd)
		},
	}

	cmd.Flags().IntVar(&flags.n, "n", 0, "group size (default from config)")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "random seed (default from config)")
	cmd.Flags().StringVar(&flags.method, "method", methodRandom, "random|identical|cyclic|textbook")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "output file (default stdout)")

	return cmd
}

func runGenerate(opts *RootOptions, flags *generateFlags, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	var (
		con   builder.Constructor
		bopts []builder.BuilderOption
	)
	switch flags.method {
	case methodRandom:
		con = builder.Random(flags.n)
		bopts = append(bopts, builder.WithSeed(flags.seed))
	case methodIdentical:
		con = builder.Identical(flags.n)
	case methodCyclic:
		con = builder.Cyclic(flags.n)
	case methodTextbook:
		con = builder.Textbook()
	default:
		return f.Fail(NewExitError(ExitCommandError, fmt.Sprintf("unknown method %q", flags.method)))
	}

	in, err := builder.BuildInstance(bopts, con)
	if err != nil {
		return f.Fail(WrapExitError(ExitCommandError, "failed to build instance", err))
	}
	opts.logger().Debug("instance generated",
		zap.String("method", flags.method), zap.Int("n", in.N()), zap.Int64("seed", flags.seed))

	if flags.out == "" {
		return writeMatrix(cmd, in)
	}
	if err := matrix.WriteFile(flags.out, in); err != nil {
		return f.Fail(WrapExitError(ExitCommandError, "failed to write matrix", err))
	}

	res := GenerateResult{Path: flags.out, Method: flags.method, N: in.N()}
	if flags.method == methodRandom {
		res.Seed = flags.seed
	}
	return f.Success(res)
}

// writeMatrix prints in to the command's stdout without partial output on
// failure.
func writeMatrix(cmd *cobra.Command, in matching.Instance) error {
	var buf bytes.Buffer
	if err := matrix.Write(&buf, in); err != nil {
		return WrapExitError(ExitCommandError, "failed to encode matrix", err)
	}
	_, err := buf.WriteTo(cmd.OutOrStdout())
	return err
}

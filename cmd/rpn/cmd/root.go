// Package cmd implements the rpn command-line interface.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/rpn/internal/calc"
	"github.com/pengelbrecht/rpn/internal/styles"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Exit codes: usage errors are distinguished from math errors so callers
// can tell a bad invocation from an expression that cannot be computed.
const (
	exitSuccess = 0
	exitUsage   = 1
	exitMath    = 2
)

var rootCmd = &cobra.Command{
	Use:   "rpn",
	Short: "Checked integer arithmetic in reverse Polish notation",
	Long: `Evaluate a single reverse-Polish expression over 32-bit signed
integers with overflow, division-by-zero and domain checking.

Examples:
  rpn 2 3 +     # 2 + 3 = 5
  rpn 2 10 ^    # 2^10 = 1024
  rpn 5 !       # fact(5) = 120
  rpn -7 2 /    # -7 / 2 = -3`,
	Args: cobra.ArbitraryArgs,
	// Flag parsing is off so negative operands like -7 reach the parser
	// as operands; -h/--help is recognized by hand below.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			fmt.Fprint(cmd.OutOrStdout(), usageText())
			return nil
		}
	}

	req, err := calc.Parse(args)
	if err != nil {
		return err
	}

	result, err := req.Eval()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), req.Format(result))
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.RenderError(err.Error()))

		var usageErr *calc.UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprint(os.Stderr, usageText())
			return exitUsage
		}
		return exitMath
	}
	return exitSuccess
}

func usageText() string {
	var b strings.Builder
	b.WriteString(styles.RenderHeader("Usage (RPN):") + "\n")
	b.WriteString("  rpn A B OP\n")
	b.WriteString("  rpn N !\n\n")
	b.WriteString(styles.RenderHeader("Operations:") + "\n")
	b.WriteString("  +  addition\n")
	b.WriteString("  -  subtraction\n")
	b.WriteString("  x  multiplication\n")
	b.WriteString("  /  division\n")
	b.WriteString("  ^  power\n")
	b.WriteString("  !  factorial\n\n")
	b.WriteString(styles.RenderHeader("Options:") + "\n")
	b.WriteString("  -h, --help    show this help\n")
	return b.String()
}

package cmd

import (
	"io"
	"os"
	"strings"
	"testing"
)

// executeRPN runs the CLI with the given arguments, returning captured
// stdout, stderr and the exit code.
func executeRPN(t *testing.T, args ...string) (string, string, int) {
	t.Helper()

	if args == nil {
		args = []string{}
	}

	oldStdout := os.Stdout
	oldStderr := os.Stderr

	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("stdout pipe: %v", err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		t.Fatalf("stderr pipe: %v", err)
	}

	os.Stdout = outW
	os.Stderr = errW

	rootCmd.SetArgs(args)
	code := Execute()

	outW.Close()
	errW.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	stdout, _ := io.ReadAll(outR)
	stderr, _ := io.ReadAll(errR)

	return string(stdout), string(stderr), code
}

func TestEvaluateExpressions(t *testing.T) {
	cases := []struct {
		name   string
		args   []string
		stdout string
	}{
		{"addition", []string{"2", "3", "+"}, "2 + 3 = 5\n"},
		{"subtraction", []string{"2", "5", "-"}, "2 - 5 = -3\n"},
		{"multiplication", []string{"3", "4", "x"}, "3 x 4 = 12\n"},
		{"division truncates toward zero", []string{"7", "2", "/"}, "7 / 2 = 3\n"},
		{"negative dividend", []string{"-7", "2", "/"}, "-7 / 2 = -3\n"},
		{"power", []string{"2", "10", "^"}, "2^10 = 1024\n"},
		{"factorial", []string{"5", "!"}, "fact(5) = 120\n"},
		{"factorial of zero", []string{"0", "!"}, "fact(0) = 1\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr, code := executeRPN(t, tc.args...)
			if code != exitSuccess {
				t.Fatalf("exit code = %d, want %d (stderr: %s)", code, exitSuccess, stderr)
			}
			if stdout != tc.stdout {
				t.Errorf("stdout = %q, want %q", stdout, tc.stdout)
			}
		})
	}
}

func TestMathErrors(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		message string
	}{
		{"division by zero", []string{"5", "0", "/"}, "division by zero"},
		{"addition overflow", []string{"2147483647", "1", "+"}, "overflow"},
		{"subtraction overflow", []string{"-2147483648", "1", "-"}, "overflow"},
		{"division overflow", []string{"-2147483648", "-1", "/"}, "overflow"},
		{"power overflow", []string{"2", "31", "^"}, "overflow"},
		{"factorial overflow", []string{"13", "!"}, "overflow"},
		{"negative exponent", []string{"2", "-1", "^"}, "invalid argument"},
		{"negative factorial", []string{"-1", "!"}, "invalid argument"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr, code := executeRPN(t, tc.args...)
			if code != exitMath {
				t.Fatalf("exit code = %d, want %d (stdout: %s)", code, exitMath, stdout)
			}
			if !strings.Contains(stderr, "Error:") {
				t.Errorf("stderr = %q, want the Error: prefix", stderr)
			}
			if !strings.Contains(stderr, tc.message) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tc.message)
			}
		})
	}
}

func TestUsageErrors(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		message string
	}{
		{"no arguments", nil, "invalid number of arguments"},
		{"one argument", []string{"5"}, "invalid number of arguments"},
		{"four arguments", []string{"1", "2", "3", "+"}, "invalid number of arguments"},
		{"malformed operand", []string{"abc", "2", "+"}, "invalid integer: abc"},
		{"operand out of range", []string{"2147483648", "1", "+"}, "invalid integer"},
		{"multi-character operator", []string{"1", "2", "+-"}, "operation must be a single character"},
		{"unknown operator", []string{"1", "2", "%"}, "unknown operation"},
		{"factorial with two operands", []string{"5", "2", "!"}, "'!' must be used in unary form"},
		{"binary operator in unary form", []string{"5", "+"}, "unary form requires '!'"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr, code := executeRPN(t, tc.args...)
			if code != exitUsage {
				t.Fatalf("exit code = %d, want %d (stdout: %s)", code, exitUsage, stdout)
			}
			if !strings.Contains(stderr, tc.message) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tc.message)
			}
			if !strings.Contains(stderr, "Usage (RPN):") {
				t.Errorf("stderr = %q, want usage text after the diagnostic", stderr)
			}
		})
	}
}

func TestHelpFlag(t *testing.T) {
	for _, flag := range []string{"-h", "--help"} {
		t.Run(flag, func(t *testing.T) {
			stdout, _, code := executeRPN(t, flag)
			if code != exitSuccess {
				t.Fatalf("exit code = %d, want %d", code, exitSuccess)
			}
			if !strings.Contains(stdout, "Usage (RPN):") {
				t.Errorf("stdout = %q, want usage text", stdout)
			}
			for _, op := range []string{"+", "-", "x", "/", "^", "!"} {
				if !strings.Contains(stdout, op) {
					t.Errorf("stdout missing operation %q", op)
				}
			}
		})
	}
}

func TestHelpFlagAfterOperands(t *testing.T) {
	stdout, _, code := executeRPN(t, "5", "3", "--help")
	if code != exitSuccess {
		t.Fatalf("exit code = %d, want %d", code, exitSuccess)
	}
	if !strings.Contains(stdout, "Usage (RPN):") {
		t.Errorf("stdout = %q, want usage text", stdout)
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, code := executeRPN(t, "version")
	if code != exitSuccess {
		t.Fatalf("exit code = %d, want %d", code, exitSuccess)
	}
	if want := "rpn " + Version + "\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

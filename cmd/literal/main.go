// cmd/literal/main.go — command line front end for goliteral
//
// Usage:
//   literal reduce "2x(4 + 3x)"
//   literal eval "(34 + 5)^2 * 3 + 2 * 4"
//   literal repl
//   literal batch -j 8 exprs.txt
//   literal watch exprs.txt
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/repr"

	goliteral "github.com/njchilds90/goliteral"
)

const appName = "literal"

var commands = []string{"reduce", "eval", "tokenize", "latex", "tree", "repl", "batch", "watch"}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "reduce":
		os.Exit(cmdOneShot(os.Args[2:], reduceLine))
	case "eval":
		os.Exit(cmdOneShot(os.Args[2:], evalLine))
	case "tokenize":
		os.Exit(cmdOneShot(os.Args[2:], tokenizeLine))
	case "latex":
		os.Exit(cmdOneShot(os.Args[2:], latexLine))
	case "tree":
		os.Exit(cmdOneShot(os.Args[2:], treeLine))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "batch":
		os.Exit(cmdBatch(os.Args[2:]))
	case "watch":
		os.Exit(cmdWatch(os.Args[2:]))
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		if match := goliteral.ClosestMatch(cmd, commands); match != "" {
			fmt.Fprintf(os.Stderr, "did you mean %q?\n", match)
		}
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Usage:
  %s reduce <expr>             Reduce an expression.
  %s eval <expr>               Evaluate an expression without letters.
  %s tokenize <expr>           Print the normalized symbol list.
  %s latex <expr>              Reduce and print as LaTeX.
  %s tree <expr>               Dump the parsed tree.
  %s repl                      Start the interactive prompt.
  %s batch [-j n] <file>       Reduce every line of a file.
  %s watch [-j n] <file>       Re-run batch whenever the file changes.

`, appName, appName, appName, appName, appName, appName, appName, appName)
}

func cmdOneShot(args []string, run func(string) (string, error)) int {
	if len(args) == 0 {
		usage()
		return 2
	}
	out, err := run(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println(out)
	return 0
}

func reduceLine(input string) (string, error) {
	return goliteral.Calculate(input)
}

func evalLine(input string) (string, error) {
	e, err := goliteral.Parse(input)
	if err != nil {
		return "", err
	}
	v, err := goliteral.Evaluate(e)
	if err != nil {
		return "", err
	}
	return goliteral.N(v).String(), nil
}

func tokenizeLine(input string) (string, error) {
	tokens, err := goliteral.Tokenize(input)
	if err != nil {
		return "", err
	}
	return strings.Join(tokens, " "), nil
}

func latexLine(input string) (string, error) {
	e, err := goliteral.Parse(input)
	if err != nil {
		return "", err
	}
	return goliteral.Reduce(e).LaTeX(), nil
}

func treeLine(input string) (string, error) {
	e, err := goliteral.Parse(input)
	if err != nil {
		return "", err
	}
	return repr.String(e, repr.Indent("  ")), nil
}

// jobsFlag registers the shared -j flag.
func jobsFlag(fs *flag.FlagSet) *int {
	return fs.Int("j", 4, "number of lines reduced concurrently")
}

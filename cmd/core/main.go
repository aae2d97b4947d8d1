// Command core is the Core language interpreter CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	core "github.com/FrankDattalo/tokenizer"
)

const (
	appName     = "core"
	historyFile = ".core_history"
	promptMain  = "==> "
	promptCont  = "... "
)

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func main() {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Interpreter for the Core teaching language",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(runCmd(), fmtCmd(), replCmd(), versionCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(2)
	}
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func runCmd() *cobra.Command {
	var dumpAST bool
	var inputPath string

	cmd := &cobra.Command{
		Use:   "run <file.core>",
		Short: "Parse and execute a Core program",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(cmdRun(args[0], dumpAST, inputPath))
		},
	}
	cmd.Flags().BoolVar(&dumpAST, "ast", false, "dump the parsed tree to stderr before running")
	cmd.Flags().StringVar(&inputPath, "input", "", "read `read`-statement input from a file instead of stdin")
	return cmd
}

func cmdRun(file string, dumpAST bool, inputPath string) int {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	var in io.Reader = os.Stdin
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, inputPath, err)
			return 1
		}
		defer f.Close()
		in = f
	}

	if dumpAST {
		prog, perr := core.Parse(string(src))
		if perr != nil {
			fmt.Fprintln(os.Stderr, core.WrapErrorWithName(perr, file, string(src)).Error())
			return 1
		}
		fmt.Fprint(os.Stderr, core.Format(prog))
	}

	if err := core.RunNamed(file, string(src), in, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// fmt
// -----------------------------------------------------------------------------

func fmtCmd() *cobra.Command {
	var check bool
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt <file.core>",
		Short: "Print (or check) the canonical formatting of a Core program",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(cmdFmt(args[0], check, write))
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "exit 1 if the file is not canonically formatted")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file in place instead of printing")
	return cmd
}

func cmdFmt(file string, check, write bool) int {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	formatted, perr := core.Pretty(string(src))
	if perr != nil {
		fmt.Fprintln(os.Stderr, perr.Error())
		return 1
	}

	if check {
		if formatted != string(src) {
			fmt.Println(file)
			return 1
		}
		return 0
	}
	if write {
		if err := os.WriteFile(file, []byte(formatted), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot write %s: %v\n", appName, file, err)
			return 1
		}
		return 0
	}
	fmt.Print(formatted)
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Enter Core programs interactively",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(cmdRepl())
		},
	}
}

func cmdRepl() int {
	fmt.Printf("Core %s REPL\nEnter a whole program; it runs when it parses. Ctrl+C cancels input, Ctrl+D exits.\n", core.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		src, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		if strings.TrimSpace(src) == ":quit" {
			return 0
		}

		if err := core.Run(src, os.Stdin, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

// readByParseProbe accumulates lines until the probe parser stops reporting
// truncated input, then hands the whole program back.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" || strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		_, perr := core.ParseInteractive(src)
		if perr == nil || !core.IsIncomplete(perr) {
			return src, true
		}
	}
}

// -----------------------------------------------------------------------------
// version
// -----------------------------------------------------------------------------

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the interpreter version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("core %s (built %s)\n", core.Version, core.BuildDate)
		},
	}
}

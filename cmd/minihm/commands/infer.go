package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	hm "minihm"
	"minihm/env"
	"minihm/parser"
	"minihm/printer"
)

var envPath string

var inferCmd = &cobra.Command{
	Use:   "infer <expr>",
	Short: "Infer the principal type of an expression",
	Long: `infer parses expr and prints its principal type, or the error that
made inference fail.

--env loads a declaration file of "name : type" lines (blank lines and
lines starting with # are ignored) into the initial environment, so an
expression can refer to primitives that aren't part of the language
itself (e.g. "add : Int -> Int -> Int").`,
	Args: cobra.ExactArgs(1),
	RunE: runInfer,
}

func init() {
	inferCmd.Flags().StringVar(&envPath, "env", "", "path to a name : type declaration file")
}

func runInfer(cmd *cobra.Command, args []string) error {
	initial := env.New()
	if envPath != "" {
		loaded, err := loadEnv(envPath)
		if err != nil {
			return err
		}
		initial = loaded
	}

	expr, err := parser.ParseExpr(args[0])
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	ty, err := hm.New().InferExpr(initial, expr)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), printer.Print(ty))
	return nil
}

// loadEnv reads name : type declarations from path, one per line, and
// builds an Env out of them.
func loadEnv(path string) (*env.Env, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading env file: %w", err)
	}
	defer f.Close()

	e := env.New()
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, typeSrc, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%s:%d: expected \"name : type\", got %q", path, lineNo, line)
		}
		name = strings.TrimSpace(name)
		ty, err := parser.ParseType(strings.TrimSpace(typeSrc))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		e = e.Extend(name, ty)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading env file: %w", err)
	}
	return e, nil
}

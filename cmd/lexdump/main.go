package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stagas/lexer-next/internal/rulefile"
	"github.com/stagas/lexer-next/lexer"
	"github.com/stagas/lexer-next/tokenizer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		rulesFile    string
		debugLogging bool
	)
	flag.StringVar(&rulesFile, "rules", "", "Path to the YAML token rule file")
	flag.BoolVar(&debugLogging, "debug", false, "Enable debug logging")
	flag.Parse()

	zapCfg := zap.NewProductionConfig()
	if debugLogging {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zl, err := zapCfg.Build()
	if err != nil {
		return err
	}
	logger := zapr.NewLogger(zl)

	if rulesFile == "" {
		return fmt.Errorf("-rules is required")
	}
	rules, err := rulefile.Load(rulesFile)
	if err != nil {
		return fmt.Errorf("loading rule file: %w", err)
	}
	logger.V(1).Info("loaded rule file", "path", rulesFile, "rules", len(rules.Rules), "skippedGroups", len(rules.Skip))

	tokenize, err := tokenizer.New(rules.Rules)
	if err != nil {
		return fmt.Errorf("compiling rules: %w", err)
	}

	input, err := readInput(flag.Arg(0))
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	logger.V(1).Info("read input", "bytes", len(input))

	return dump(logger, tokenize, rules.SkipFilter(), input, os.Stdout)
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		buf, err := io.ReadAll(os.Stdin)
		return string(buf), err
	}
	buf, err := os.ReadFile(path)
	return string(buf), err
}

// dump advances a cursor across the entire input and writes one token per
// line in the form "index group \"value\"".
func dump(logger logr.Logger, tokenize lexer.Tokenizer, filter lexer.FilterFunc, input string, w io.Writer) error {
	lex := lexer.New(tokenize, input)
	lex.Filter(filter)

	count := 0
	for {
		tok := lex.Advance()
		if tok.IsEOF() {
			break
		}
		count++
		if _, err := fmt.Fprintf(w, "%d\t%s\t%q\n", tok.Index, tok.Group, tok.Value); err != nil {
			return err
		}
	}
	logger.V(1).Info("tokenized input", "tokens", count)
	return nil
}

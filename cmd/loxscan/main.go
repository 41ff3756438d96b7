package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/graeme-hill/loxcore-go/lib"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var log = logrus.New()

func main() {
	cfg := DefaultConfig()

	kingpin.Flag("config", "Configuration in YML format.").SetValue(&configValue{cfg: &cfg})
	kingpin.Flag("debug", "Verbose logging.").Short('d').BoolVar(&cfg.Debug)
	kingpin.Flag("sql", "Also print the SQL form of each literal.").BoolVar(&cfg.SQL)
	kingpin.Flag("eval", "Evaluate each input line as a single operator expression.").Short('e').BoolVar(&cfg.Eval)
	kingpin.Flag("read-timeout", "How long to wait for the scanner per token.").StringVar(&cfg.ReadTimeout)
	files := kingpin.Arg("files", "Source files, stdin if none.").ExistingFiles()
	kingpin.Parse()

	if cfg.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	timeout, err := cfg.readTimeout()
	if err != nil {
		kingpin.FatalUsage(err.Error())
	}
	lib.TokenReadTimeout = timeout

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if len(*files) == 0 {
		*files = []string{"-"}
	}

	failed := false
	for _, path := range *files {
		if err := run(ctx, cfg, path, os.Stdout); err != nil {
			log.WithField("file", path).Error(err)
			failed = true
		}
	}
	if failed {
		os.Exit(65)
	}
}

func run(ctx context.Context, cfg Config, path string, out io.Writer) error {
	src, err := readSource(path)
	if err != nil {
		return err
	}
	log.Debugf("[%s]: read %d bytes", path, len(src))

	if cfg.Eval {
		return evalLines(src, out)
	}
	return dumpTokens(ctx, cfg, src, out)
}

func readSource(path string) (string, error) {
	if path == "-" {
		buf, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(buf), nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func dumpTokens(ctx context.Context, cfg Config, src string, out io.Writer) error {
	stream := lib.NewTokenStream(ctx, src)
	count := 0
	for {
		tok, done, err := stream.Next()
		if err != nil {
			return err
		}
		if done {
			break
		}
		count++

		line := tok.String()
		if lit, ok := tok.Literal(); ok && cfg.SQL {
			line += "\t" + lit.SQLLiteral()
		}
		fmt.Fprintln(out, line)
	}
	log.Debugf("scanned %d tokens", count)
	return nil
}

// evalLines keeps going after a failing line and reports the first error.
func evalLines(src string, out io.Writer) error {
	var first error
	scanner := bufio.NewScanner(strings.NewReader(src))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		tokens, err := lib.ScanAll(text)
		if err == nil {
			var v lib.Value
			v, err = evalTokens(tokens)
			if err == nil {
				fmt.Fprintln(out, v)
				continue
			}
		}

		log.WithField("line", lineNo).Warn(err)
		fmt.Fprintf(out, "error: %s\n", err)
		if first == nil {
			first = err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return first
}

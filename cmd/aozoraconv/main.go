// Command aozoraconv runs the aozora pipeline over one or more UTF-8
// Aozora Bunko source files and prints the resulting element stream as
// debug lines, with any diagnostics on stderr.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/japaniel/aozora/pkg/aozora"
	"github.com/japaniel/aozora/pkg/azbatch"
	"github.com/japaniel/aozora/pkg/azretok"
	"github.com/japaniel/aozora/pkg/deco"
	"github.com/japaniel/aozora/pkg/errbag"
	"github.com/japaniel/aozora/pkg/gaiji"
)

func main() {
	inFlag := flag.String("in", "", "path to a UTF-8 Aozora Bunko source file (repeatable via comma separation)")
	outFlag := flag.String("out", "", "path to write the debug element stream (default: stdout)")
	workersFlag := flag.Int("workers", 4, "number of concurrent workers when more than one -in file is given")
	flag.Parse()

	if *inFlag == "" {
		log.Fatal("Please provide -in")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	paths := strings.Split(*inFlag, ",")
	docs := make([]string, 0, len(paths))
	for _, p := range paths {
		text, err := readUTF8NoCRLF(p)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", p, err)
		}
		docs = append(docs, text)
	}

	table, err := gaiji.Default()
	if err != nil {
		log.Fatalf("Failed to load gaiji table: %v", err)
	}

	out := os.Stdout
	if *outFlag != "" {
		f, err := os.Create(*outFlag)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *outFlag, err)
		}
		defer f.Close()
		out = f
	}

	if len(docs) == 1 {
		bag, err := aozora.Transform(docs[0], table)
		if err != nil {
			log.Fatalf("Transform failed: %v", err)
		}
		printBag(out, paths[0], bag)
		return
	}

	bags, err := azbatch.Run(ctx, docs, table, *workersFlag)
	if err != nil {
		log.Fatalf("Batch run failed: %v", err)
	}
	for i, bag := range bags {
		printBag(out, paths[i], bag)
	}
}

// readUTF8NoCRLF reads path as UTF-8 text, rejecting CRLF line endings: per
// spec.md §6, newline normalization is the caller's responsibility, never
// performed silently by the pipeline.
func readUTF8NoCRLF(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if bytes.Contains(data, []byte("\r\n")) {
		return "", fmt.Errorf("%s contains CRLF line endings; normalize to LF before conversion", path)
	}
	return string(data), nil
}

// printBag writes one debug line per element to out, prefixed with label,
// then any diagnostics the scope resolver accumulated to stderr.
func printBag(out *os.File, label string, bag errbag.Bag[[]azretok.Element]) {
	for _, e := range bag.Value {
		fmt.Fprintf(out, "%s\t%s\n", label, describeElement(e))
	}
	for _, d := range bag.Diagnostics {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", label, d.Kind, d.Message)
	}
}

func describeElement(e azretok.Element) string {
	switch e.Kind {
	case azretok.ElementText:
		return fmt.Sprintf("Text(%q)", e.Text)
	case azretok.ElementBreak:
		return fmt.Sprintf("Break(%d)", e.Break)
	case azretok.ElementOdoriji:
		return fmt.Sprintf("Odoriji(dakuten=%v)", e.Odoriji.HasDakuten)
	case azretok.ElementFigure:
		return fmt.Sprintf("Figure(%s)", e.Figure.Path)
	case azretok.ElementDecoBegin:
		return fmt.Sprintf("DecoBegin(%s)", describeDeco(e.Deco))
	case azretok.ElementDecoEnd:
		return fmt.Sprintf("DecoEnd(%s)", describeDeco(e.Deco))
	default:
		return "Unknown"
	}
}

func describeDeco(d deco.Deco) string {
	if d.Kind == deco.Ruby {
		return fmt.Sprintf("Ruby(%s)", d.Ruby)
	}
	return d.Kind.String()
}

// Command gaijigen is the offline half of the gaiji table build: it reads
// a tab-separated primary-tag source file and a JIS X 0213 reference file
// and rewrites them into the normalized plain-text form pkg/gaiji embeds
// (assets/primary.tsv, assets/jisx0213.tsv).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/japaniel/aozora/pkg/gaiji"
)

func main() {
	primaryIn := flag.String("primary-src", "", "path to a tag<TAB>replacement source file")
	jisIn := flag.String("jisx0213-src", "", "path to the public JIS X 0213 reference file")
	outDir := flag.String("out", ".", "directory to write primary.tsv and jisx0213.tsv into")
	flag.Parse()

	if *primaryIn == "" && *jisIn == "" {
		log.Fatal("Please provide -primary-src and/or -jisx0213-src")
	}

	if *primaryIn != "" {
		if err := buildPrimary(*primaryIn, *outDir+"/primary.tsv"); err != nil {
			log.Fatalf("building primary.tsv: %v", err)
		}
		fmt.Println("wrote", *outDir+"/primary.tsv")
	}
	if *jisIn != "" {
		if err := buildJISX0213(*jisIn, *outDir+"/jisx0213.tsv"); err != nil {
			log.Fatalf("building jisx0213.tsv: %v", err)
		}
		fmt.Println("wrote", *outDir+"/jisx0213.tsv")
	}
}

// buildPrimary copies every non-comment "tag<TAB>replacement" line from src
// to dst, skipping malformed lines with a warning rather than failing the
// whole build over one bad entry.
func buildPrimary(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	fmt.Fprintln(out, "# tag<TAB>replacement — generated by cmd/gaijigen")
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			log.Printf("skipping malformed primary line: %q", line)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", parts[0], parts[1])
	}
	return sc.Err()
}

// buildJISX0213 reads the reference file's JIS column ("3-RRCC"/"4-RRCC")
// and Unicode column ("U+HHHH"), validating each with the same parsers
// pkg/gaiji uses at load time, and writes the normalized form.
func buildJISX0213(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	fmt.Fprintln(out, "## JIS<TAB>Unicode — generated by cmd/gaijigen")
	sc := bufio.NewScanner(in)
	var kept, skipped int
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "##") {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) < 2 {
			skipped++
			continue
		}
		if _, ok := gaiji.ParseJISColumn(cols[0]); !ok {
			skipped++
			continue
		}
		if _, ok := gaiji.ParseUnicodeColumn(cols[1]); !ok {
			skipped++
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", strings.TrimSpace(cols[0]), strings.TrimSpace(cols[1]))
		kept++
	}
	if err := sc.Err(); err != nil {
		return err
	}
	fmt.Printf("kept %d entries, skipped %d unparseable lines\n", kept, skipped)
	return nil
}

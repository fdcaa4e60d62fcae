package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	alttex "github.com/NicholaCharlton/AltTeX-Personal"
	"github.com/NicholaCharlton/AltTeX-Personal/internal/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "alttex:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("alttex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: alttex [flags] [input.tex]")
		fs.PrintDefaults()
	}

	symbolsPath := fs.String("symbols", cfg.SymbolsPath, "CSV file with command and phrase columns")
	output := fs.String("o", "", "write the annotated document to this file instead of stdout")
	noPackage := fs.Bool("no-package", !cfg.IncludePackage, "do not declare the todonotes package")
	equation := fs.String("e", "", "print alt text of a single math payload and exit")

	if err := fs.Parse(args); errors.Is(err, flag.ErrHelp) {
		return nil
	} else if err != nil {
		return err
	}

	cfg.SymbolsPath = *symbolsPath
	cfg.LogFormat = "text"
	log := cfg.Logger(stderr)

	symbols, err := cfg.Symbols()
	if err != nil {
		return err
	}

	renderer := alttex.New(
		alttex.WithSymbols(symbols),
		alttex.WithReporter(alttex.NewSlogReporter(log, symbols)),
	)

	if *equation != "" {
		_, err := fmt.Fprintln(stdout, renderer.Equation(*equation))
		return err
	}

	input := stdin
	if fs.NArg() > 0 && fs.Arg(0) != "-" {
		file, err := os.Open(fs.Arg(0))
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}

		defer file.Close()
		input = file
	}

	doc, err := alttex.Decode(input)
	if err != nil {
		return err
	}

	if !*noPackage {
		doc, err = alttex.IncludeTodoPackage(doc)
		if errors.Is(err, alttex.ErrNoDocumentBegin) {
			log.Warn("todonotes package not declared", "error", err)
		} else if err != nil {
			return err
		}
	}

	out := renderer.Document(doc)

	if *output == "" {
		_, err = io.WriteString(stdout, out)
		return err
	}

	if err := os.WriteFile(*output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Info("annotated document written", "path", *output)
	return nil
}

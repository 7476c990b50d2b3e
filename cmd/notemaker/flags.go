package main

import (
	"flag"

	"github.com/heartmarshall/reverso-notes/internal/config"
)

// cliFlags holds command-line overrides. Only flags the user actually passed
// are applied on top of the loaded configuration.
type cliFlags struct {
	configPath      string
	sourceLang      string
	targetLang      string
	queryFile       string
	outputFile      string
	preferShort     bool
	keepPunctuation bool

	set map[string]bool
}

func parseFlags(fs *flag.FlagSet, args []string) (*cliFlags, error) {
	f := &cliFlags{set: make(map[string]bool)}

	fs.StringVar(&f.configPath, "config", "", "path to YAML config")
	for _, name := range []string{"s", "sourcelang"} {
		fs.StringVar(&f.sourceLang, name, "", "source language code of the queries (required)")
	}
	for _, name := range []string{"t", "target_lang"} {
		fs.StringVar(&f.targetLang, name, "", "target language code (default en)")
	}
	for _, name := range []string{"q", "queries"} {
		fs.StringVar(&f.queryFile, name, "", "path to the queries file (default queries.txt)")
	}
	for _, name := range []string{"o", "output"} {
		fs.StringVar(&f.outputFile, name, "", "path to the output CSV (default reverso.csv)")
	}
	fs.BoolVar(&f.preferShort, "prefer-short", false, "prefer shorter example sentences")
	fs.BoolVar(&f.keepPunctuation, "keep-punctuation", false, "keep punctuation in queries sent to Reverso")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

func (f *cliFlags) was(names ...string) bool {
	for _, n := range names {
		if f.set[n] {
			return true
		}
	}
	return false
}

// apply overrides cfg with the flags that were given.
func (f *cliFlags) apply(cfg *config.Config) {
	if f.was("s", "sourcelang") {
		cfg.Lang.Source = f.sourceLang
	}
	if f.was("t", "target_lang") {
		cfg.Lang.Target = f.targetLang
	}
	if f.was("q", "queries") {
		cfg.Files.Queries = f.queryFile
	}
	if f.was("o", "output") {
		cfg.Files.Output = f.outputFile
	}
	if f.was("prefer-short") {
		cfg.Notes.PreferShort = f.preferShort
	}
	if f.was("keep-punctuation") {
		cfg.Notes.KeepPunctuation = f.keepPunctuation
	}
}

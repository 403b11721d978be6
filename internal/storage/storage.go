// Package storage provides access to parallel corpus folders for word alignment.
package storage

import (
	"bufio"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/happyhackingspace/wordalign/corpus"
	"github.com/happyhackingspace/wordalign/internal/textutil"
)

// Storage wraps a parallel corpus folder.
type Storage struct {
	Folder string
}

// NewStorage creates a Storage for the given data folder.
func NewStorage(folder string) *Storage {
	return &Storage{Folder: folder}
}

// Config is the structure of config.json. Every field is optional.
type Config struct {
	SourceExt string `json:"source_ext"`
	TargetExt string `json:"target_ext"`
	GoldExt   string `json:"gold_ext"`
}

// DefaultConfig returns the file extensions used when config.json is absent.
func DefaultConfig() Config {
	return Config{
		SourceExt: "f",
		TargetExt: "e",
		GoldExt:   "wa",
	}
}

// GetConfig reads config.json, filling unset fields from DefaultConfig.
func (s *Storage) GetConfig() (*Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(filepath.Join(s.Folder, "config.json"))
	if errors.Is(err, fs.ErrNotExist) {
		return &config, nil
	}
	if err != nil {
		return nil, err
	}
	var fileConfig Config
	if err := json.Unmarshal(data, &fileConfig); err != nil {
		return nil, fmt.Errorf("parse config.json: %w", err)
	}
	if fileConfig.SourceExt != "" {
		config.SourceExt = fileConfig.SourceExt
	}
	if fileConfig.TargetExt != "" {
		config.TargetExt = fileConfig.TargetExt
	}
	if fileConfig.GoldExt != "" {
		config.GoldExt = fileConfig.GoldExt
	}
	if config.SourceExt == config.TargetExt {
		return nil, fmt.Errorf("source and target extensions are both %q", config.SourceExt)
	}
	return &config, nil
}

// Record is one sentence pair read from the folder.
type Record struct {
	Pair     corpus.SentencePair
	Gold     *corpus.Gold // nil when the pair has no reference links
	Document string       // file name without extension
	Line     int          // 1-based line number in the document
}

// IterPairs reads every document pair in the folder in sorted name order.
func (s *Storage) IterPairs(opts IterOptions) ([]Record, error) {
	config, err := s.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("get config: %w", err)
	}
	names, err := s.documents(config)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var records []Record

	for _, name := range names {
		srcPath := filepath.Join(s.Folder, name+"."+config.SourceExt)
		tgtPath := filepath.Join(s.Folder, name+"."+config.TargetExt)
		if _, err := os.Stat(tgtPath); err != nil {
			slog.Warn("Skipping document without target side", "document", name, "error", err)
			continue
		}

		srcLines, err := readLines(srcPath)
		if err != nil {
			return nil, err
		}
		tgtLines, err := readLines(tgtPath)
		if err != nil {
			return nil, err
		}
		if len(srcLines) != len(tgtLines) {
			return nil, fmt.Errorf("%s: %d source lines but %d target lines", name, len(srcLines), len(tgtLines))
		}

		gold, err := ReadGoldFile(filepath.Join(s.Folder, name+"."+config.GoldExt))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}

		kept := 0
		for i := range srcLines {
			src := textutil.Tokens(srcLines[i], opts.Lowercase)
			tgt := textutil.Tokens(tgtLines[i], opts.Lowercase)

			if opts.MaxLength > 0 && (len(src) > opts.MaxLength || len(tgt) > opts.MaxLength) {
				continue
			}

			// Deduplication by line pair hash
			if opts.DropDuplicates {
				hash := fmt.Sprintf("%x", md5.Sum([]byte(strings.Join(src, " ")+"\t"+strings.Join(tgt, " "))))
				if seen[hash] {
					continue
				}
				seen[hash] = true
			}

			rec := Record{
				Pair:     corpus.NewSentencePair(src, tgt),
				Document: name,
				Line:     i + 1,
			}
			if g, ok := gold[i+1]; ok {
				rec.Gold = &g
			}
			records = append(records, rec)
			kept++
		}
		if opts.Verbose {
			slog.Debug("Read document", "document", name, "lines", len(srcLines), "kept", kept, "gold", len(gold))
		}
	}

	return records, nil
}

// documents lists the base names of source-side files, sorted.
func (s *Storage) documents(config *Config) ([]string, error) {
	entries, err := os.ReadDir(s.Folder)
	if err != nil {
		return nil, err
	}
	suffix := "." + config.SourceExt
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), suffix))
	}
	sort.Strings(names)
	return names, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if len(lines) == 0 {
			line = textutil.TrimBOM(line)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// IterOptions controls pair iteration behavior.
type IterOptions struct {
	Lowercase      bool
	MaxLength      int // drop pairs with a longer side; 0 keeps all
	DropDuplicates bool
	Verbose        bool
}

// DefaultIterOptions returns the default options for iterating pairs.
func DefaultIterOptions() IterOptions {
	return IterOptions{}
}

// Pairs extracts the sentence pairs of records.
func Pairs(records []Record) []corpus.SentencePair {
	pairs := make([]corpus.SentencePair, len(records))
	for i, r := range records {
		pairs[i] = r.Pair
	}
	return pairs
}

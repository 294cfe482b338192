// Command huffzip compresses and decompresses files with static Huffman
// coding.
//
//	huffzip -c FILE        writes FILE.cmp
//	huffzip -d FILE.cmp    writes FILE
//
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chronos-tachyon/huffzip"
	"github.com/chronos-tachyon/huffzip/internal/logger"
)

const compressedSuffix = ".cmp"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type config struct {
	compress   string
	decompress string
	output     string
	verbose    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	var cfg config

	fs := flag.NewFlagSet("huffzip", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.compress, "c", "", "compress `FILE` into FILE"+compressedSuffix)
	fs.StringVar(&cfg.compress, "compress", "", "same as -c")
	fs.StringVar(&cfg.decompress, "d", "", "decompress `FILE`"+compressedSuffix+" into FILE")
	fs.StringVar(&cfg.decompress, "decompress", "", "same as -d")
	fs.StringVar(&cfg.output, "o", "", "write the result to `PATH` instead of the default name")
	fs.BoolVar(&cfg.verbose, "v", false, "log sizes and compression ratio")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: huffzip (-c FILE | -d FILE%s) [-o PATH] [-v]\n", compressedSuffix)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if fs.NArg() != 0 || (cfg.compress == "") == (cfg.decompress == "") {
		fmt.Fprintln(fs.Output(), "huffzip: exactly one of -c or -d is required")
		fs.Usage()
		return exitUsage
	}

	logg := logger.New(stderr, cfg.verbose)

	var err error
	if cfg.compress != "" {
		err = compressFile(cfg, logg)
	} else {
		err = decompressFile(cfg, logg)
	}

	if errors.Is(err, errUsage) {
		fmt.Fprintf(fs.Output(), "huffzip: %v\n", err)
		fs.Usage()
		return exitUsage
	}
	if err != nil {
		logg.Errorf("%v", err)
		return exitError
	}
	return exitOK
}

var errUsage = errors.New("usage error")

func compressFile(cfg config, logg logger.Logger) error {
	input := cfg.compress
	output := cfg.output
	if output == "" {
		output = input + compressedSuffix
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	blob, err := huffzip.Compress(data)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	if err := writeFileAtomic(output, blob); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}

	logg.Infof("%s: %d -> %d bytes (%s) -> %s", input, len(data), len(blob), ratio(len(blob), len(data)), output)
	return nil
}

func decompressFile(cfg config, logg logger.Logger) error {
	input := cfg.decompress
	output := cfg.output
	if output == "" {
		if !strings.HasSuffix(input, compressedSuffix) || len(input) == len(compressedSuffix) {
			return fmt.Errorf("%w: %q has no %s suffix; use -o to name the output", errUsage, input, compressedSuffix)
		}
		output = strings.TrimSuffix(input, compressedSuffix)
	}

	blob, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	data, err := huffzip.Decompress(blob)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	if err := writeFileAtomic(output, data); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}

	logg.Infof("%s: %d -> %d bytes -> %s", input, len(blob), len(data), output)
	return nil
}

// writeFileAtomic writes data to a temporary file beside path and renames it
// into place, so path is either untouched or complete.
func writeFileAtomic(path string, data []byte) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Chmod(0o644); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func ratio(compressed, original int) string {
	if original == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(compressed)/float64(original))
}

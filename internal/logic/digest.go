// Package logic implements the file-level work behind the enigma commands.
package logic

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/enigma/internal/config"
	"github.com/idelchi/enigma/internal/fileutil"
	"github.com/idelchi/enigma/internal/filter"
	"github.com/idelchi/enigma/pkg/codec"
	"github.com/idelchi/enigma/pkg/hashing"
)

// Digest hashes every file selected by cfg.Args with cfg.Algorithm, using up
// to cfg.Parallel workers. Directories are walked and filtered by the include
// and skip globs. Lines of the form "<DIGEST>  <file>" go to stdout as results
// arrive, or, with cfg.Output set, to that file in selection order.
//
//nolint:cyclop,funlen // parallel processing pipeline with printer goroutine
func Digest(cfg *config.Config, stdout, stderr io.Writer) error {
	start := time.Now()
	algorithm := hashing.Algorithm(cfg.Algorithm)

	if !hashing.IsSupported(algorithm) {
		return fmt.Errorf("unsupported algorithm %q", cfg.Algorithm)
	}

	sel, err := selectFiles(cfg)
	if err != nil {
		return err
	}

	slog.Debug("selected files", "files", len(sel.Files), "scanned", sel.Scanned, "skipped", sel.Skipped)

	results := make(chan Result, len(sel.Files))

	group := errgroup.Group{}
	group.SetLimit(cfg.Parallel)

	printed := make(chan struct{})

	var (
		processed, errored int
		totalSize          int64
		digests            = make(map[string]string, len(sel.Files))
	)

	go func() {
		defer close(printed)

		for res := range results {
			if res.Error != nil {
				errored++

				slog.Error("digesting file", "path", res.Input, "error", res.Error)

				continue
			}

			processed++

			totalSize += res.Size

			if cfg.Output != "" {
				digests[res.Input] = res.Digest

				continue
			}

			fmt.Fprintf(stdout, "%s  %s\n", res.Digest, res.Input)
		}
	}()

	for _, file := range sel.Files {
		group.Go(func() error {
			digest, size, err := digestFile(algorithm, file)
			if err != nil {
				results <- Result{Input: file, Error: err}

				return err
			}

			slog.Debug("digested file", "path", file, "algorithm", algorithm, "size", size)

			results <- Result{Input: file, Digest: digest, Size: size}

			return nil
		})
	}

	err = group.Wait()

	close(results)

	<-printed

	if cfg.Output != "" && err == nil {
		if err := writeSums(cfg.Output, sel.Files, digests); err != nil {
			return err
		}

		slog.Info("wrote checksums", "path", cfg.Output, "files", processed)
	}

	if cfg.Stats {
		printStats(stderr, algorithm, sel, processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("digesting files: %w", err)
	}

	return nil
}

func selectFiles(cfg *config.Config) (filter.Selection, error) {
	include, err := filter.Gather(cfg.Include, cfg.IncludeFrom)
	if err != nil {
		return filter.Selection{}, err
	}

	skip, err := filter.Gather(cfg.Skip, cfg.SkipFrom)
	if err != nil {
		return filter.Selection{}, err
	}

	rules, err := filter.NewRules(include, skip)
	if err != nil {
		return filter.Selection{}, err
	}

	return filter.Resolve(cfg.Args, rules)
}

func digestFile(algorithm hashing.Algorithm, filename string) (digest string, size int64, err error) {
	h, err := hashing.New(algorithm)
	if err != nil {
		return "", 0, err
	}

	file, err := os.Open(filepath.Clean(filename))
	if err != nil {
		return "", 0, fmt.Errorf("opening input file: %w", err)
	}
	defer file.Close()

	buf, _ := bufferPool.Get().(*[]byte)
	defer bufferPool.Put(buf)

	size, err = io.CopyBuffer(h, file, *buf)
	if err != nil {
		return "", 0, fmt.Errorf("reading %q: %w", filename, err)
	}

	return codec.ByteToHex(h.Sum(nil)), size, nil
}

func writeSums(path string, files []string, digests map[string]string) error {
	var sb strings.Builder

	for _, file := range files {
		fmt.Fprintf(&sb, "%s  %s\n", digests[file], file)
	}

	const ownerReadWriteOthersRead = 0o644

	if _, err := fileutil.WriteFile(path, []byte(sb.String()), ownerReadWriteOthersRead); err != nil {
		return fmt.Errorf("writing checksums: %w", err)
	}

	return nil
}

func printStats(
	w io.Writer,
	algorithm hashing.Algorithm,
	sel filter.Selection,
	processed, errored int,
	totalSize int64,
	duration time.Duration,
) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Algorithm: %s\n", algorithm)
	fmt.Fprintf(w, "  Scanned:   %d\n", sel.Scanned)
	fmt.Fprintf(w, "  Skipped:   %d\n", sel.Skipped)
	fmt.Fprintf(w, "  Processed: %d\n", processed)
	fmt.Fprintf(w, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(w, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}

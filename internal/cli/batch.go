package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	binarycodec "github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec"
	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
)

type batchLine struct {
	number int
	text   string
}

// readBatchLines returns the non-empty, non-comment lines of r.
func readBatchLines(r io.Reader) ([]batchLine, error) {
	var lines []batchLine
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for n := 1; scanner.Scan(); n++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, batchLine{number: n, text: text})
	}
	return lines, scanner.Err()
}

func newBatchCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Decode a file of hex payloads concurrently",
		Long: `Decode one hex payload per line (- reads stdin). Blank lines and lines
starting with # are skipped. Payloads are decoded concurrently by
batch.workers goroutines through an LRU cache of cache.size entries.
Every failing line is reported and the command exits non-zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd.InOrStdin(), nil, args[0])
			if err != nil {
				return err
			}
			lines, err := readBatchLines(bytes.NewReader(raw))
			if err != nil {
				return err
			}
			cache, err := binarycodec.NewCachingDeserializer(a.codec, a.cfg.Cache.Size)
			if err != nil {
				return err
			}

			results := make([]tx.Transaction, len(lines))
			lineErrs := make([]error, len(lines))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(a.cfg.WorkerCount())
			for i, line := range lines {
				i, line := i, line
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					payload, err := decodeHexInput([]byte(line.text))
					if err == nil {
						results[i], err = cache.Deserialize(payload)
					}
					if err != nil {
						lineErrs[i] = fmt.Errorf("line %d: %w", line.number, err)
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			var result *multierror.Error
			for _, err := range lineErrs {
				if err != nil {
					result = multierror.Append(result, err)
				}
			}

			stats := cache.Stats()
			out := cmd.OutOrStdout()
			if asJSON {
				decoded := make([]tx.Transaction, 0, len(results))
				for _, t := range results {
					if t != nil {
						decoded = append(decoded, t)
					}
				}
				if err := writeJSON(out, decoded); err != nil {
					return err
				}
			} else {
				writeBatchSummary(out, results, len(lines), stats)
			}

			logger := a.component("batch")
			logger.Info().
				Int("payloads", len(lines)).
				Int("failed", len(result.WrappedErrors())).
				Uint64("cache_hits", stats.Hits).
				Msg("batch finished")
			return result.ErrorOrNil()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the decoded models instead of a summary")
	return cmd
}

func writeBatchSummary(out io.Writer, results []tx.Transaction, total int, stats binarycodec.CacheStats) {
	counts := make(map[string]int)
	decoded := 0
	for _, t := range results {
		if t != nil {
			counts[t.TxType().String()]++
			decoded++
		}
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(out, "Decoded %d of %d payloads (cache hits %d)\n", decoded, total, stats.Hits)
	for _, name := range names {
		fmt.Fprintf(out, "  %-32s %d\n", name, counts[name])
	}
}

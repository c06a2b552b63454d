package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/pearify/chalk/pkg/console"
	"github.com/pearify/chalk/pkg/constants"
	"github.com/pearify/chalk/pkg/fileutil"
	"github.com/pearify/chalk/pkg/logger"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
)

var batchLog = logger.New("cli:batch_command")

// Entry is one item of a batch file.
type Entry struct {
	Style string `yaml:"style" json:"style"`
	Text  string `yaml:"text" json:"text"`
	Big   bool   `yaml:"big,omitempty" json:"big,omitempty"`
}

// BatchResult is the rendered form of an Entry.
type BatchResult struct {
	Index  int    `json:"-"`
	Style  string `json:"style"`
	Format string `json:"format"`
	CSS    string `json:"css"`
}

// NewBatchCommand creates the batch command
func NewBatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Render every entry of a YAML batch file",
		Long: `Render a YAML list of entries. Each entry has a style expression, the
text to render and an optional big flag:

  - style: bold.red
    text: failed
  - style: green
    text: Pearify
    big: true

One line per entry is printed: the format string and the CSS separated by a tab.

Examples:
  ` + constants.CLIName.String() + ` batch styles.yaml
  ` + constants.CLIName.String() + ` batch styles.yaml --json
  ` + constants.CLIName.String() + ` batch styles.yaml --watch   # re-render on every save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonFlag, _ := cmd.Flags().GetBool("json")
			watch, _ := cmd.Flags().GetBool("watch")
			verbose, _ := cmd.Flags().GetBool("verbose")
			if watch {
				return WatchBatch(cmd.Context(), cmd.OutOrStdout(), args[0], jsonFlag, verbose)
			}
			return RunBatch(cmd.Context(), cmd.OutOrStdout(), args[0], jsonFlag)
		},
	}

	addJSONFlag(cmd)
	cmd.Flags().BoolP("watch", "w", false, "Watch the file and render again whenever it changes")

	return cmd
}

// LoadBatch reads the entries of a batch file.
func LoadBatch(path string) ([]Entry, error) {
	content, err := fileutil.ReadInput(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return ParseBatch(content)
}

// ParseBatch decodes batch entries from YAML.
func ParseBatch(content []byte) ([]Entry, error) {
	var entries []Entry
	if err := yaml.Unmarshal(content, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}
	return entries, nil
}

// RenderBatch renders entries concurrently. Results keep the entry order.
// The first failing entry cancels the rest.
func RenderBatch(ctx context.Context, entries []Entry) ([]BatchResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	batchLog.Printf("Rendering batch: entries=%d", len(entries))

	p := pool.NewWithResults[BatchResult]().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(constants.MaxBatchConcurrency)

	for i, entry := range entries {
		p.Go(func(ctx context.Context) (BatchResult, error) {
			if err := ctx.Err(); err != nil {
				return BatchResult{}, err
			}
			r, err := renderExpr(entry.Style, []string{entry.Text}, entry.Big)
			if err != nil {
				return BatchResult{}, fmt.Errorf("entry %d: %w", i+1, err)
			}
			return BatchResult{Index: i, Style: entry.Style, Format: r.Format, CSS: r.CSS}, nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, firstError(err)
	}
	sort.Slice(results, func(a, b int) bool { return results[a].Index < results[b].Index })
	return results, nil
}

// firstError unwraps the joined errors of a pool down to the first one,
// ignoring cancellations caused by it.
func firstError(err error) error {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return err
	}
	for _, e := range joined.Unwrap() {
		if !errors.Is(e, context.Canceled) {
			return e
		}
	}
	return err
}

// RunBatch renders the batch file at path and writes the results to w.
func RunBatch(ctx context.Context, w io.Writer, path string, jsonOutput bool) error {
	entries, err := LoadBatch(path)
	if err != nil {
		return err
	}
	results, err := RenderBatch(ctx, entries)
	if err != nil {
		return err
	}
	return writeBatch(w, results, jsonOutput)
}

func writeBatch(w io.Writer, results []BatchResult, jsonOutput bool) error {
	if jsonOutput {
		if results == nil {
			results = []BatchResult{}
		}
		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal batch results: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", r.Format, r.CSS); err != nil {
			return err
		}
	}
	return nil
}

func reportBatchError(w io.Writer, err error) {
	fmt.Fprintln(w, console.FormatErrorMessage(err.Error()))
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pearify/chalk/pkg/console"
	"github.com/pearify/chalk/pkg/fileutil"
	"github.com/pearify/chalk/pkg/logger"
)

var batchWatchLog = logger.New("cli:batch_watch")

const batchDebounceDelay = 200 * time.Millisecond

// WatchBatch renders the batch file, then renders it again after every change
// until ctx is done or the process is interrupted. Render errors are reported
// and watching continues.
func WatchBatch(ctx context.Context, w io.Writer, path string, jsonOutput, verbose bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	abs, err := fileutil.Resolve(path)
	if err != nil {
		return err
	}
	if !fileutil.FileExists(abs) {
		return fmt.Errorf("batch file does not exist: %s", path)
	}

	watcher, err := fsnotify.NewBufferedWatcher(100)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files on save, so watch the directory.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", filepath.Dir(abs), err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// mu serializes renders; stopped is set under mu once watching ends so
	// no render writes to w after WatchBatch returns.
	var (
		mu      sync.Mutex
		stopped bool
	)
	render := func() {
		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return
		}
		if err := RunBatch(ctx, w, abs, jsonOutput); err != nil {
			reportBatchError(os.Stderr, err)
		}
	}

	fmt.Fprintln(os.Stderr, console.FormatInfoMessage("Watching for changes to "+path+"..."))
	render()

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
		// Wait for a render that already fired.
		mu.Lock()
		stopped = true
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			batchWatchLog.Print("Watch stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}
			if event.Name != abs || event.Has(fsnotify.Chmod) {
				continue
			}
			batchWatchLog.Printf("Detected change: %s (%s)", event.Name, event.Op.String())
			if verbose {
				fmt.Fprintln(os.Stderr, console.FormatVerboseMessage(fmt.Sprintf("Detected change: %s (%s)", event.Name, event.Op.String())))
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(batchDebounceDelay, render)
		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			batchWatchLog.Printf("Watcher error: %v", err)
			fmt.Fprintln(os.Stderr, console.FormatWarningMessage(fmt.Sprintf("Watcher error: %v", err)))
		}
	}
}

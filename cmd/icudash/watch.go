// Copyright 2026 The Icudash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/davetashner/icudash/internal/dashboard"
	"github.com/davetashner/icudash/internal/redact"
	"github.com/davetashner/icudash/internal/term"
)

// watchCmd runs an interactive dashboard session.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run an interactive dashboard session",
	Long: `Load the dashboard and keep it open, reading commands from stdin:

  date <range>            select a date range (clears the drill-down)
  unit <unit>             select a unit (clears the drill-down)
  click <chart> <n>       click segment n of the acuity or admission chart
  reset                   clear the drill-down
  refresh                 reload with the current filters
  show                    print the dashboard again
  wait                    wait for pending loads to finish
  help                    list commands
  quit                    end the session

Commands do not wait for earlier loads; when loads overlap, the most recent
one wins.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		w := &watcher{sess: newSession(settings), out: cmd.OutOrStdout()}
		return w.run(cmd.Context(), cmd.InOrStdin())
	},
}

// watcher drives one session from a command stream.
type watcher struct {
	sess *term.Session
	out  io.Writer

	outMu    sync.Mutex
	inflight sync.WaitGroup
}

// run performs the initial load and handles commands from in until quit or
// EOF. Pending loads are waited for before returning.
func (w *watcher) run(ctx context.Context, in io.Reader) error {
	g, ctx := errgroup.WithContext(ctx)

	// A blocked read cannot be interrupted, so the reader is not part of the
	// group; it ends on EOF.
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	w.spawn(ctx, g, "load", w.sess.Dashboard.Start)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case line, ok := <-lines:
				if !ok {
					return nil
				}
				if quit := w.handle(ctx, g, line); quit {
					return nil
				}
			}
		}
	})

	if err := g.Wait(); err != nil {
		return err
	}
	select {
	case err := <-readErr:
		if err != nil {
			return fmt.Errorf("reading commands: %w", err)
		}
	default:
	}
	return nil
}

// handle runs one command line. It reports whether the session should end.
func (w *watcher) handle(ctx context.Context, g *errgroup.Group, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	verb := strings.ToLower(fields[0])
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))

	switch verb {
	case "quit", "exit":
		return true
	case "help", "?":
		w.printf("commands: date <range>, unit <unit>, click <chart> <n>, reset, refresh, show, wait, quit\n")
	case "show":
		w.render()
	case "wait":
		w.inflight.Wait()
	case "refresh":
		w.spawn(ctx, g, "refresh", w.sess.Dashboard.Refresh)
	case "reset":
		w.spawn(ctx, g, "reset", w.sess.Dashboard.ResetFilters)
	case "date":
		if rest == "" {
			w.printf("usage: date <range>\n")
			return false
		}
		w.spawn(ctx, g, "date", func(ctx context.Context) error {
			return w.sess.SetDateRange(ctx, rest)
		})
	case "unit":
		if rest == "" {
			w.printf("usage: unit <unit>\n")
			return false
		}
		w.spawn(ctx, g, "unit", func(ctx context.Context) error {
			return w.sess.SetUnit(ctx, rest)
		})
	case "click":
		if len(fields) != 3 {
			w.printf("usage: click <chart> <n>\n")
			return false
		}
		n, err := strconv.Atoi(fields[2])
		if err != nil {
			w.printf("click: segment must be a number, got %q\n", fields[2])
			return false
		}
		chart := fields[1]
		w.spawn(ctx, g, "click", func(ctx context.Context) error {
			return w.sess.Click(ctx, chart, n)
		})
	default:
		w.printf("unknown command %q (try help)\n", fields[0])
	}
	return false
}

// spawn runs a dashboard action in the group and redraws when it completes.
// Action failures are reported, never returned, so they do not end the
// session.
func (w *watcher) spawn(ctx context.Context, g *errgroup.Group, name string, action func(context.Context) error) {
	w.inflight.Add(1)
	g.Go(func() error {
		defer w.inflight.Done()
		err := action(ctx)
		switch {
		case errors.Is(err, dashboard.ErrSuperseded):
			return nil
		case errors.Is(err, dashboard.ErrReloadRequired):
			w.printf("%s: the dashboard failed to load; restart icudash to try again\n", name)
			return nil
		case err != nil:
			// The error panel carries the message; render shows it.
			w.printf("%s failed: %s\n", name, redact.String(err.Error()))
		}
		w.render()
		return nil
	})
}

func (w *watcher) render() {
	w.outMu.Lock()
	defer w.outMu.Unlock()
	_, _ = fmt.Fprintln(w.out)
	_ = w.sess.Render(w.out)
}

func (w *watcher) printf(format string, args ...any) {
	w.outMu.Lock()
	defer w.outMu.Unlock()
	_, _ = fmt.Fprintf(w.out, format, args...)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package logs builds the structured logger shared by the scheduler and
// the startup sequence.
package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Options configures New.
type Options struct {
	// Level filters records; nil means slog.LevelInfo.
	Level slog.Leveler
	// Journal also sends records to the systemd journal when the process
	// runs as a systemd service.
	Journal bool
}

// New returns a logger writing text records to w, fanned out to the
// systemd journal when requested and available. When running under a
// systemd service the terminal handler is skipped.
func New(w io.Writer, opts Options) *slog.Logger {
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}

	var handlers []slog.Handler
	service := opts.Journal && isSystemdService()

	var text slog.Handler
	if !service {
		text = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
		handlers = append(handlers, text)
	}

	if opts.Journal {
		journal, err := slogjournal.NewHandler(&slogjournal.Options{
			ReplaceGroup: func(key string) string {
				return journalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = journalKey(a.Key)
				return a
			},
		})
		switch {
		case err == nil:
			handlers = append(handlers, journal)
		case text != nil:
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
			record.Add("error", err)
			_ = text.Handle(context.Background(), record)
		}
	}

	if len(handlers) == 0 {
		handlers = append(handlers, slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func journalKey(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, strings.ToUpper(s))
}

func isSystemdService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	parts := strings.Split(strings.TrimSpace(string(content)), ":")
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}

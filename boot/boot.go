// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package boot brings a runtime image up and down: descriptor cleanup,
// allocator tuning, preloaded module registration and terminal detection.
package boot

import (
	"log/slog"
	"os"
	"sync"

	"github.com/reusee/e5"

	"code.hybscloud.com/yielding/compat"
	"code.hybscloud.com/yielding/internal/logs"
	"code.hybscloud.com/yielding/preload"
	"code.hybscloud.com/yielding/sched"
	"code.hybscloud.com/yielding/termcap"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// Config configures Start. The zero Config closes nothing, tunes nothing,
// loads the minimal preload table and inspects stdin.
type Config struct {
	// CloseFrom closes every descriptor at or above it when positive;
	// zero or a negative value skips descriptor cleanup.
	CloseFrom int
	// Tuning is applied in order; unsupported knobs are logged and ignored.
	Tuning []Tuning
	// Preload is the bundled module table; nil means preload.Minimal.
	Preload []preload.Module
	// Register receives every preloaded module.
	Register func(preload.Module) error
	// TermFD is inspected for terminal capabilities; nil means stdin.
	TermFD  *int
	Termcap termcap.Config
	// Scheduler configures the process scheduler of the image.
	Scheduler sched.Config
	Logger    *slog.Logger
}

// Tuning is one allocator knob.
type Tuning struct {
	Param compat.Param
	Value int
}

// Image is a started runtime image.
type Image struct {
	Modules   []string
	Term      termcap.Caps
	Scheduler *sched.Scheduler

	log      *slog.Logger
	shutdown sync.Once
}

// Start runs the startup sequence.
func Start(cfg Config) (*Image, error) {
	log := cfg.Logger
	if log == nil {
		log = logs.Discard()
	}

	if cfg.CloseFrom > 0 {
		if err := compat.CloseFrom(cfg.CloseFrom); err != nil {
			return nil, wrap(err)
		}
		log.Debug("closed descriptors", "from", cfg.CloseFrom)
	}

	for _, t := range cfg.Tuning {
		if !compat.SetAllocatorParam(t.Param, t.Value) {
			log.Debug("allocator knob ignored", "param", int(t.Param), "value", t.Value)
		}
	}

	img := &Image{log: log}
	table := cfg.Preload
	if table == nil {
		table = preload.Minimal
	}
	if _, err := preload.Load(table, func(m preload.Module) error {
		if cfg.Register != nil {
			if err := cfg.Register(m); err != nil {
				return err
			}
		}
		img.Modules = append(img.Modules, m.Name)
		return nil
	}); err != nil {
		return nil, wrap(err)
	}

	fd := int(os.Stdin.Fd())
	if cfg.TermFD != nil {
		fd = *cfg.TermFD
	}
	img.Term = termcap.Detect(fd, cfg.Termcap)

	sc := cfg.Scheduler
	if sc.Logger == nil {
		sc.Logger = log
	}
	img.Scheduler = sched.New(sc)

	log.Info("image started", "modules", len(img.Modules), "terminal", img.Term.Terminal)
	return img, nil
}

// Shutdown kills every remaining process. Safe to call more than once.
func (img *Image) Shutdown() {
	img.shutdown.Do(func() {
		pending := img.Scheduler.Pending()
		img.Scheduler.Shutdown()
		img.log.Info("image stopped", "killed", pending)
	})
}

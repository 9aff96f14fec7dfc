// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sched multiplexes many logical processes over budgeted
// built-in operations.
//
// Each process runs one operation. The scheduler gives the process at the
// head of the run queue one quantum of reductions; a process that traps
// goes to the back of the queue holding its continuation, and is resumed
// with a fresh quantum on its next turn. Killing a process destroys its
// outstanding continuation exactly once; it is never resumed afterwards.
package sched

import (
	"context"
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"code.hybscloud.com/yielding"
	"code.hybscloud.com/yielding/internal/logs"
)

// DefaultQuantum is the reductions granted per turn when Config.Quantum
// is zero.
const DefaultQuantum = 4000

// PID identifies a process.
type PID uint64

// Task starts the operation a process runs. It is called once, with the
// first quantum.
type Task func(ops *yielding.Ops, b *yielding.Budget) (yielding.Term, *yielding.Continuation, error)

// Result is the outcome of a finished process.
type Result struct {
	PID        PID
	Value      yielding.Term
	Err        error
	Killed     bool
	Reductions int64
	Traps      int
}

// Config configures a Scheduler.
type Config struct {
	Quantum int64
	Ops     *yielding.Ops
	Logger  *slog.Logger
}

type process struct {
	pid        PID
	task       Task
	k          *yielding.Continuation
	running    bool
	killed     bool
	reductions int64
	traps      int
}

// Scheduler is a round-robin, reduction-counted scheduler.
// Steps run one at a time; Kill may be called from any goroutine.
type Scheduler struct {
	quantum int64
	ops     *yielding.Ops
	log     *slog.Logger

	mu      sync.Mutex
	next    PID
	queue   []PID
	procs   map[PID]*process
	results map[PID]Result
}

// New returns an empty scheduler.
func New(cfg Config) *Scheduler {
	s := &Scheduler{
		quantum: cfg.Quantum,
		ops:     cfg.Ops,
		log:     cfg.Logger,
		procs:   make(map[PID]*process),
		results: make(map[PID]Result),
	}
	if s.quantum <= 0 {
		s.quantum = DefaultQuantum
	}
	if s.ops == nil {
		s.ops = yielding.New(yielding.Config{})
	}
	if s.log == nil {
		s.log = logs.Discard()
	}
	return s
}

// Spawn queues a new process running task.
func (s *Scheduler) Spawn(task Task) PID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	pid := s.next
	s.procs[pid] = &process{pid: pid, task: task}
	s.queue = append(s.queue, pid)
	s.log.Debug("spawn", "pid", pid)
	return pid
}

// Kill terminates a process. An outstanding continuation is destroyed at
// once; a process that is running is destroyed when its call returns.
// Reports false if pid is unknown or already finished.
func (s *Scheduler) Kill(pid PID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.procs[pid]
	if !ok || p.killed {
		return false
	}
	p.killed = true
	if p.running {
		return true
	}
	if p.k != nil {
		p.k.Destroy()
		p.k = nil
	}
	s.queue = lo.Without(s.queue, pid)
	s.finish(p, Result{Killed: true})
	return true
}

// Step gives one quantum to the process at the head of the run queue.
// Reports whether a process ran.
func (s *Scheduler) Step() bool {
	s.mu.Lock()
	if len(s.queue) == 0 {
		s.mu.Unlock()
		return false
	}
	pid := s.queue[0]
	s.queue = s.queue[1:]
	p := s.procs[pid]
	p.running = true
	k := p.k
	p.k = nil
	s.mu.Unlock()

	b := yielding.NewBudget(s.quantum)
	var (
		v   yielding.Term
		err error
	)
	if k == nil {
		v, k, err = p.task(s.ops, b)
	} else {
		v, k, err = k.Resume(b)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p.running = false
	p.reductions += b.Used()
	switch {
	case p.killed:
		if k != nil {
			k.Destroy()
		}
		s.finish(p, Result{Killed: true})
	case err != nil:
		s.finish(p, Result{Err: err})
	case k != nil:
		p.k = k
		p.traps++
		s.queue = append(s.queue, pid)
		s.log.Debug("trap", "pid", pid, "op", k.Op().String(), "units", k.Units(), "reductions", b.Used())
	default:
		s.finish(p, Result{Value: v})
	}
	return true
}

// finish records the outcome of p. Must hold s.mu.
func (s *Scheduler) finish(p *process, r Result) {
	r.PID = p.pid
	r.Reductions = p.reductions
	r.Traps = p.traps
	delete(s.procs, p.pid)
	s.results[p.pid] = r
	switch {
	case r.Killed:
		s.log.Info("killed", "pid", p.pid, "traps", r.Traps)
	case r.Err != nil:
		s.log.Info("exit", "pid", p.pid, "error", r.Err)
	default:
		s.log.Debug("exit", "pid", p.pid, "traps", r.Traps, "reductions", r.Reductions)
	}
}

// Run steps until no process is runnable or ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !s.Step() {
			return nil
		}
	}
}

// Shutdown kills every remaining process.
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	pids := lo.Keys(s.procs)
	s.mu.Unlock()
	for _, pid := range pids {
		s.Kill(pid)
	}
}

// Result returns the outcome of a finished process.
func (s *Scheduler) Result(pid PID) (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.results[pid]
	return r, ok
}

// Pending returns the number of live processes.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.procs)
}

// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package workerspool runs the partitions of a transpose plan in parallel goroutines, with a soft
// limit on the parallelism shared by all the transposers using the same Pool.
package workerspool

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// Pool of workers with a soft target on the number of goroutines running at the same time.
type Pool struct {
	// maxParallelism is a soft target on the limit of parallel work to do.
	// The actual number of goroutines is higher than that -- because of the caller also running tasks.
	maxParallelism int
	mu             sync.Mutex
	numRunning     int
}

// New returns a new Pool of workers with the given parallelism.
// If maxParallelism is 0 parallelism is disabled and tasks run inline. If negative, it is unlimited.
func New(maxParallelism int) *Pool {
	return &Pool{maxParallelism: maxParallelism}
}

var defaultPool = sync.OnceValue(func() *Pool { return New(runtime.NumCPU()) })

// Default returns the process wide Pool sized to runtime.NumCPU().
func Default() *Pool {
	return defaultPool()
}

// IsEnabled returns whether parallelism is enabled (maxParallelism is != 0)
func (w *Pool) IsEnabled() bool {
	return w.maxParallelism != 0
}

// IsUnlimited returns whether parallelism is unlimited (maxParallelism < 0)
func (w *Pool) IsUnlimited() bool {
	return w.maxParallelism < 0
}

// MaxParallelism is a soft-target for parallelism.
func (w *Pool) MaxParallelism() int {
	return w.maxParallelism
}

const goroutineToParallelismRatio = 2

// lockedIsFull returns whether all available workers are in use.
//
// It must be called with Pool.mu acquired.
func (w *Pool) lockedIsFull() bool {
	if w.maxParallelism == 0 {
		return true
	} else if w.maxParallelism < 0 {
		return false
	}
	return w.numRunning >= goroutineToParallelismRatio*w.maxParallelism
}

// lockedRunTaskInGoroutine and keep tabs on w.numRunning.
//
// It must be called with Pool.mu acquired.
func (w *Pool) lockedRunTaskInGoroutine(task func()) {
	w.numRunning++
	go func() {
		task()
		w.mu.Lock()
		w.numRunning--
		w.mu.Unlock()
	}()
}

// StartIfAvailable runs the task in a separate goroutine, if there are enough workers left.
// It returns true if it found workers to run the function, false otherwise.
//
// It's up to the client to synchronize the end of the function execution.
func (w *Pool) StartIfAvailable(task func()) bool {
	if w.IsUnlimited() {
		go task()
		return true
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.lockedIsFull() {
		return false
	}
	w.lockedRunTaskInGoroutine(task)
	return true
}

// Run executes task(0), ..., task(numTasks-1) and waits for all of them to finish.
//
// Tasks are started in the pool while there are workers available, the remaining ones (and
// always the last one) run in the calling goroutine. A panic in any of the tasks is re-raised in the
// calling goroutine after all tasks finished, so callers can recover it as usual.
func (w *Pool) Run(numTasks int, task func(taskIdx int)) {
	if numTasks <= 0 {
		return
	}
	var (
		wg         sync.WaitGroup
		panicMu    sync.Mutex
		firstPanic any
	)
	guarded := func(taskIdx int) {
		defer func() {
			if r := recover(); r != nil {
				panicMu.Lock()
				if firstPanic == nil {
					firstPanic = r
				}
				panicMu.Unlock()
			}
		}()
		task(taskIdx)
	}
	for taskIdx := range numTasks - 1 {
		wg.Add(1)
		started := w.StartIfAvailable(func() {
			defer wg.Done()
			guarded(taskIdx)
		})
		if !started {
			guarded(taskIdx)
			wg.Done()
		}
	}
	guarded(numTasks - 1)
	wg.Wait()
	if firstPanic != nil {
		if err, ok := firstPanic.(error); ok {
			panic(errors.WithMessage(err, "task in workerspool panicked"))
		}
		panic(firstPanic)
	}
}

// Package worker runs extract+encode jobs off the caller's goroutine with a
// bound on how many run at once.
//
// A job can be cancelled while it waits for a slot. Once extraction has
// started the job runs to completion or failure regardless of its context.
package worker

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/sebnyberg/cropbox/encode"
	"github.com/sebnyberg/cropbox/extract"
	"github.com/sebnyberg/cropbox/geom"
)

type Job struct {
	Source image.Image
	// Region is in native pixel space.
	Region  geom.Rect
	Format  encode.Format
	Options []encode.Option
}

type Result struct {
	Raster *extract.Raster
	Data   []byte
	Err    error
}

type Pool struct {
	sem    *semaphore.Weighted
	logger *slog.Logger

	// started is called once a job is past its last cancellation point.
	started func()
}

// NewPool returns a pool running at most n jobs at a time.
func NewPool(n int64, logger *slog.Logger) *Pool {
	if n < 1 {
		n = 1
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pool{sem: semaphore.NewWeighted(n), logger: logger}
}

// Run blocks until the job is done or ctx is cancelled before extraction
// starts.
func (p *Pool) Run(ctx context.Context, job Job) (*Result, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer p.sem.Release(1)
	// Acquire may succeed on a done context.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.started != nil {
		p.started()
	}

	start := time.Now()
	r, err := extract.Extract(job.Source, job.Region)
	if err != nil {
		return nil, err
	}
	data, err := encode.Bytes(r.Image, job.Format, job.Options...)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("crop job done",
		"region", r.Region,
		"format", job.Format,
		"bytes", len(data),
		"took", time.Since(start),
	)
	return &Result{Raster: r, Data: data}, nil
}

// Submit runs the job on a new goroutine. The returned channel receives
// exactly one Result.
func (p *Pool) Submit(ctx context.Context, job Job) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		res, err := p.Run(ctx, job)
		if err != nil {
			ch <- Result{Err: fmt.Errorf("crop job err, %w", err)}
			return
		}
		ch <- *res
	}()
	return ch
}

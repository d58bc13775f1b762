// SPDX-License-Identifier: EPL-2.0

package visualizer

import (
	"context"
	"log"
	"sync"
	"time"
)

// Ticker is what a Driver calls every frame. *Visualizer implements it.
type Ticker interface {
	Tick() error
}

// Driver calls Tick at a fixed interval. Start and Stop are its only
// transitions; a stopped Driver may be started again.
type Driver struct {
	target   Ticker
	interval time.Duration
	log      *log.Logger

	mtx    sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewDriver returns a stopped Driver ticking target every interval. A
// non-positive interval means 60 frames per second.
func NewDriver(target Ticker, interval time.Duration, logger *log.Logger) *Driver {
	if interval <= 0 {
		interval = time.Second / 60
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Driver{target: target, interval: interval, log: logger}
}

// Start runs the tick loop until Stop is called or ctx is done.
func (d *Driver) Start(ctx context.Context) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.cancel != nil {
		return ErrRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.done = make(chan struct{})

	go d.loop(ctx, d.done)
	return nil
}

// Stop ends the tick loop and waits for the last tick to return. Stopping a
// stopped Driver does nothing.
func (d *Driver) Stop() {
	d.mtx.Lock()
	cancel, done := d.cancel, d.done
	d.cancel, d.done = nil, nil
	d.mtx.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the loop was started and not stopped.
func (d *Driver) Running() bool {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return d.cancel != nil
}

func (d *Driver) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	failing := false
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := d.target.Tick()
			// log transitions only, a broken surface would flood the log
			if err != nil && !failing {
				d.log.Printf("WARN visualizer: tick failed: %v", err)
			}
			failing = err != nil
		}
	}
}

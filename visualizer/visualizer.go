// SPDX-License-Identifier: EPL-2.0

package visualizer

import (
	"context"
	"fmt"
	"image"
	"log"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ik5/audwave/anim"
	"github.com/ik5/audwave/render"
	"github.com/ik5/audwave/utils"
	"github.com/ik5/audwave/waveform"
)

// DefaultSinkDelay is how long the old profile sinks before a new one rises.
const DefaultSinkDelay = 250 * time.Millisecond

// Fetcher loads the encoded bytes behind a source location.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Decoder turns encoded bytes into a mono analysis signal.
type Decoder interface {
	Decode(ctx context.Context, data []byte) ([]float32, error)
}

// Surface draws frames. *render.Renderer implements it.
type Surface interface {
	Render(frame render.Frame) error
	Bounds() image.Rectangle
}

// SeekFunc receives a seek position as a fraction of the track in [0,1].
type SeekFunc func(fraction float64)

// LoadRequest names the audio to show. Seed picks the fallback shape; the
// zero Seed means "derive it from Source".
type LoadRequest struct {
	Source string
	Seed   waveform.Seed
}

// Options configure a Visualizer.
type Options struct {
	Fetcher   Fetcher
	Decoder   Decoder
	Accent    anim.RGB
	SinkDelay time.Duration // 0 means DefaultSinkDelay, negative disables sinking
	OnSeek    SeekFunc
	Logger    *log.Logger

	// Now is the clock used for the sink deadline; nil means time.Now.
	Now func() time.Time
}

type result struct {
	gen      uint64
	id       uuid.UUID
	profile  waveform.Profile
	fallback bool
}

// Visualizer owns the animation state of one waveform display and moves it
// through the load phases. All methods are safe for concurrent use.
type Visualizer struct {
	surface   Surface
	fetcher   Fetcher
	decoder   Decoder
	sinkDelay time.Duration
	onSeek    SeekFunc
	log       *log.Logger
	now       func() time.Time

	mtx sync.Mutex
	wg  sync.WaitGroup

	state     *anim.State
	phase     Phase
	source    string
	seed      waveform.Seed
	gen       uint64
	reqID     uuid.UUID
	cancel    context.CancelFunc
	sinkUntil time.Time
	pending   *result
	progress  float64
	dragging  bool
}

// New returns a Visualizer drawing onto surface.
func New(surface Surface, opts Options) (*Visualizer, error) {
	if surface == nil {
		return nil, fmt.Errorf("%w: %w", render.ErrConfiguration, render.ErrNoSurface)
	}

	v := &Visualizer{
		surface:   surface,
		fetcher:   opts.Fetcher,
		decoder:   opts.Decoder,
		sinkDelay: opts.SinkDelay,
		onSeek:    opts.OnSeek,
		log:       opts.Logger,
		now:       opts.Now,
		state:     anim.NewState(opts.Accent),
	}

	if v.sinkDelay == 0 {
		v.sinkDelay = DefaultSinkDelay
	}
	if v.log == nil {
		v.log = log.Default()
	}
	if v.now == nil {
		v.now = time.Now
	}

	return v, nil
}

// Load starts loading req and reports whether it was accepted. A request
// for the source already loaded or loading is ignored; use Reload to force
// a refresh. Fetch and decode failures never surface here: the visualizer
// falls back to a generated profile instead.
func (v *Visualizer) Load(ctx context.Context, req LoadRequest) bool {
	v.mtx.Lock()
	defer v.mtx.Unlock()

	if v.phase != Empty && req.Source == v.source {
		return false
	}

	v.start(ctx, req)
	return true
}

// Reload loads the current source again, sinking the shown profile first.
// It returns false when nothing was loaded yet.
func (v *Visualizer) Reload(ctx context.Context) bool {
	v.mtx.Lock()
	defer v.mtx.Unlock()

	if v.phase == Empty {
		return false
	}

	v.start(ctx, LoadRequest{Source: v.source, Seed: v.seed})
	return true
}

// start must be called with v.mtx held.
func (v *Visualizer) start(ctx context.Context, req LoadRequest) {
	if v.cancel != nil {
		v.cancel()
	}

	v.gen++
	v.reqID = uuid.New()
	v.source = req.Source
	v.seed = req.Seed
	v.pending = nil

	seed := req.Seed
	if seed.IsZero() {
		seed = waveform.TextSeed(req.Source)
	}

	if v.phase.showing() && v.sinkDelay > 0 {
		v.phase = Sinking
		v.sinkUntil = v.now().Add(v.sinkDelay)
		v.state.SetTargetProfile(waveform.NewProfile(len(v.state.Target())))
	} else {
		v.phase = Loading
		v.sinkUntil = time.Time{}
	}

	v.log.Printf("INFO visualizer: load %s: source=%q seed=%s generation=%d", v.reqID, req.Source, seed, v.gen)

	loadCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel

	v.wg.Add(1)
	go v.run(loadCtx, cancel, v.gen, v.reqID, req.Source, seed)
}

func (v *Visualizer) run(ctx context.Context, cancel context.CancelFunc, gen uint64, id uuid.UUID, source string, seed waveform.Seed) {
	defer v.wg.Done()
	defer cancel()

	profile, err := v.analyse(ctx, source)

	v.mtx.Lock()
	defer v.mtx.Unlock()

	if gen != v.gen {
		v.log.Printf("DEBUG visualizer: dropping stale result of load %s (generation %d, current %d)", id, gen, v.gen)
		return
	}

	fallback := err != nil
	if fallback {
		v.log.Printf("WARN visualizer: load %s: using generated waveform: %v", id, err)
		profile = waveform.Generate(seed)
	}

	v.pending = &result{gen: gen, id: id, profile: profile, fallback: fallback}
}

func (v *Visualizer) analyse(ctx context.Context, source string) (waveform.Profile, error) {
	if source == "" {
		return nil, ErrEmptySource
	}
	if v.fetcher == nil {
		return nil, ErrNoFetcher
	}

	data, err := v.fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	if v.decoder == nil {
		return nil, ErrNoDecoder
	}

	samples, err := v.decoder.Decode(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return waveform.Reduce(samples), nil
}

// Tick advances the animation one step and renders a frame. Completed loads
// are applied here, once the sink deadline has passed.
func (v *Visualizer) Tick() error {
	v.mtx.Lock()
	defer v.mtx.Unlock()

	if v.phase == Sinking && !v.now().Before(v.sinkUntil) {
		v.phase = Loading
	}

	if v.pending != nil && v.phase == Loading {
		v.accept(v.pending)
		v.pending = nil
	}

	v.state.Advance()

	if (v.phase == Decoded || v.phase == FallbackGenerated) && v.state.Settled() {
		v.phase = Ready
	}

	top, bottom := v.state.Colors()
	frame := render.Frame{
		Opacity:  v.state.Opacity(),
		Progress: v.progress,
		Top:      top,
		Bottom:   bottom,
		Loading:  v.phase == Loading || v.phase == Sinking,
	}
	if v.state.HasProfile() {
		frame.Profile = v.state.Profile()
	}

	return v.surface.Render(frame)
}

// accept must be called with v.mtx held.
func (v *Visualizer) accept(res *result) {
	if res.gen != v.gen {
		v.log.Printf("DEBUG visualizer: dropping stale result of load %s", res.id)
		return
	}

	v.state.SetTargetProfile(res.profile)
	v.state.SetTargetOpacity(1)

	if res.fallback {
		v.phase = FallbackGenerated
	} else {
		v.phase = Decoded
	}
}

// Wait blocks until every load started so far has finished or was dropped.
func (v *Visualizer) Wait() {
	v.wg.Wait()
}

// Close cancels the load in flight and waits for it to exit.
func (v *Visualizer) Close() error {
	v.mtx.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	v.mtx.Unlock()

	v.wg.Wait()
	return nil
}

// SetProgress records the playback position. A non-positive duration
// means no progress; the result is clamped to [0,1].
func (v *Visualizer) SetProgress(elapsed, duration float64) {
	p := 0.0
	if duration > 0 && !math.IsNaN(elapsed) {
		p = utils.Clamp(elapsed/duration, 0, 1)
	}

	v.mtx.Lock()
	v.progress = p
	v.mtx.Unlock()
}

// Progress returns the played fraction in [0,1].
func (v *Visualizer) Progress() float64 {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	return v.progress
}

// SetAccent retargets the accent color only.
func (v *Visualizer) SetAccent(c anim.RGB) {
	v.mtx.Lock()
	v.state.SetTargetColor(c)
	v.mtx.Unlock()
}

// SetAccentHex is SetAccent for "#rrggbb" strings.
func (v *Visualizer) SetAccentHex(hex string) error {
	c, err := anim.ParseHex(hex)
	if err != nil {
		return err
	}
	v.SetAccent(c)
	return nil
}

// Phase returns the current load phase.
func (v *Visualizer) Phase() Phase {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	return v.phase
}

// Source returns the active source.
func (v *Visualizer) Source() string {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	return v.source
}

// RequestID returns the identifier of the active load.
func (v *Visualizer) RequestID() uuid.UUID {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	return v.reqID
}

// Snapshot is a copy of the animation values at one instant.
type Snapshot struct {
	Phase   Phase
	Opacity float64
	Profile waveform.Profile
	Target  waveform.Profile
	Color   anim.RGB
}

// Snapshot copies the current animation values.
func (v *Visualizer) Snapshot() Snapshot {
	v.mtx.Lock()
	defer v.mtx.Unlock()

	return Snapshot{
		Phase:   v.phase,
		Opacity: v.state.Opacity(),
		Profile: v.state.Profile().Clone(),
		Target:  v.state.Target().Clone(),
		Color:   v.state.Color(),
	}
}

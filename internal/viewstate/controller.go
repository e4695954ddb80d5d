// Package viewstate owns the console's view state. A single goroutine (Run)
// applies typed actions from a queue, so state is never mutated
// concurrently. Network calls run on their own goroutines and report back
// through the same queue.
package viewstate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/taneeshamadhu18/video-call-assignment/internal/client"
	"github.com/taneeshamadhu18/video-call-assignment/internal/domain"
)

const (
	DefaultPageSize        = 6
	DefaultDebounceDelay   = 400 * time.Millisecond
	DefaultErrorClearDelay = 3 * time.Second

	storeTimeout = 2 * time.Second
)

// Config tunes paging and timers. Zero PageSize and ErrorClearDelay fall
// back to the defaults; a zero DebounceDelay applies search text at once.
type Config struct {
	PageSize        int
	DebounceDelay   time.Duration
	ErrorClearDelay time.Duration
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock injects the time source for debounce and auto-clear timers.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithOnChange registers fn to receive a copy of the state after every
// applied action. fn runs on the controller goroutine and must not block.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// WithMediaCapture sets the local capture collaborator.
func WithMediaCapture(m MediaCapture) Option {
	return func(c *Controller) { c.media = m }
}

// Controller is the message-passing store behind the console.
type Controller struct {
	api      participantAPI
	durable  Store
	session  Store
	media    MediaCapture
	clock    clockwork.Clock
	log      *slog.Logger
	cfg      Config
	onChange func(State)

	actions chan action
	done    chan struct{}

	// Fields below are owned by the Run goroutine.
	ctx         context.Context
	state       State
	fetchSeq    uint64
	openID      int64
	debounce    clockwork.Timer
	debounceGen uint64
	errTimer    clockwork.Timer
	errGen      uint64

	snapMu sync.RWMutex
	snap   State
}

// New creates a Controller. durable keeps preferences across restarts and
// session keeps media state for this process only; either may be nil.
func New(api participantAPI, durable, session Store, cfg Config, opts ...Option) *Controller {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.DebounceDelay < 0 {
		cfg.DebounceDelay = DefaultDebounceDelay
	}
	if cfg.ErrorClearDelay <= 0 {
		cfg.ErrorClearDelay = DefaultErrorClearDelay
	}

	c := &Controller{
		api:     api,
		durable: durable,
		session: session,
		clock:   clockwork.NewRealClock(),
		log:     slog.Default(),
		cfg:     cfg,
		actions: make(chan action, 64),
		done:    make(chan struct{}),
		state: State{
			PageSize: cfg.PageSize,
			ViewMode: ViewList,
			Theme:    ThemeLight,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "viewstate")
	c.snap = c.state.clone()
	return c
}

// Run restores persisted state, loads the first page and applies actions
// until ctx is cancelled. On return every pending timer is stopped and later
// actions are dropped.
func (c *Controller) Run(ctx context.Context) error {
	c.ctx = ctx
	c.restore()
	c.fetch()
	c.publish()

	defer c.teardown()
	for {
		select {
		case <-ctx.Done():
			return nil
		case a := <-c.actions:
			a.apply(c)
			c.publish()
		}
	}
}

// Snapshot returns a copy of the most recently published state.
func (c *Controller) Snapshot() State {
	c.snapMu.RLock()
	defer c.snapMu.RUnlock()
	return c.snap.clone()
}

func (c *Controller) dispatch(a action) {
	select {
	case c.actions <- a:
	case <-c.done:
	}
}

func (c *Controller) publish() {
	snap := c.state.clone()
	c.snapMu.Lock()
	c.snap = snap
	c.snapMu.Unlock()
	if c.onChange != nil {
		c.onChange(snap.clone())
	}
}

func (c *Controller) teardown() {
	if c.debounce != nil {
		c.debounce.Stop()
	}
	if c.errTimer != nil {
		c.errTimer.Stop()
	}
	close(c.done)
}

// ---------------------------------------------------------------------------
// Public actions
// ---------------------------------------------------------------------------

// SetSearch records raw search text. The debounced search follows after a
// quiet period and resets the page.
func (c *Controller) SetSearch(text string) { c.dispatch(setSearch{text: text}) }

// NextPage moves forward one page when more rows exist.
func (c *Controller) NextPage() { c.dispatch(turnPage{delta: 1}) }

// PrevPage moves back one page unless already on the first.
func (c *Controller) PrevPage() { c.dispatch(turnPage{delta: -1}) }

// Refresh refetches the current page.
func (c *Controller) Refresh() { c.dispatch(refresh{}) }

// SetViewMode switches between list and grid layouts.
func (c *Controller) SetViewMode(mode ViewMode) { c.dispatch(setViewMode{mode: mode}) }

// SetTheme sets the colour scheme.
func (c *Controller) SetTheme(theme Theme) { c.dispatch(setTheme{theme: theme}) }

// ToggleTheme flips between light and dark.
func (c *Controller) ToggleTheme() { c.dispatch(toggleTheme{}) }

// Open shows the detail view for id.
func (c *Controller) Open(id int64) { c.dispatch(openDetail{id: id}) }

// CloseDetail hides the detail view.
func (c *Controller) CloseDetail() { c.dispatch(closeDetail{}) }

// SetMicrophone asks the server to record the microphone intent flag.
func (c *Controller) SetMicrophone(id int64, on bool) {
	c.dispatch(update{id: id, call: func(ctx context.Context, api participantAPI) (*domain.Participant, error) {
		return api.SetMicrophone(ctx, id, on)
	}})
}

// SetCamera asks the server to record the camera intent flag.
func (c *Controller) SetCamera(id int64, on bool) {
	c.dispatch(update{id: id, call: func(ctx context.Context, api participantAPI) (*domain.Participant, error) {
		return api.SetCamera(ctx, id, on)
	}})
}

// SetStatus asks the server to mark the participant online or offline.
func (c *Controller) SetStatus(id int64, online bool) {
	c.dispatch(update{id: id, call: func(ctx context.Context, api participantAPI) (*domain.Participant, error) {
		return api.SetStatus(ctx, id, online)
	}})
}

// ToggleCapture starts or stops local capture of kind.
func (c *Controller) ToggleCapture(kind MediaKind) { c.dispatch(toggleCapture{kind: kind}) }

// DismissError clears the error message immediately.
func (c *Controller) DismissError() { c.dispatch(dismissError{}) }

// ---------------------------------------------------------------------------
// Loop helpers (Run goroutine only)
// ---------------------------------------------------------------------------

// fetch loads the current page and the exact total in parallel. Results of
// superseded fetches are dropped by sequence number. The two calls do not
// cancel each other: the list decides success, the count only refines Total.
func (c *Controller) fetch() {
	c.fetchSeq++
	seq := c.fetchSeq
	search := c.state.DebouncedSearch
	params := client.ListParams{
		Search: search,
		Limit:  c.state.PageSize,
		Offset: c.state.Page * c.state.PageSize,
	}
	c.state.Loading = true

	ctx := c.ctx
	go func() {
		res := fetched{seq: seq}
		var g errgroup.Group
		g.Go(func() error {
			res.list, res.err = c.api.ListParticipants(ctx, params)
			return nil
		})
		g.Go(func() error {
			res.total, res.countErr = c.api.CountParticipants(ctx, search)
			return nil
		})
		_ = g.Wait()
		c.dispatch(res)
	}()
}

// setError shows msg and schedules it to clear. A newer error restarts the
// timer.
func (c *Controller) setError(msg string) {
	c.state.Error = msg
	if c.errTimer != nil {
		c.errTimer.Stop()
	}
	c.errGen++
	gen := c.errGen
	c.errTimer = c.clock.AfterFunc(c.cfg.ErrorClearDelay, func() {
		c.dispatch(errorExpired{gen: gen})
	})
}

func (c *Controller) clearError() {
	c.state.Error = ""
	if c.errTimer != nil {
		c.errTimer.Stop()
		c.errTimer = nil
	}
}

func (c *Controller) scheduleDebounce() {
	if c.debounce != nil {
		c.debounce.Stop()
	}
	c.debounceGen++
	gen := c.debounceGen
	if c.cfg.DebounceDelay == 0 {
		debounceFired{gen: gen}.apply(c)
		return
	}
	c.debounce = c.clock.AfterFunc(c.cfg.DebounceDelay, func() {
		c.dispatch(debounceFired{gen: gen})
	})
}

// ---------------------------------------------------------------------------
// Persistence
// ---------------------------------------------------------------------------

func (c *Controller) restore() {
	if v, ok := c.load(c.durable, keyTheme); ok && Theme(v).valid() {
		c.state.Theme = Theme(v)
	}
	if v, ok := c.load(c.durable, keyViewMode); ok && ViewMode(v).valid() {
		c.state.ViewMode = ViewMode(v)
	}
	if v, ok := c.load(c.durable, keySearch); ok {
		c.state.Search = v
		c.state.DebouncedSearch = v
	}
	if v, ok := c.load(c.durable, keyPage); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.state.Page = n
		}
	}
	if v, ok := c.load(c.session, keyMedia); ok {
		var m MediaState
		if err := json.Unmarshal([]byte(v), &m); err == nil {
			c.state.Media = m
		}
	}
}

func (c *Controller) load(s Store, key string) (string, bool) {
	if s == nil {
		return "", false
	}
	ctx, cancel := context.WithTimeout(c.ctx, storeTimeout)
	defer cancel()

	v, ok, err := s.Get(ctx, key)
	if err != nil {
		c.log.Warn("restore state", slog.String("key", key), slog.String("error", err.Error()))
		return "", false
	}
	return v, ok
}

func (c *Controller) save(s Store, key, value string) {
	if s == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.ctx, storeTimeout)
	defer cancel()

	if err := s.Set(ctx, key, value); err != nil && !errors.Is(err, context.Canceled) {
		c.log.Warn("persist state", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (c *Controller) saveMedia() {
	buf, err := json.Marshal(c.state.Media)
	if err != nil {
		return
	}
	c.save(c.session, keyMedia, string(buf))
}

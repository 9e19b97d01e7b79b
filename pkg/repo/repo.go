package repo

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/foomo/contentadmin/content"
	"github.com/foomo/contentadmin/pkg/metrics"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNotRunning the dispatch routine stopped before the operation was accepted
var ErrNotRunning = errors.New("repo is not running")

// Repo session scoped content store.
// All reads and mutations of the collections run one at a time on the dispatch routine.
type (
	Repo struct {
		l           *zap.Logger
		source      Source
		newID       content.IDFunc
		now         func() time.Time
		onLoaded    func()
		loaded      *atomic.Bool
		running     *atomic.Bool
		opChannel   chan func()
		doneChannel chan struct{}
		// only touched on the dispatch routine
		state *state
	}
	Option func(*Repo)
)

type state struct {
	announcements []content.Announcement
	events        []content.Event
	resources     *content.TreeNode
	timetable     content.Timetable
	lastUpdated   time.Time
}

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

func New(l *zap.Logger, source Source, opts ...Option) *Repo {
	inst := &Repo{
		l:           l.Named("repo"),
		source:      source,
		newID:       content.NewID,
		now:         time.Now,
		loaded:      &atomic.Bool{},
		running:     &atomic.Bool{},
		opChannel:   make(chan func()),
		doneChannel: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(inst)
	}

	inst.state = newState(inst.newID)

	return inst
}

func newState(newID content.IDFunc) *state {
	return &state{
		announcements: []content.Announcement{},
		events:        []content.Event{},
		resources:     content.NewRoot(newID),
		timetable:     content.NewTimetable(),
	}
}

// reset puts the default value of a collection back in place
func (s *state) reset(collection content.Collection, newID content.IDFunc) {
	switch collection {
	case content.CollectionAnnouncements:
		s.announcements = []content.Announcement{}
	case content.CollectionEvents:
		s.events = []content.Event{}
	case content.CollectionResources:
		s.resources = content.NewRoot(newID)
	case content.CollectionTimetable:
		s.timetable = content.NewTimetable()
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

func WithIDFunc(v content.IDFunc) Option {
	return func(o *Repo) {
		o.newID = v
	}
}

func WithClock(v func() time.Time) Option {
	return func(o *Repo) {
		o.now = v
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Getter
// ------------------------------------------------------------------------------------------------

func (r *Repo) Loaded() bool {
	return r.loaded.Load()
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

func (r *Repo) OnLoaded(fn func()) {
	r.onLoaded = fn
}

// Start runs the dispatch routine and the initial load until ctx is done.
// When it returns the session state has been discarded.
func (r *Repo) Start(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	l := r.l.Named("start")

	up := make(chan bool, 1)
	g.Go(func() error {
		l.Debug("starting dispatch routine")
		up <- true
		return r.DispatchRoutine(gCtx)
	})
	l.Debug("waiting for DispatchRoutine")
	<-up

	g.Go(func() error {
		l.Debug("loading initial state")
		resp := r.Load(gCtx)
		if !resp.Success {
			l.Error("failed to load initial state",
				zap.Any("fallbacks", resp.Fallbacks),
				zap.Float64("runtime", resp.Runtime),
			)
		}
		return nil
	})

	return g.Wait()
}

// DispatchRoutine executes queued operations one after another
func (r *Repo) DispatchRoutine(ctx context.Context) error {
	l := r.l.Named("routine.dispatch")
	r.running.Store(true)
	defer func() {
		r.running.Store(false)
		r.loaded.Store(false)
		r.state = newState(r.newID)
		close(r.doneChannel)
		l.Debug("session state discarded")
	}()
	for {
		select {
		case <-ctx.Done():
			l.Debug("routine canceled", zap.Error(ctx.Err()))
			return nil
		case op := <-r.opChannel:
			op()
		}
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

// do hands fn to the dispatch routine and waits for its result
func (r *Repo) do(ctx context.Context, fn func(s *state) error) error {
	errChan := make(chan error, 1)
	op := func() {
		defer func() {
			if p := recover(); p != nil {
				errChan <- fmt.Errorf("operation panicked: %v", p)
			}
		}()
		errChan <- fn(r.state)
	}

	select {
	case r.opChannel <- op:
	case <-r.doneChannel:
		return ErrNotRunning
	case <-ctx.Done():
		return ctx.Err()
	}

	err := <-errChan
	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.CommandCounter.WithLabelValues(result).Inc()
	return err
}

// touch records a change of the session state
func (r *Repo) touch(s *state) {
	s.lastUpdated = r.now()
	metrics.ResourceNodesGauge.WithLabelValues().Set(float64(content.Count(s.resources)))
}

package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/foomo/contentadmin/content"
	"github.com/foomo/contentadmin/pkg/metrics"
	"github.com/foomo/contentadmin/responses"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MessageLoadFailed notification shown when a load could not be applied
const MessageLoadFailed = "Error loading data"

// Load fetches all collections concurrently and replaces the session state.
// Every collection falls back to its default on its own, only a failure of the whole
// sequence is reported as unsuccessful.
func (r *Repo) Load(ctx context.Context) *responses.Load {
	start := time.Now()
	l := r.l.Named("load").With(zap.String("run_id", uuid.New().String()))
	l.Info("load started")

	var (
		next     = newState(r.newID)
		format   content.ResourcesFormat
		failures = make([]error, len(content.Collections))
		panicked = make([]bool, len(content.Collections))
		g        errgroup.Group
	)
	for i, collection := range content.Collections {
		i, collection := i, collection
		g.Go(func() error {
			defer func() {
				if p := recover(); p != nil {
					panicked[i] = true
					failures[i] = fmt.Errorf("loading %s panicked: %v", collection, p)
				}
			}()
			switch collection {
			case content.CollectionAnnouncements:
				next.announcements, failures[i] = loadList[content.Announcement](ctx, r, l, collection)
			case content.CollectionEvents:
				next.events, failures[i] = loadList[content.Event](ctx, r, l, collection)
			case content.CollectionResources:
				next.resources, format, failures[i] = r.loadResources(ctx, l)
			case content.CollectionTimetable:
				next.timetable, failures[i] = r.loadTimetable(ctx, l)
			}
			return nil
		})
	}
	_ = g.Wait()

	resp := &responses.Load{
		ResourcesFormat: format,
	}
	var aggregate error
	for i, err := range failures {
		if err == nil {
			continue
		}
		collection := content.Collections[i]
		metrics.CollectionFallbackCounter.WithLabelValues(string(collection)).Inc()
		if resp.Fallbacks == nil {
			resp.Fallbacks = map[content.Collection]string{}
		}
		resp.Fallbacks[collection] = err.Error()
		if panicked[i] {
			next.reset(collection, r.newID)
			aggregate = multierr.Append(aggregate, err)
		}
	}
	applyErr := r.do(ctx, func(s *state) error {
		r.touch(next)
		r.state = next
		resp.Stats = r.stats(next)
		return nil
	})
	aggregate = multierr.Append(aggregate, applyErr)

	resp.Runtime = time.Since(start).Seconds()
	metrics.LoadDuration.WithLabelValues().Observe(resp.Runtime)

	// the session holds a complete state from here on, defaults included
	initial := applyErr == nil && !r.loaded.Swap(true)

	if aggregate != nil {
		l.Error("load failed", zap.Error(aggregate))
		metrics.LoadsFailedCounter.WithLabelValues().Inc()
		resp.Notification = content.NewNotification(content.NotificationError, MessageLoadFailed)
	} else {
		resp.Success = true
		metrics.LoadsCompletedCounter.WithLabelValues().Inc()
		l.Info("load success", zap.Bool("initial", initial), zap.Int("resources", resp.Stats.Resources))
	}

	if initial && r.onLoaded != nil {
		r.onLoaded()
	}
	return resp
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

// loadList decodes a list collection, any failure yields an empty list
func loadList[T any](ctx context.Context, r *Repo, l *zap.Logger, collection content.Collection) ([]T, error) {
	data, err := r.source.Fetch(ctx, collection.Filename())
	if err != nil {
		l.Info(fmt.Sprintf("no %s data found", collection), zap.Error(err))
		return []T{}, err
	}
	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		l.Warn("could not decode collection", zap.String("collection", string(collection)), zap.Error(err))
		return []T{}, errors.Wrapf(err, "failed to decode %s", collection)
	}
	if list == nil {
		// null document
		list = []T{}
	}
	return list, nil
}

func (r *Repo) loadResources(ctx context.Context, l *zap.Logger) (*content.TreeNode, content.ResourcesFormat, error) {
	data, err := r.source.Fetch(ctx, content.CollectionResources.Filename())
	if err != nil {
		l.Info("no resources data found", zap.Error(err))
		return content.NewRoot(r.newID), "", err
	}
	root, format, err := content.DecodeResources(data, r.newID)
	if err != nil {
		l.Warn("could not decode resources, using an empty tree", zap.Error(err))
		return content.NewRoot(r.newID), "", err
	}
	l.Debug("loaded resources", zap.String("format", string(format)), zap.Int("files", content.Count(root)))
	return root, format, nil
}

func (r *Repo) loadTimetable(ctx context.Context, l *zap.Logger) (content.Timetable, error) {
	data, err := r.source.Fetch(ctx, content.CollectionTimetable.Filename())
	if err != nil {
		l.Info("no timetable data found", zap.Error(err))
		return content.NewTimetable(), err
	}
	timetable, err := content.DecodeTimetable(data)
	if err != nil {
		l.Warn("could not decode timetable", zap.Error(err))
		return timetable, errors.Wrap(err, "failed to decode timetable")
	}
	return timetable, nil
}

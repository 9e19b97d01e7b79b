package repo

import (
	"context"

	"github.com/foomo/contentadmin/content"
	"github.com/foomo/contentadmin/pkg/metrics"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Download serialized collection, ready to be offered as a file
type Download struct {
	Collection content.Collection
	Filename   string
	Data       []byte
}

// Export serializes the current state of a collection, the resource tree without ids.
// The live state is not modified.
func (r *Repo) Export(ctx context.Context, collection content.Collection) (*Download, error) {
	var data []byte
	err := r.do(ctx, func(s *state) error {
		var doc interface{}
		switch collection {
		case content.CollectionAnnouncements:
			doc = s.announcements
		case content.CollectionEvents:
			doc = s.events
		case content.CollectionResources:
			doc = content.Clean(s.resources)
		case content.CollectionTimetable:
			doc = s.timetable
		default:
			return errors.Wrap(content.ErrUnknownCollection, string(collection))
		}
		// encode on the routine, the lists are shared with the session state
		var err error
		data, err = content.Encode(doc)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.ExportCounter.WithLabelValues(string(collection)).Inc()
	r.l.Info("exported collection", zap.String("collection", string(collection)))

	return &Download{
		Collection: collection,
		Filename:   collection.Filename(),
		Data:       data,
	}, nil
}

// ExportAll exports every collection into the given storage
func (r *Repo) ExportAll(ctx context.Context, storage Storage) ([]*Download, error) {
	downloads := make([]*Download, 0, len(content.Collections))
	for _, collection := range content.Collections {
		download, err := r.Export(ctx, collection)
		if err != nil {
			return nil, err
		}
		if err := storage.Write(ctx, download.Filename, download.Data); err != nil {
			return nil, errors.Wrapf(err, "failed to write %s", download.Filename)
		}
		downloads = append(downloads, download)
	}
	return downloads, nil
}

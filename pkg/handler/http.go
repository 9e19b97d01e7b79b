package handler

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/foomo/contentadmin/content"
	"github.com/foomo/contentadmin/pkg/metrics"
	"github.com/foomo/contentadmin/pkg/repo"
	"github.com/foomo/contentadmin/requests"
	"github.com/foomo/contentadmin/responses"
	httputils "github.com/foomo/keel/utils/net/http"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// exportPath path segment of the download routes, e.g. /contentadmin/export/events
const exportPath = "export/"

type (
	HTTP struct {
		l        *zap.Logger
		basePath string
		repo     *repo.Repo
	}
	HTTPOption func(*HTTP)
)

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

// NewHTTP returns the admin api handler
func NewHTTP(l *zap.Logger, repo *repo.Repo, opts ...HTTPOption) http.Handler {
	inst := &HTTP{
		l:        l.Named("http"),
		basePath: "/contentadmin",
		repo:     repo,
	}

	for _, opt := range opts {
		opt(inst)
	}

	return inst
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

func WithBasePath(v string) HTTPOption {
	return func(o *HTTP) {
		o.basePath = strings.TrimSuffix(v, "/")
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, h.basePath+"/")

	if r.Method == http.MethodGet && strings.HasPrefix(path, exportPath) {
		h.handleExport(w, r, strings.TrimPrefix(path, exportPath))
		return
	}
	if r.Method != http.MethodPost {
		httputils.ServerError(h.l, w, r, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	var body []byte
	if r.Body != nil {
		var err error
		if body, err = io.ReadAll(r.Body); err != nil {
			httputils.BadRequestServerError(h.l, w, r, errors.Wrap(err, "failed to read incoming request"))
			return
		}
	}

	reply := h.handleRequest(r, Route(path), body)
	bytes, err := json.Marshal(reply)
	if err != nil {
		httputils.ServerError(h.l, w, r, http.StatusInternalServerError, errors.Wrap(err, "could not encode reply"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(bytes)
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func (h *HTTP) handleRequest(r *http.Request, route Route, body []byte) *responses.Reply {
	start := time.Now()

	reply := h.executeRequest(r, route, body)
	status := "success"
	if e, ok := reply.Reply.(*responses.Error); ok {
		status = "error"
		if e.Code == responses.ErrorCodeUnknownRoute {
			route = "unknown"
		}
	}

	metrics.ServiceRequestCounter.WithLabelValues(string(route), status).Inc()
	metrics.ServiceRequestDuration.WithLabelValues(string(route), status).Observe(time.Since(start).Seconds())

	return reply
}

func (h *HTTP) executeRequest(r *http.Request, route Route, body []byte) *responses.Reply {
	var (
		ctx               = r.Context()
		reply             = &responses.Reply{}
		apiErr            error
		jsonErr           error
		processIfJSONIsOk = func(v interface{}, processingFunc func()) {
			if len(body) > 0 {
				if err := json.Unmarshal(body, v); err != nil {
					jsonErr = err
					return
				}
			}
			processingFunc()
		}
		notify = func(message string) {
			if apiErr == nil {
				reply.Notification = content.NewNotification(content.NotificationSuccess, message)
			}
		}
	)

	switch route {
	// queries
	case RouteGetStats:
		processIfJSONIsOk(&requests.Empty{}, func() {
			reply.Reply, apiErr = h.repo.Stats(ctx)
		})
	case RouteGetAnnouncements:
		processIfJSONIsOk(&requests.Empty{}, func() {
			reply.Reply, apiErr = h.repo.Announcements(ctx)
		})
	case RouteGetEvents:
		processIfJSONIsOk(&requests.Empty{}, func() {
			reply.Reply, apiErr = h.repo.Events(ctx)
		})
	case RouteGetResources:
		processIfJSONIsOk(&requests.Empty{}, func() {
			reply.Reply, apiErr = h.repo.Resources(ctx)
		})
	case RouteGetTimetable:
		processIfJSONIsOk(&requests.Empty{}, func() {
			reply.Reply, apiErr = h.repo.Timetable(ctx)
		})
	// announcements
	case RouteAddAnnouncement:
		processIfJSONIsOk(&requests.Empty{}, func() {
			reply.Reply, apiErr = h.repo.AddAnnouncement(ctx)
			notify(MessageAnnouncementCreated)
		})
	case RouteUpdateAnnouncement:
		req := &requests.Field{}
		processIfJSONIsOk(req, func() {
			reply.Reply, apiErr = h.repo.SetAnnouncementField(ctx, req.Index, req.Field, req.Value)
		})
	case RouteDeleteAnnouncement:
		req := &requests.Index{}
		processIfJSONIsOk(req, func() {
			apiErr = h.repo.DeleteAnnouncement(ctx, req.Index)
			reply.Reply = apiErr == nil
			notify(MessageAnnouncementDeleted)
		})
	// events
	case RouteAddEvent:
		processIfJSONIsOk(&requests.Empty{}, func() {
			reply.Reply, apiErr = h.repo.AddEvent(ctx)
			notify(MessageEventCreated)
		})
	case RouteUpdateEvent:
		req := &requests.Field{}
		processIfJSONIsOk(req, func() {
			reply.Reply, apiErr = h.repo.SetEventField(ctx, req.Index, req.Field, req.Value)
		})
	case RouteDeleteEvent:
		req := &requests.Index{}
		processIfJSONIsOk(req, func() {
			apiErr = h.repo.DeleteEvent(ctx, req.Index)
			reply.Reply = apiErr == nil
			notify(MessageEventDeleted)
		})
	// timetable
	case RouteUpdateTimetable:
		req := &requests.Timetable{}
		processIfJSONIsOk(req, func() {
			timetable := content.Timetable{URL: req.URL, Type: content.TimetableType(req.Type)}
			apiErr = h.repo.SetTimetable(ctx, timetable)
			reply.Reply = timetable
		})
	// resources
	case RouteAddResource:
		req := &requests.AddResource{}
		processIfJSONIsOk(req, func() {
			reply.Reply, apiErr = h.repo.AddResource(ctx, req.ParentID, req.Name, content.NodeType(req.Type), req.URL)
		})
	case RouteRenameResource:
		req := &requests.RenameResource{}
		processIfJSONIsOk(req, func() {
			apiErr = h.repo.RenameResource(ctx, req.ID, req.Name)
			reply.Reply = apiErr == nil
		})
	case RouteUpdateResourceURL:
		req := &requests.ResourceURL{}
		processIfJSONIsOk(req, func() {
			apiErr = h.repo.SetResourceURL(ctx, req.ID, req.URL)
			reply.Reply = apiErr == nil
		})
	case RouteRemoveResource:
		req := &requests.RemoveResource{}
		processIfJSONIsOk(req, func() {
			apiErr = h.repo.RemoveResource(ctx, req.ID)
			reply.Reply = apiErr == nil
		})
	// session
	case RouteReload:
		processIfJSONIsOk(&requests.Empty{}, func() {
			resp := h.repo.Load(ctx)
			reply.Reply = resp
			reply.Notification = resp.Notification
		})
	default:
		reply.Reply = responses.NewError(http.StatusNotFound, responses.ErrorCodeUnknownRoute, "unknown route: "+string(route))
	}

	// error handling
	if jsonErr != nil {
		h.l.Error("could not read incoming json", zap.String("route", string(route)), zap.Error(jsonErr))
		reply.Reply = responses.NewError(http.StatusBadRequest, responses.ErrorCodeInvalidJSON, "could not read incoming json "+jsonErr.Error())
	} else if apiErr != nil {
		h.l.Warn("command rejected", zap.String("route", string(route)), zap.Error(apiErr))
		reply.Reply = responses.NewError(http.StatusUnprocessableEntity, responses.ErrorCodeRejected, apiErr.Error())
		reply.Notification = content.NewNotification(content.NotificationError, apiErr.Error())
	}

	return reply
}

// handleExport offers a collection as file download
func (h *HTTP) handleExport(w http.ResponseWriter, r *http.Request, name string) {
	collection, err := content.ParseCollection(name)
	if err != nil {
		httputils.ServerError(h.l, w, r, http.StatusNotFound, err)
		return
	}
	download, err := h.repo.Export(r.Context(), collection)
	if err != nil {
		httputils.ServerError(h.l, w, r, http.StatusInternalServerError, errors.Wrap(err, "failed to export"))
		return
	}

	metrics.ServiceRequestCounter.WithLabelValues(string(RouteExport), "success").Inc()

	w.Header().Set("Content-Type", repo.ContentTypeJSON)
	w.Header().Set("Content-Disposition", `attachment; filename="`+download.Filename+`"`)
	w.Header().Set(HeaderNotification, ExportMessage(collection))
	_, _ = w.Write(download.Data)
}

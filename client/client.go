package client

import (
	"context"
	"net/http"

	"github.com/foomo/contentadmin/content"
	"github.com/foomo/contentadmin/pkg/handler"
	"github.com/foomo/contentadmin/pkg/utils"
	"github.com/foomo/contentadmin/requests"
	"github.com/foomo/contentadmin/responses"
	"github.com/pkg/errors"
)

// Client a content admin client
type Client struct {
	t transport
}

// Download exported collection document
type Download struct {
	Filename string
	// Message notification sent along with the file
	Message string
	Data    []byte
}

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

func New(t transport) *Client {
	return &Client{
		t: t,
	}
}

// NewHTTPClient talks to the admin api below server, e.g. http://localhost:8080/contentadmin
func NewHTTPClient(server string, httpClient ...*http.Client) (*Client, error) {
	if !utils.IsValidUrl(server) {
		return nil, errors.Errorf("invalid server url %q", server)
	}
	c := http.DefaultClient
	if len(httpClient) > 0 && httpClient[0] != nil {
		c = httpClient[0]
	}
	return New(NewHTTPTransport(server, c)), nil
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

func (c *Client) Stats(ctx context.Context) (stats content.Stats, err error) {
	err = c.t.call(ctx, handler.RouteGetStats, &requests.Empty{}, &stats)
	return
}

func (c *Client) Announcements(ctx context.Context) (list []content.Announcement, err error) {
	err = c.t.call(ctx, handler.RouteGetAnnouncements, &requests.Empty{}, &list)
	return
}

func (c *Client) Events(ctx context.Context) (list []content.Event, err error) {
	err = c.t.call(ctx, handler.RouteGetEvents, &requests.Empty{}, &list)
	return
}

func (c *Client) Resources(ctx context.Context) (root *content.TreeNode, err error) {
	root = &content.TreeNode{}
	err = c.t.call(ctx, handler.RouteGetResources, &requests.Empty{}, root)
	return
}

func (c *Client) Timetable(ctx context.Context) (timetable content.Timetable, err error) {
	err = c.t.call(ctx, handler.RouteGetTimetable, &requests.Empty{}, &timetable)
	return
}

func (c *Client) AddAnnouncement(ctx context.Context) (item content.Announcement, err error) {
	err = c.t.call(ctx, handler.RouteAddAnnouncement, &requests.Empty{}, &item)
	return
}

func (c *Client) UpdateAnnouncement(ctx context.Context, index int, field, value string) (item content.Announcement, err error) {
	err = c.t.call(ctx, handler.RouteUpdateAnnouncement, &requests.Field{Index: index, Field: field, Value: value}, &item)
	return
}

func (c *Client) DeleteAnnouncement(ctx context.Context, index int) error {
	return c.t.call(ctx, handler.RouteDeleteAnnouncement, &requests.Index{Index: index}, nil)
}

func (c *Client) AddEvent(ctx context.Context) (item content.Event, err error) {
	err = c.t.call(ctx, handler.RouteAddEvent, &requests.Empty{}, &item)
	return
}

func (c *Client) UpdateEvent(ctx context.Context, index int, field, value string) (item content.Event, err error) {
	err = c.t.call(ctx, handler.RouteUpdateEvent, &requests.Field{Index: index, Field: field, Value: value}, &item)
	return
}

func (c *Client) DeleteEvent(ctx context.Context, index int) error {
	return c.t.call(ctx, handler.RouteDeleteEvent, &requests.Index{Index: index}, nil)
}

func (c *Client) UpdateTimetable(ctx context.Context, timetable content.Timetable) error {
	return c.t.call(ctx, handler.RouteUpdateTimetable, &requests.Timetable{URL: timetable.URL, Type: string(timetable.Type)}, nil)
}

func (c *Client) AddResource(ctx context.Context, parentID, name string, nodeType content.NodeType, url string) (node *content.TreeNode, err error) {
	node = &content.TreeNode{}
	err = c.t.call(ctx, handler.RouteAddResource, &requests.AddResource{
		ParentID: parentID,
		Name:     name,
		Type:     string(nodeType),
		URL:      url,
	}, node)
	return
}

func (c *Client) RenameResource(ctx context.Context, id, name string) error {
	return c.t.call(ctx, handler.RouteRenameResource, &requests.RenameResource{ID: id, Name: name}, nil)
}

func (c *Client) UpdateResourceURL(ctx context.Context, id, url string) error {
	return c.t.call(ctx, handler.RouteUpdateResourceURL, &requests.ResourceURL{ID: id, URL: url}, nil)
}

func (c *Client) RemoveResource(ctx context.Context, id string) error {
	return c.t.call(ctx, handler.RouteRemoveResource, &requests.RemoveResource{ID: id}, nil)
}

// Reload tell the server to load all collections again
func (c *Client) Reload(ctx context.Context) (response *responses.Load, err error) {
	response = &responses.Load{}
	err = c.t.call(ctx, handler.RouteReload, &requests.Empty{}, response)
	return
}

// Export download the clean document of a collection
func (c *Client) Export(ctx context.Context, collection content.Collection) (*Download, error) {
	return c.t.download(ctx, string(collection))
}

func (c *Client) ShutDown() {
	c.t.shutdown()
}

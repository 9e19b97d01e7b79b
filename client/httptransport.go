package client

import (
	"bytes"
	"context"
	"io"
	"mime"
	"net/http"

	"github.com/foomo/contentadmin/pkg/handler"
	"github.com/foomo/contentadmin/responses"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type (
	httpTransport struct {
		client   *http.Client
		endpoint string
	}
	envelope struct {
		Reply jsoniter.RawMessage `json:"reply"`
	}
)

// NewHTTPTransport will create a new http transport for the given server and client.
// Caution: the provided server url is not validated!
func NewHTTPTransport(server string, client *http.Client) transport {
	return &httpTransport{
		endpoint: server,
		client:   client,
	}
}

func (ht *httpTransport) shutdown() {
	ht.client.CloseIdleConnections()
}

func (ht *httpTransport) call(ctx context.Context, route handler.Route, request interface{}, response interface{}) error {
	requestBytes, err := json.Marshal(request)
	if err != nil {
		return errors.Wrap(err, "failed to marshal request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ht.endpoint+"/"+string(route), bytes.NewBuffer(requestBytes))
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")

	responseBytes, _, err := ht.do(req)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(responseBytes, &env); err != nil {
		return errors.Wrap(err, "failed to unmarshal reply")
	}
	var replyErr responses.Error
	if json.Unmarshal(env.Reply, &replyErr) == nil && replyErr.Code != 0 {
		return &replyErr
	}
	if response == nil {
		return nil
	}
	return json.Unmarshal(env.Reply, response)
}

func (ht *httpTransport) download(ctx context.Context, collection string) (*Download, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ht.endpoint+"/"+string(handler.RouteExport)+"/"+collection, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	data, header, err := ht.do(req)
	if err != nil {
		return nil, err
	}
	d := &Download{
		Filename: collection + ".json",
		Message:  header.Get(handler.HeaderNotification),
		Data:     data,
	}
	if _, params, err := mime.ParseMediaType(header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		d.Filename = params["filename"]
	}
	return d, nil
}

func (ht *httpTransport) do(req *http.Request) ([]byte, http.Header, error) {
	req.Header.Set(handler.SessionHeaderName, "true")
	httpResponse, err := ht.client.Do(req)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to send request")
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return nil, nil, errors.Errorf("non 200 reply: %s", httpResponse.Status)
	}
	responseBytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read response")
	}
	return responseBytes, httpResponse.Header, nil
}

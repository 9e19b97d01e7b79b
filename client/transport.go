package client

import (
	"context"

	"github.com/foomo/contentadmin/pkg/handler"
)

type transport interface {
	call(ctx context.Context, route handler.Route, request interface{}, response interface{}) error
	download(ctx context.Context, collection string) (*Download, error)
	shutdown()
}

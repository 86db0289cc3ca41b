package http

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/placemarks-app/placemarks/pkg/log"
)

type (
	ClientOption func(*clientImpl)

	Client interface {
		NewRequest(ctx context.Context) *resty.Request
		With(opts ...ClientOption) Client
	}

	clientImpl struct {
		destinationName string
		restClient      *resty.Client
		opts            []ClientOption
	}
)

func NewClient(opts ...ClientOption) Client {
	client := clientImpl{
		destinationName: "",
		restClient:      resty.New(),
		opts:            opts,
	}

	for _, opt := range opts {
		opt(&client)
	}

	return client
}

func (c clientImpl) NewRequest(ctx context.Context) *resty.Request {
	return c.restClient.NewRequest().SetContext(ctx)
}

func (c clientImpl) With(opts ...ClientOption) Client {
	mergedOpts := make([]ClientOption, 0, len(c.opts)+len(opts))
	mergedOpts = append(mergedOpts, c.opts...)
	mergedOpts = append(mergedOpts, opts...)
	return NewClient(mergedOpts...)
}

func WithClientDestination(name, baseURL string) ClientOption {
	return func(c *clientImpl) {
		c.destinationName = name
		c.restClient.SetBaseURL(baseURL)
	}
}

func WithClientHeader(name, value string) ClientOption {
	return func(c *clientImpl) {
		c.restClient.SetHeader(name, value)
	}
}

func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	return func(c *clientImpl) {
		destinationName := func() string {
			if c.destinationName != "" {
				return c.destinationName
			}
			return "-"
		}

		c.restClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			requestLogger := logger.With(log.Fields{
				"destination":   destinationName(),
				"method":        resp.Request.Method,
				"url":           resp.Request.URL,
				"response_code": resp.StatusCode(),
			})

			if resp.StatusCode() >= http.StatusInternalServerError {
				requestLogger.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				requestLogger.Log(resp.Request.Context(), infoLevel, "http call completed")
			}

			return nil
		})

		c.restClient.OnError(func(req *resty.Request, err error) {
			logger.
				With(log.Fields{
					"destination": destinationName(),
					"method":      req.Method,
					"url":         req.URL,
				}).
				WithError(err).
				Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

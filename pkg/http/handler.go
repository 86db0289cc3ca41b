package http

import (
	"encoding/json"
	"errors"
	"net/http"
)

type HandlerFunc func(w ResponseWriter, r *http.Request) error

type Handler interface {
	Method() string
	Path() string
	Handle(w ResponseWriter, r *http.Request) error
}

type ResponseWriter interface {
	SetHeader(key, value string) ResponseWriter
	SetStatusCode(httpCode int) ResponseWriter
	SetCookie(cookie *http.Cookie) ResponseWriter
	SetJSONBody(data any) ResponseWriter
}

type responseWriter struct {
	impl     http.ResponseWriter
	code     int
	jsonBody any
	hasBody  bool
}

func newResponseWriter(impl http.ResponseWriter) *responseWriter {
	return &responseWriter{impl: impl}
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.code = httpCode
	return w
}

func (w *responseWriter) SetCookie(cookie *http.Cookie) ResponseWriter {
	http.SetCookie(w.impl, cookie)
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.jsonBody = data
	w.hasBody = true
	return w
}

// persist writes the collected response. The status code defaults to 200 on
// success and 500 when the handler returned an error without setting a code.
func (w *responseWriter) persist(handlerErr error) {
	code := w.code
	if code == 0 {
		switch {
		case handlerErr == nil:
			code = http.StatusOK
		case errors.Is(handlerErr, ErrParsingError):
			code = http.StatusBadRequest
		default:
			code = http.StatusInternalServerError
		}
	}

	if !w.hasBody {
		w.impl.WriteHeader(code)
		return
	}

	w.impl.Header().Set("Content-Type", "application/json")
	w.impl.WriteHeader(code)
	_ = json.NewEncoder(w.impl).Encode(w.jsonBody)
}

func httpHandlerWrapper(handler HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := newResponseWriter(w)
		err := handler(respWriter, r)
		respWriter.persist(err)
	}
}

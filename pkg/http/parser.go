package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	pkgstrings "github.com/placemarks-app/placemarks/pkg/strings"
)

type RequestDataProvider[T any] func(*http.Request) (T, error)

var ErrParsingError = errors.New("failed to parse request")

func ParseRequest[T any](r *http.Request, provider RequestDataProvider[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	result, err := provider(r)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrParsingError, err)
	}
	return result, nil
}

func ParseRequestOptional[T any](r *http.Request, provider RequestDataProvider[T], lastErr error) *T {
	if lastErr != nil {
		return nil
	}

	result, err := provider(r)
	if err != nil {
		return nil
	}

	return &result
}

func PathParameter[T pkgstrings.SupportedParsingTypes](param string) RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		paramValue, ok := mux.Vars(r)[param]
		if !ok {
			var result T
			return result, fmt.Errorf("path parameter %s not found", param)
		}

		return pkgstrings.ParseTypedValue[T](paramValue)
	}
}

func QueryParameter[T pkgstrings.SupportedParsingTypes](param string) RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		value := r.URL.Query().Get(param)
		if value == "" {
			var result T
			return result, fmt.Errorf("query parameter %s not found", param)
		}

		return pkgstrings.ParseTypedValue[T](value)
	}
}

func Header[T pkgstrings.SupportedParsingTypes](key string) RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		header := r.Header.Get(key)
		if header == "" {
			var result T
			return result, fmt.Errorf("header with key %s not found", key)
		}

		return pkgstrings.ParseTypedValue[T](header)
	}
}

func JSONBody[T any]() RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		var result T
		err := json.NewDecoder(r.Body).Decode(&result)
		if err != nil {
			return result, fmt.Errorf("decode json body: %w", err)
		}

		return result, nil
	}
}

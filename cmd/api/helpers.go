// cmd/api/helpers.go
// This file contains general-purpose helper functions for the application.
// Error-response helpers live in errors.go; only non-error utilities are here.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
)

// json behaves like encoding/json, including its error messages.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// strictJSON is json with unknown object keys treated as an error.
var strictJSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	DisallowUnknownFields:  true,
}.Froze()

// maxBodyBytes caps request bodies at 1 MB.
const maxBodyBytes = 1_048_576

// envelope is the top-level JSON wrapper type used for all API responses.
// Every response body is a JSON object with at least one named key,
// e.g. {"book": {...}} or {"books": [...]}.
type envelope map[string]any

// readIntParam extracts the named httprouter URL parameter as an int64.
// Range checks are left to the caller so they surface as validation errors.
func (app *applicationDependencies) readIntParam(r *http.Request, name string) (int64, error) {
	params := httprouter.ParamsFromContext(r.Context())
	n, err := strconv.ParseInt(params.ByName(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter", name)
	}
	return n, nil
}

// readInt reads an integer query parameter from qs. The boolean reports
// whether the key was present; an unparsable value is an error.
func (app *applicationDependencies) readInt(qs url.Values, key string) (int, bool, error) {
	s := qs.Get(key)
	if s == "" {
		return 0, false, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, true, fmt.Errorf("%s query parameter must be an integer", key)
	}
	return i, true, nil
}

// writeJSON marshals data to indented JSON, applies any custom headers,
// sets Content-Type to "application/json", writes the status code, and
// streams the body to the client.
func (app *applicationDependencies) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	// jsoniter only indents with spaces.
	js, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)
	return nil
}

// readJSON decodes a single JSON value from the request body into dst.
// It enforces a 1 MB size limit, rejects unknown fields, and ensures the
// body contains exactly one JSON value. Trailing whitespace is allowed.
func (app *applicationDependencies) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	// Read the capped body up front so an oversize request surfaces as
	// *http.MaxBytesError rather than a decoder message.
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)
		}
		return err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return errors.New("body must not be empty")
	}

	err = strictJSON.Unmarshal(body, dst)
	if err != nil {
		if strings.Contains(err.Error(), "there are bytes left after unmarshal") {
			return errors.New("body must only contain a single JSON value")
		}
		return fmt.Errorf("body contains badly-formed JSON: %w", err)
	}

	return nil
}

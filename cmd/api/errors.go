// cmd/api/errors.go
// Every non-2xx JSON body the catalog sends is built here, so the
// {"error": ...} shape and the per-route messages live in one place.
package main

import (
	"log/slog"
	"net/http"
)

// bookNotFoundMessages is the 404 text each catalog route answers with when
// no book carries the requested id. Clients of the original service match
// on these strings, including their capitalisation and punctuation.
var bookNotFoundMessages = map[string]string{
	http.MethodGet:    "item not found",
	http.MethodPut:    "Item not found",
	http.MethodDelete: "Item not found.",
}

// logError records a failure we did not expect, tagged with enough of the
// request to find it again in the access log.
func (app *applicationDependencies) logError(r *http.Request, err error) {
	app.logger.Error(err.Error(),
		slog.String("request_method", r.Method),
		slog.String("request_url", r.URL.String()),
		slog.String("request_id", requestID(r)),
	)
}

// errorResponse wraps message in the error envelope and writes it with status.
// If even that fails the client gets a bare 500.
func (app *applicationDependencies) errorResponse(w http.ResponseWriter, r *http.Request, status int, message any) {
	err := app.writeJSON(w, status, envelope{"error": message}, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// serverErrorResponse logs err and answers 500 without leaking its text.
func (app *applicationDependencies) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
}

// notFoundResponse answers requests for paths the router does not know.
func (app *applicationDependencies) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, "the requested resource could not be found")
}

// bookNotFoundResponse answers a lookup, update or delete whose id matched
// no book, using the message for the request's method.
func (app *applicationDependencies) bookNotFoundResponse(w http.ResponseWriter, r *http.Request) {
	message, ok := bookNotFoundMessages[r.Method]
	if !ok {
		message = bookNotFoundMessages[http.MethodGet]
	}
	app.errorResponse(w, r, http.StatusNotFound, message)
}

func (app *applicationDependencies) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := "the " + r.Method + " method is not supported for this resource"
	app.errorResponse(w, r, http.StatusMethodNotAllowed, message)
}

// badRequestResponse reports input that could not be read at all: broken
// JSON, oversize bodies, non-numeric path or query values.
func (app *applicationDependencies) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

// failedValidationResponse reports input that parsed but broke a field rule.
// The body maps each offending field to its message:
//
//	{"error": {"title": "must be at least 3 characters long"}}
func (app *applicationDependencies) failedValidationResponse(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	app.errorResponse(w, r, http.StatusUnprocessableEntity, errors)
}

func (app *applicationDependencies) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Retry-After", "1")
	app.errorResponse(w, r, http.StatusTooManyRequests, "rate limit exceeded")
}

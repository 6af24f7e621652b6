// cmd/api/handlers.go
// This file contains all HTTP request handlers for the books resource.
// Each handler is a method on *applicationDependencies so it has access
// to the logger and the catalog.
package main

import (
	"errors"
	"net/http"

	"github.com/aoideee/bookcatalog/internal/data"
	"github.com/aoideee/bookcatalog/internal/validator"
)

// healthcheckHandler handles GET /healthcheck.
func (app *applicationDependencies) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	payload := envelope{
		"status": "available",
		"system_info": map[string]string{
			"environment": app.config.environment,
			"version":     appVersion,
		},
	}
	err := app.writeJSON(w, http.StatusOK, payload, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// listBooksHandler handles GET /books.
// With no query string it returns every book in catalog order. The optional
// published_date and rating query parameters narrow the result; at most one
// may be given.
func (app *applicationDependencies) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	year, hasYear, err := app.readInt(qs, "published_date")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	rating, hasRating, err := app.readInt(qs, "rating")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(!(hasYear && hasRating), "filter", "use either published_date or rating, not both")
	if hasYear {
		data.ValidatePublishedDate(v, year)
	}
	if hasRating {
		data.ValidateRating(v, rating)
	}
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	var books []*data.Book
	switch {
	case hasYear:
		books = app.models.Books.GetByPublishedDate(year)
	case hasRating:
		books = app.models.Books.GetByRating(rating)
	default:
		books = app.models.Books.GetAll(data.Filters{})
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"books": books}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createBookHandler handles POST /create-book.
// It validates the BookRequest body, appends the book with a freshly
// assigned id, and responds 201 Created with no body.
func (app *applicationDependencies) createBookHandler(w http.ResponseWriter, r *http.Request) {
	var input data.BookRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	data.ValidateBookRequest(v, input)
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	book := input.Book()
	app.models.Books.Insert(book)

	app.logger.Info("book created", "id", book.ID, "request_id", requestID(r))
	w.WriteHeader(http.StatusCreated)
}

// showBookHandler handles GET /book/:book_id.
// Responds 404 if no book with that id exists.
func (app *applicationDependencies) showBookHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := app.bookIDParam(w, r)
	if !ok {
		return
	}

	book, err := app.models.Books.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.bookNotFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"book": book}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// booksByPublishedDateHandler handles GET /books/:published_date.
// It returns every book published in the given year (which must be after
// 2000), possibly none.
func (app *applicationDependencies) booksByPublishedDateHandler(w http.ResponseWriter, r *http.Request) {
	year, err := app.readIntParam(r, "published_date")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	data.ValidatePublishedDate(v, int(year))
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	books := app.models.Books.GetByPublishedDate(int(year))
	err = app.writeJSON(w, http.StatusOK, envelope{"books": books}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// updateBookHandler handles PUT /books/update_book.
// The body is a full BookRequest whose id names the record to replace.
// The stored record is overwritten wholesale and keeps its position.
func (app *applicationDependencies) updateBookHandler(w http.ResponseWriter, r *http.Request) {
	var input data.BookRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	data.ValidateBookUpdate(v, input)
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.Books.Update(input.Book())
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.bookNotFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteBookHandler handles DELETE /books/:book_id.
// Responds 404 if no book with that id exists.
func (app *applicationDependencies) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := app.bookIDParam(w, r)
	if !ok {
		return
	}

	err := app.models.Books.Delete(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.bookNotFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.logger.Info("book deleted", "id", id, "request_id", requestID(r))
	w.WriteHeader(http.StatusNoContent)
}

// bookIDParam reads and validates the :book_id parameter. When it returns
// false the error response has already been written.
func (app *applicationDependencies) bookIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := app.readIntParam(r, "book_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return 0, false
	}

	v := validator.New()
	data.ValidateID(v, id)
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return 0, false
	}
	return id, true
}

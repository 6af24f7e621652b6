// cmd/api/routes.go
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the configured router
// wrapped in the middleware chain.
//
// Middleware chain (outermost → innermost):
//
//	recoverPanic → logRequests → rateLimit → router
//
// Current endpoints:
//
//	GET    /healthcheck               – service status
//	GET    /books                     – list books (?published_date= or ?rating= to filter)
//	POST   /create-book               – create a new book
//	GET    /book/:book_id             – retrieve a single book by id
//	GET    /books/:published_date     – books published in a given year
//	PUT    /books/update_book         – replace an existing book
//	DELETE /books/:book_id            – delete a book by id
func (app *applicationDependencies) routes() http.Handler {
	router := httprouter.New()

	// Override the default httprouter error handlers to return JSON responses.
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/healthcheck", app.healthcheckHandler)

	router.HandlerFunc(http.MethodGet, "/books", app.listBooksHandler)
	router.HandlerFunc(http.MethodPost, "/create-book", app.createBookHandler)
	router.HandlerFunc(http.MethodGet, "/book/:book_id", app.showBookHandler)
	router.HandlerFunc(http.MethodGet, "/books/:published_date", app.booksByPublishedDateHandler)
	router.HandlerFunc(http.MethodPut, "/books/update_book", app.updateBookHandler)
	router.HandlerFunc(http.MethodDelete, "/books/:book_id", app.deleteBookHandler)

	return app.recoverPanic(app.logRequests(app.rateLimit(router)))
}

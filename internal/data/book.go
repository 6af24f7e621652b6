// Package data provides the book records, request payloads and the
// in-memory store backing the catalog.
package data

import "github.com/aoideee/bookcatalog/internal/validator"

// Book represents a single record in the catalog.
type Book struct {
	ID            int64  `json:"id"`             // Unique identifier assigned by the store
	Title         string `json:"title"`          // Title of the book
	Author        string `json:"author"`         // Author's display name
	Description   string `json:"description"`    // Free-form description
	Rating        int    `json:"rating"`         // Reader rating, 1 to 4
	PublishedDate int    `json:"published_date"` // Year the book was published
}

// BookRequest holds the fields a client supplies when creating or replacing a book.
// ID is ignored on create and identifies the target record on update.
type BookRequest struct {
	ID            *int64 `json:"id"`
	Title         string `json:"title"          validate:"min=3"`
	Author        string `json:"author"         validate:"min=1"`
	Description   string `json:"description"    validate:"min=1,max=10000"`
	Rating        int    `json:"rating"         validate:"gt=0,lt=5"`
	PublishedDate int    `json:"published_date" validate:"gt=1995,lt=2020"`
}

// Book maps the request onto a Book. The ID is left for the store to assign
// unless the request carries one.
func (r BookRequest) Book() *Book {
	book := &Book{
		Title:         r.Title,
		Author:        r.Author,
		Description:   r.Description,
		Rating:        r.Rating,
		PublishedDate: r.PublishedDate,
	}
	if r.ID != nil {
		book.ID = *r.ID
	}
	return book
}

// ValidateBookRequest records every field constraint the request violates.
func ValidateBookRequest(v *validator.Validator, r BookRequest) {
	v.Struct(r)
}

// ValidateBookUpdate is ValidateBookRequest plus the requirement that a
// positive target id is present. Create never looks at the id.
func ValidateBookUpdate(v *validator.Validator, r BookRequest) {
	v.Check(r.ID != nil, "id", "must be provided")
	if r.ID != nil {
		v.Check(*r.ID > 0, "id", "must be greater than 0")
	}
	ValidateBookRequest(v, r)
}

// ValidatePublishedDate checks a published-date filter value.
func ValidatePublishedDate(v *validator.Validator, year int) {
	v.Var("published_date", year, "gt=2000")
}

// ValidateRating checks a rating filter value.
func ValidateRating(v *validator.Validator, rating int) {
	v.Var("rating", rating, "gt=0")
}

// ValidateID checks a book id taken from the URL.
func ValidateID(v *validator.Validator, id int64) {
	v.Var("book_id", id, "gt=0")
}

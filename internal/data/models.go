// internal/data/models.go
package data

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/aoideee/bookcatalog/internal/validator"
)

// Models is a top-level container that groups all model types together.
// It is passed around the application via applicationDependencies so every
// handler reaches the catalog through it.
type Models struct {
	Books *BookModel // Holds the ordered book collection
}

// NewModels constructs a Models value whose catalog starts with seed.
// Seed records must satisfy the same rules as client requests and carry
// unique positive ids; otherwise an error describing every violation is returned.
func NewModels(seed []Book) (Models, error) {
	books, err := NewBookModel(seed)
	if err != nil {
		return Models{}, err
	}
	return Models{Books: books}, nil
}

// ErrRecordNotFound is returned when no book matches the requested id.
var ErrRecordNotFound = errors.New("record not found")

// Filters narrows a GetAll call. A zero field means "do not filter on this".
type Filters struct {
	PublishedDate int
	Rating        int
}

func (f Filters) match(b *Book) bool {
	if f.PublishedDate != 0 && b.PublishedDate != f.PublishedDate {
		return false
	}
	if f.Rating != 0 && b.Rating != f.Rating {
		return false
	}
	return true
}

// BookModel is the in-memory catalog: an ordered slice of books plus a
// monotonic id counter, both guarded by mu.
type BookModel struct {
	mu     sync.RWMutex
	books  []*Book
	nextID int64
}

// NewBookModel returns a catalog holding copies of seed in the given order.
func NewBookModel(seed []Book) (*BookModel, error) {
	m := &BookModel{
		books:  make([]*Book, 0, len(seed)),
		nextID: 1,
	}

	seen := make(map[int64]bool, len(seed))
	var problems []string

	for i := range seed {
		b := seed[i]

		v := validator.New()
		ValidateBookRequest(v, BookRequest{
			Title:         b.Title,
			Author:        b.Author,
			Description:   b.Description,
			Rating:        b.Rating,
			PublishedDate: b.PublishedDate,
		})
		v.Check(b.ID > 0, "id", "must be greater than 0")
		v.Check(!seen[b.ID], "id", "must be unique")
		if !v.Valid() {
			problems = append(problems, fmt.Sprintf("seed book %d: %s", i, formatErrors(v.Errors)))
			continue
		}

		seen[b.ID] = true
		m.books = append(m.books, &b)
		if b.ID >= m.nextID {
			m.nextID = b.ID + 1
		}
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid seed data: %s", strings.Join(problems, "; "))
	}
	return m, nil
}

// formatErrors renders a field error map in a stable order.
func formatErrors(errs map[string]string) string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + " " + errs[k]
	}
	return strings.Join(parts, ", ")
}

// Insert assigns the next id to book and appends it to the catalog.
// The assigned id is written back into book.
func (m *BookModel) Insert(book *Book) {
	m.mu.Lock()
	defer m.mu.Unlock()

	book.ID = m.nextID
	m.nextID++

	stored := *book
	m.books = append(m.books, &stored)
}

// Get retrieves a copy of the book with the given id.
// Returns ErrRecordNotFound if no such book exists.
func (m *BookModel) Get(id int64) (*Book, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, ErrRecordNotFound
	}
	book := *m.books[i]
	return &book, nil
}

// GetAll returns copies of every book matching filters, in catalog order.
// The result is never nil, so it encodes as [] when nothing matches.
func (m *BookModel) GetAll(filters Filters) []*Book {
	m.mu.RLock()
	defer m.mu.RUnlock()

	books := []*Book{}
	for _, b := range m.books {
		if filters.match(b) {
			book := *b
			books = append(books, &book)
		}
	}
	return books
}

// GetByPublishedDate returns every book published in year.
func (m *BookModel) GetByPublishedDate(year int) []*Book {
	if year == 0 {
		return []*Book{}
	}
	return m.GetAll(Filters{PublishedDate: year})
}

// GetByRating returns every book with the given rating.
func (m *BookModel) GetByRating(rating int) []*Book {
	if rating == 0 {
		return []*Book{}
	}
	return m.GetAll(Filters{Rating: rating})
}

// Update replaces the stored record whose id equals book.ID, keeping its
// position. Returns ErrRecordNotFound if no such record exists.
func (m *BookModel) Update(book *Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(book.ID)
	if i < 0 {
		return ErrRecordNotFound
	}
	stored := *book
	m.books[i] = &stored
	return nil
}

// Delete removes the book with the given id.
// Returns ErrRecordNotFound if no matching record exists.
func (m *BookModel) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return ErrRecordNotFound
	}
	m.books = append(m.books[:i], m.books[i+1:]...)
	return nil
}

// Count reports how many books the catalog holds.
func (m *BookModel) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.books)
}

// indexOf returns the position of the first book with id, or -1.
// Callers must hold mu.
func (m *BookModel) indexOf(id int64) int {
	for i, b := range m.books {
		if b.ID == id {
			return i
		}
	}
	return -1
}

package data

// SeedBooks returns the fixed set of books every new catalog starts with.
// A fresh slice is returned on each call so callers may mutate it freely.
func SeedBooks() []Book {
	return []Book{
		{ID: 1, Title: "Computer Science Noob", Author: "Prajwal", Description: "Great book", Rating: 4, PublishedDate: 2012},
		{ID: 2, Title: "Social Science Noob", Author: "Prajwal Reddy", Description: "A very Great book", Rating: 3, PublishedDate: 2015},
		{ID: 3, Title: "History Noob", Author: "Alice", Description: "Just a fine book", Rating: 2, PublishedDate: 2012},
		{ID: 4, Title: "Biology Noob", Author: "Bob", Description: "A very very Great book", Rating: 4, PublishedDate: 2008},
		{ID: 5, Title: "Chemistry Noob", Author: "Nathan", Description: "Decent book", Rating: 1, PublishedDate: 1999},
		{ID: 6, Title: "Fifty shades of coding", Author: "Reddy", Description: "A veryyyyyy Great book", Rating: 4, PublishedDate: 2019},
	}
}

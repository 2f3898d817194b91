package catalog

import "time"

// Book is the catalog's central entity. AverageRating is derived by the
// server from the book's reviews; the client treats it as read-only.
type Book struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	ISBN          string  `json:"isbn"`
	Description   string  `json:"description"`
	PublishedDate string  `json:"publishedDate"`
	CategoryID    string  `json:"categoryId"`
	AuthorID      string  `json:"authorId"`
	PublisherID   string  `json:"publisherId"`
	CoverImageURL string  `json:"coverImageUrl"`
	AverageRating float64 `json:"averageRating"`
}

// Category groups books by subject. Reference data: referenced by Book
// via CategoryID and mutated rarely, through the admin surface only.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Author is a book contributor. Reference data, like Category.
type Author struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Biography string `json:"biography"`
}

// Publisher is the imprint a book was released under. Reference data.
type Publisher struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// WishlistEntry records one book's membership in a wishlist.
type WishlistEntry struct {
	BookID  string    `json:"bookId"`
	AddedAt time.Time `json:"addedAt"`
}

// Wishlist is a user-owned set of books. Ownership is implicit in the
// credential the wishlist endpoints were called with; the server only
// returns lists belonging to the authenticated user.
type Wishlist struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Entries []WishlistEntry `json:"books"`
}

// Contains reports whether the wishlist has an entry for the given book.
func (w Wishlist) Contains(bookID string) bool {
	for _, e := range w.Entries {
		if e.BookID == bookID {
			return true
		}
	}
	return false
}

// BookRef is a lightweight book reference carried by events.
type BookRef struct {
	BookID    string `json:"bookId"`
	BookTitle string `json:"bookTitle"`
}

// Event is a catalog happening (signing, reading, release) with an
// optional set of featured books.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	StartTime   time.Time `json:"startDate"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Books       []BookRef `json:"books"`
}

// Review is a single user's rating of one book. Reviewer is a display
// name only; the client does not own user identity.
type Review struct {
	ID       string `json:"id"`
	BookID   string `json:"bookId"`
	Reviewer string `json:"userName"`
	Score    int    `json:"rating"`
	Text     string `json:"comment"`
}

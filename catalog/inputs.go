package catalog

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// MinScore and MaxScore bound the rating scale a review may use.
const (
	MinScore = 1
	MaxScore = 5
)

// Input is implemented by every mutation payload. Sources run Validate
// before a write leaves the client, so obviously malformed payloads never
// reach the network.
type Input interface {
	Validate() error
}

// BookInput is the payload for book create and update calls.
type BookInput struct {
	Title         string `json:"title"`
	ISBN          string `json:"isbn"`
	Description   string `json:"description"`
	PublishedDate string `json:"publishedDate"`
	CategoryID    string `json:"categoryId"`
	AuthorID      string `json:"authorId"`
	PublisherID   string `json:"publisherId"`
	CoverImageURL string `json:"coverImageUrl"`
}

func (i BookInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&i.ISBN, is.ISBN),
		validation.Field(&i.CategoryID, validation.Required),
		validation.Field(&i.AuthorID, validation.Required),
		validation.Field(&i.PublisherID, validation.Required),
		validation.Field(&i.CoverImageURL, is.URL),
	)
}

// CategoryInput is the payload for category create and update calls.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (i CategoryInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 100)),
	)
}

// AuthorInput is the payload for author create and update calls.
type AuthorInput struct {
	Name      string `json:"name"`
	Biography string `json:"biography"`
}

func (i AuthorInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 255)),
	)
}

// PublisherInput is the payload for publisher create and update calls.
type PublisherInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (i PublisherInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 255)),
	)
}

// WishlistInput is the payload for wishlist create and rename calls.
// Entries are managed through the dedicated entry endpoints, not here.
type WishlistInput struct {
	Name string `json:"name"`
}

func (i WishlistInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 100)),
	)
}

// EventInput is the payload for event create and update calls.
type EventInput struct {
	Name        string    `json:"name"`
	StartTime   time.Time `json:"startDate"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
}

func (i EventInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&i.StartTime, validation.Required),
	)
}

// ReviewInput is the payload for submitting a review.
type ReviewInput struct {
	BookID   string `json:"bookId"`
	Reviewer string `json:"userName"`
	Score    int    `json:"rating"`
	Text     string `json:"comment"`
}

func (i ReviewInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.BookID, validation.Required),
		// Required rejects the zero Score; Min/Max alone treat 0 as empty
		// and skip it.
		validation.Field(&i.Score, validation.Required, validation.Min(MinScore), validation.Max(MaxScore)),
		validation.Field(&i.Text, validation.Length(0, 4000)),
	)
}

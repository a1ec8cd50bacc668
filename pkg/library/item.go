package library

import (
	"fmt"
	"strings"
	"time"
)

// Item kinds. The set is closed: constructors exist only for these three, and
// anything else read back from storage fails validation.
const (
	KindBook     = "book"
	KindMagazine = "magazine"
	KindDVD      = "dvd"
)

// kindSpec holds the lending rules that vary by item kind.
type kindSpec struct {
	loanPeriodDays int
	maxRenewals    int
}

// kindSpecs is the dispatch table for kind-specific lending rules.
var kindSpecs = map[string]kindSpec{
	KindBook:     {loanPeriodDays: 21, maxRenewals: 2},
	KindMagazine: {loanPeriodDays: 7, maxRenewals: 2},
	KindDVD:      {loanPeriodDays: 14, maxRenewals: 2},
}

// validRatings is the set of accepted DVD age ratings.
var validRatings = map[string]bool{
	"G": true, "PG": true, "PG-13": true, "R": true, "NC-17": true, "NR": true,
}

// Item is a catalog entry. Kind selects the variant; the variant-specific
// metadata fields are populated only for the matching kind. Available is
// mutated exclusively by the System: it is false iff exactly one open loan
// references the item.
type Item struct {
	ItemID    string    `json:"item_id"`
	Title     string    `json:"title"`
	Kind      string    `json:"kind"`
	Available bool      `json:"available"`
	AddedAt   time.Time `json:"added_at"`

	// Book fields.
	Author string `json:"author,omitempty"`
	ISBN   string `json:"isbn,omitempty"`
	Pages  int    `json:"pages,omitempty"`

	// Magazine fields.
	IssueNumber string `json:"issue_number,omitempty"`
	Publisher   string `json:"publisher,omitempty"`

	// DVD fields.
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	Genre           string `json:"genre,omitempty"`
	Director        string `json:"director,omitempty"`
	Rating          string `json:"rating,omitempty"`
}

// NewBook creates a book catalog entry. The item starts available.
func NewBook(itemID, title, author, isbn string, pages int, now time.Time) (*Item, error) {
	it, err := newItem(itemID, title, KindBook, now)
	if err != nil {
		return nil, err
	}
	if pages < 0 {
		return nil, ErrInvalidPages
	}
	it.Author = strings.TrimSpace(author)
	it.ISBN = strings.TrimSpace(isbn)
	it.Pages = pages
	return it, nil
}

// NewMagazine creates a magazine catalog entry.
func NewMagazine(itemID, title, issueNumber, publisher string, now time.Time) (*Item, error) {
	it, err := newItem(itemID, title, KindMagazine, now)
	if err != nil {
		return nil, err
	}
	it.IssueNumber = strings.TrimSpace(issueNumber)
	it.Publisher = strings.TrimSpace(publisher)
	return it, nil
}

// NewDVD creates a DVD catalog entry. Rating is optional; when set it must be
// one of G, PG, PG-13, R, NC-17, NR.
func NewDVD(itemID, title string, durationMinutes int, genre, director, rating string, now time.Time) (*Item, error) {
	it, err := newItem(itemID, title, KindDVD, now)
	if err != nil {
		return nil, err
	}
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if rating != "" && !validRatings[rating] {
		return nil, ErrInvalidRating
	}
	it.DurationMinutes = durationMinutes
	it.Genre = strings.TrimSpace(genre)
	it.Director = strings.TrimSpace(director)
	it.Rating = rating
	return it, nil
}

func newItem(itemID, title, kind string, now time.Time) (*Item, error) {
	itemID = strings.TrimSpace(itemID)
	title = strings.TrimSpace(title)
	if itemID == "" {
		return nil, ErrInvalidID
	}
	if title == "" {
		return nil, ErrInvalidTitle
	}
	return &Item{
		ItemID:    itemID,
		Title:     title,
		Kind:      kind,
		Available: true,
		AddedAt:   now,
	}, nil
}

// Validate checks that the item is well-formed. Used when hydrating items
// from storage, where no constructor runs.
func (it *Item) Validate() error {
	if strings.TrimSpace(it.ItemID) == "" {
		return ErrInvalidID
	}
	if strings.TrimSpace(it.Title) == "" {
		return ErrInvalidTitle
	}
	if _, ok := kindSpecs[it.Kind]; !ok {
		return ErrInvalidKind
	}
	return nil
}

// LoanPeriodDays returns the standard loan period for the item's kind:
// 21 days for books, 7 for magazines, 14 for DVDs.
func (it *Item) LoanPeriodDays() int {
	return kindSpecs[it.Kind].loanPeriodDays
}

// MaxRenewals returns how many times a loan of this item may be renewed.
func (it *Item) MaxRenewals() int {
	return kindSpecs[it.Kind].maxRenewals
}

// Describe returns a one-line human-readable summary of the item, including
// kind-specific metadata and availability.
func (it *Item) Describe() string {
	status := "Available"
	if !it.Available {
		status = "Checked out"
	}
	switch it.Kind {
	case KindBook:
		return fmt.Sprintf("Book: %q by %s (ISBN: %s) - %s", it.Title, it.Author, it.ISBN, status)
	case KindMagazine:
		return fmt.Sprintf("Magazine: %q Issue %s by %s - %s", it.Title, it.IssueNumber, it.Publisher, status)
	case KindDVD:
		director := ""
		if it.Director != "" {
			director = " directed by " + it.Director
		}
		return fmt.Sprintf("DVD: %q%s (%s, %s) - %s", it.Title, director, it.FormattedDuration(), it.Genre, status)
	default:
		return fmt.Sprintf("%s: %q - %s", it.Kind, it.Title, status)
	}
}

// FormattedDuration renders a DVD's runtime as "Xh Ym", or "Ym" under an hour.
func (it *Item) FormattedDuration() string {
	hours := it.DurationMinutes / 60
	minutes := it.DurationMinutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// ItemKinds lists all recognized item kinds for enumeration.
var ItemKinds = []string{KindBook, KindMagazine, KindDVD}

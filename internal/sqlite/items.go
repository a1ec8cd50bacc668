package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/carrelworks/circ/pkg/library"
)

const itemColumns = `item_id, title, kind, available, added_at, author, isbn,
    pages, issue_number, publisher, duration_minutes, genre, director, rating`

// LoadItems returns every catalog row, ordered by identifier.
func (s *Store) LoadItems() ([]*library.Item, error) {
	rows, err := s.db.Query("SELECT " + itemColumns + " FROM items ORDER BY item_id")
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	var items []*library.Item
	for rows.Next() {
		it, err := hydrateItem(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

// SaveItem inserts the item or replaces the existing row with the same ID.
func (s *Store) SaveItem(it *library.Item) error {
	available := 0
	if it.Available {
		available = 1
	}

	_, err := s.db.Exec(`INSERT INTO items (`+itemColumns+`)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    ON CONFLICT(item_id) DO UPDATE SET
        title = excluded.title,
        kind = excluded.kind,
        available = excluded.available,
        added_at = excluded.added_at,
        author = excluded.author,
        isbn = excluded.isbn,
        pages = excluded.pages,
        issue_number = excluded.issue_number,
        publisher = excluded.publisher,
        duration_minutes = excluded.duration_minutes,
        genre = excluded.genre,
        director = excluded.director,
        rating = excluded.rating`,
		it.ItemID, it.Title, it.Kind, available, formatTime(it.AddedAt),
		nullString(it.Author), nullString(it.ISBN), nullInt(it.Pages),
		nullString(it.IssueNumber), nullString(it.Publisher),
		nullInt(it.DurationMinutes), nullString(it.Genre),
		nullString(it.Director), nullString(it.Rating),
	)
	if err != nil {
		return fmt.Errorf("saving item %s: %w", it.ItemID, err)
	}
	return nil
}

// DeleteItem removes the catalog row. Returns library.ErrNotFound when no
// row matches.
func (s *Store) DeleteItem(id string) error {
	res, err := s.db.Exec("DELETE FROM items WHERE item_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting item %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting item %s: %w", id, err)
	}
	if n == 0 {
		return library.ErrNotFound
	}
	return nil
}

// nullInt renders an optional integer column. Zero stores as NULL; none of
// the variant integer fields treat zero as meaningful.
func nullInt(n int) sql.NullInt64 {
	if n == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(n), Valid: true}
}

// hydrateItem converts the current row of an items query into a *library.Item.
func hydrateItem(rows *sql.Rows) (*library.Item, error) {
	var it library.Item
	var addedAt string
	var available int
	var author, isbn, issueNumber, publisher, genre, director, rating sql.NullString
	var pages, durationMinutes sql.NullInt64

	if err := rows.Scan(
		&it.ItemID, &it.Title, &it.Kind, &available, &addedAt, &author, &isbn,
		&pages, &issueNumber, &publisher, &durationMinutes, &genre, &director,
		&rating,
	); err != nil {
		return nil, err
	}

	var err error
	it.AddedAt, err = parseTime(addedAt)
	if err != nil {
		return nil, fmt.Errorf("added_at: %w", err)
	}
	it.Available = available != 0
	it.Author = author.String
	it.ISBN = isbn.String
	it.Pages = int(pages.Int64)
	it.IssueNumber = issueNumber.String
	it.Publisher = publisher.String
	it.DurationMinutes = int(durationMinutes.Int64)
	it.Genre = genre.String
	it.Director = director.String
	it.Rating = rating.String
	return &it, nil
}

package store

import sq "github.com/Masterminds/squirrel"

// builder is the shared squirrel statement builder. SQLite uses ? placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var bookColumns = []string{
	"id",
	"name",
	"description",
	"image_uri",
	"created_at",
	"remote_id",
	"last_synced_at",
	"is_dirty",
}

var formulaColumns = []string{
	"id",
	"book_id",
	"name",
	"formula_text",
	"description",
	"image_uri",
	"created_at",
	"remote_id",
	"last_synced_at",
	"is_dirty",
}

func selectBooks() sq.SelectBuilder {
	return builder.Select(bookColumns...).
		From("books").
		OrderBy("created_at DESC")
}

func selectFormulas() sq.SelectBuilder {
	return builder.Select(formulaColumns...).
		From("formulas").
		OrderBy("created_at DESC")
}

// dirtyPredicate matches upload candidates: locally edited rows and rows that
// have never been uploaded.
var dirtyPredicate = sq.Or{
	sq.Eq{"is_dirty": true},
	sq.Eq{"remote_id": ""},
}

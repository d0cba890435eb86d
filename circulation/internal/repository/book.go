package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

var bookColumns = []string{
	"id", "title", "isbn", "author_id", "category_id", "publisher_id", "quantity", "available", "is_active",
}

func (r *repository) GetBook(ctx context.Context, id string) (model.Book, error) {
	q := qb.Select(bookColumns...).From(booksTableName).Where(sq.Eq{"id": id})
	return getOne[model.Book](ctx, r, q, errs.EntityBook)
}

func (r *repository) GetBookForUpdate(ctx context.Context, id string) (model.Book, error) {
	q := qb.Select(bookColumns...).From(booksTableName).Where(sq.Eq{"id": id}).Suffix("FOR UPDATE")
	return getOne[model.Book](ctx, r, q, errs.EntityBook)
}

// TakeCopy decrements available only while a copy is left.
func (r *repository) TakeCopy(ctx context.Context, bookID string) error {
	const q = `
update books
    set available = available - 1
where id = $1 and available >= 1`
	tag, err := r.exec(ctx, q, bookID)
	if err != nil {
		return errors.Wrap(err, "TakeCopy")
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrBookUnavailable
	}
	return nil
}

// ReturnCopy puts a copy back, capped at quantity. It reports false when the book no longer exists.
func (r *repository) ReturnCopy(ctx context.Context, bookID string) (bool, error) {
	const q = `
update books
    set available = least(available + 1, quantity)
where id = $1`
	tag, err := r.exec(ctx, q, bookID)
	if err != nil {
		return false, errors.Wrap(err, "ReturnCopy")
	}
	return tag.RowsAffected() > 0, nil
}

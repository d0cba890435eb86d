package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

var memberColumns = []string{
	"id", "user_id", "member_code", "membership_type", "max_books_allowed",
	"current_books_issued", "total_fines_pending", "is_blocked",
}

func (r *repository) GetMember(ctx context.Context, id string) (model.Member, error) {
	q := qb.Select(memberColumns...).From(membersTableName).Where(sq.Eq{"id": id})
	return getOne[model.Member](ctx, r, q, errs.EntityMember)
}

func (r *repository) GetMemberForUpdate(ctx context.Context, id string) (model.Member, error) {
	q := qb.Select(memberColumns...).From(membersTableName).Where(sq.Eq{"id": id}).Suffix("FOR UPDATE")
	return getOne[model.Member](ctx, r, q, errs.EntityMember)
}

func (r *repository) GetMemberByUserID(ctx context.Context, userID string) (model.Member, error) {
	q := qb.Select(memberColumns...).From(membersTableName).Where(sq.Eq{"user_id": userID})
	return getOne[model.Member](ctx, r, q, errs.EntityMember)
}

// AddLoan increments the issued count unless the member is blocked or at the limit.
func (r *repository) AddLoan(ctx context.Context, memberID string) error {
	const q = `
update members
    set current_books_issued = current_books_issued + 1
where id = $1 and not is_blocked and current_books_issued < max_books_allowed`
	tag, err := r.exec(ctx, q, memberID)
	if err != nil {
		return errors.Wrap(err, "AddLoan")
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrLoanLimitExceeded
	}
	return nil
}

func (r *repository) RemoveLoan(ctx context.Context, memberID string) error {
	const q = `
update members
    set current_books_issued = greatest(current_books_issued - 1, 0)
where id = $1`
	_, err := r.exec(ctx, q, memberID)
	return errors.Wrap(err, "RemoveLoan")
}

func (r *repository) SaveMemberFines(ctx context.Context, memberID string, pending decimal.Decimal, blocked bool) error {
	const q = `
update members
    set total_fines_pending = $2, is_blocked = $3
where id = $1`
	tag, err := r.exec(ctx, q, memberID, pending, blocked)
	if err != nil {
		return errors.Wrap(err, "SaveMemberFines")
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound(errs.EntityMember)
	}
	return nil
}

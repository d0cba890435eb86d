package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

var requestColumns = []string{
	"id", "member_id", "book_id", "request_date", "status", "processed_by", "processed_date", "remarks", "priority",
}

func (r *repository) HasPendingRequest(ctx context.Context, memberID, bookID string) (bool, error) {
	const q = `
select exists(
    select 1 from book_requests
    where member_id = $1 and book_id = $2 and status = 'pending'
)`
	var exists bool
	if err := r.queryRow(ctx, q, memberID, bookID).Scan(&exists); err != nil {
		return false, errors.Wrap(err, "HasPendingRequest")
	}
	return exists, nil
}

// CreateRequest relies on the partial unique index to reject a second pending request.
func (r *repository) CreateRequest(ctx context.Context, req model.BookRequest) error {
	query, args, err := qb.Insert(requestsTableName).
		Columns("id", "member_id", "book_id", "request_date", "status", "priority").
		Values(req.ID, req.MemberID, req.BookID, req.RequestDate, req.Status, req.Priority).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "build query")
	}
	if _, err := r.exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return errs.ErrDuplicatePending
		}
		return errors.Wrap(err, "CreateRequest")
	}
	return nil
}

func (r *repository) GetRequestForUpdate(ctx context.Context, id string) (model.BookRequest, error) {
	q := qb.Select(requestColumns...).From(requestsTableName).Where(sq.Eq{"id": id}).Suffix("FOR UPDATE")
	return getOne[model.BookRequest](ctx, r, q, errs.EntityRequest)
}

func (r *repository) SaveRequest(ctx context.Context, req model.BookRequest) error {
	query, args, err := qb.Update(requestsTableName).
		SetMap(map[string]any{
			"status":         req.Status,
			"processed_by":   req.ProcessedBy,
			"processed_date": req.ProcessedDate,
			"remarks":        req.Remarks,
		}).
		Where(sq.Eq{"id": req.ID}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "build query")
	}
	tag, err := r.exec(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "SaveRequest")
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound(errs.EntityRequest)
	}
	return nil
}

func (r *repository) ListRequests(ctx context.Context, filter model.RequestFilter) (model.ListRequests, error) {
	where := sq.And{}
	if filter.Status != "" {
		where = append(where, sq.Eq{"status": filter.Status})
	}
	if filter.MemberID != "" {
		where = append(where, sq.Eq{"member_id": filter.MemberID})
	}

	q := qb.Select(requestColumns...).From(requestsTableName).Where(where).
		OrderBy("priority desc", "request_date")
	count := qb.Select("count(*)").From(requestsTableName).Where(where)

	items, total, err := list[model.BookRequest](ctx, r, q, count, filter.Page, filter.Size)
	if err != nil {
		return model.ListRequests{}, err
	}
	return model.ListRequests{
		Paging: model.Paging{Page: filter.Page, PageSize: filter.Size, TotalElements: total},
		Items:  items,
	}, nil
}

package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

var fineColumns = []string{
	"id", "issue_id", "member_id", "fine_amount", "fine_reason", "days_overdue", "fine_rate_per_day",
	"status", "paid_amount", "paid_date", "collected_by", "waived_by", "waive_reason", "created_at",
}

func (r *repository) CreateFine(ctx context.Context, fine model.Fine) error {
	query, args, err := qb.Insert(finesTableName).
		Columns("id", "issue_id", "member_id", "fine_amount", "fine_reason", "days_overdue",
			"fine_rate_per_day", "status", "paid_amount", "created_at").
		Values(fine.ID, fine.IssueID, fine.MemberID, fine.FineAmount, fine.FineReason, fine.DaysOverdue,
			fine.FineRatePerDay, fine.Status, fine.PaidAmount, fine.CreatedAt).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "build query")
	}
	if _, err := r.exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return errs.InvalidState("issue already has a fine")
		}
		return errors.Wrap(err, "CreateFine")
	}
	return nil
}

func (r *repository) GetFineForUpdate(ctx context.Context, id string) (model.Fine, error) {
	q := qb.Select(fineColumns...).From(finesTableName).Where(sq.Eq{"id": id}).Suffix("FOR UPDATE")
	return getOne[model.Fine](ctx, r, q, errs.EntityFine)
}

func (r *repository) SaveFine(ctx context.Context, fine model.Fine) error {
	query, args, err := qb.Update(finesTableName).
		SetMap(map[string]any{
			"status":       fine.Status,
			"paid_amount":  fine.PaidAmount,
			"paid_date":    fine.PaidDate,
			"collected_by": fine.CollectedBy,
			"waived_by":    fine.WaivedBy,
			"waive_reason": fine.WaiveReason,
		}).
		Where(sq.Eq{"id": fine.ID}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "build query")
	}
	tag, err := r.exec(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "SaveFine")
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound(errs.EntityFine)
	}
	return nil
}

func (r *repository) ListFines(ctx context.Context, filter model.FineFilter) (model.ListFines, error) {
	where := sq.And{}
	if filter.Status != "" {
		where = append(where, sq.Eq{"status": filter.Status})
	}
	if filter.MemberID != "" {
		where = append(where, sq.Eq{"member_id": filter.MemberID})
	}

	q := qb.Select(fineColumns...).From(finesTableName).Where(where).OrderBy("created_at desc")
	count := qb.Select("count(*)").From(finesTableName).Where(where)

	items, total, err := list[model.Fine](ctx, r, q, count, filter.Page, filter.Size)
	if err != nil {
		return model.ListFines{}, err
	}
	return model.ListFines{
		Paging: model.Paging{Page: filter.Page, PageSize: filter.Size, TotalElements: total},
		Items:  items,
	}, nil
}

package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

var issueColumns = []string{
	"id", "member_id", "book_id", "issued_by", "issue_date", "due_date",
	"return_date", "returned_to", "status", "fine_id",
}

func (r *repository) CreateIssue(ctx context.Context, issue model.Issue) error {
	query, args, err := qb.Insert(issuesTableName).
		Columns("id", "member_id", "book_id", "issued_by", "issue_date", "due_date", "status").
		Values(issue.ID, issue.MemberID, issue.BookID, issue.IssuedBy, issue.IssueDate, issue.DueDate, issue.Status).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "build query")
	}
	if _, err := r.exec(ctx, query, args...); err != nil {
		return errors.Wrap(err, "CreateIssue")
	}
	return nil
}

func (r *repository) GetIssueForUpdate(ctx context.Context, id string) (model.Issue, error) {
	q := qb.Select(issueColumns...).From(issuesTableName).Where(sq.Eq{"id": id}).Suffix("FOR UPDATE")
	return getOne[model.Issue](ctx, r, q, errs.EntityIssue)
}

func (r *repository) SaveIssue(ctx context.Context, issue model.Issue) error {
	query, args, err := qb.Update(issuesTableName).
		SetMap(map[string]any{
			"return_date": issue.ReturnDate,
			"returned_to": issue.ReturnedTo,
			"status":      issue.Status,
			"fine_id":     issue.FineID,
		}).
		Where(sq.Eq{"id": issue.ID}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "build query")
	}
	tag, err := r.exec(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "SaveIssue")
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound(errs.EntityIssue)
	}
	return nil
}

// MarkOverdue moves every issued loan past its due date to overdue.
func (r *repository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	const q = `
update issues
    set status = 'overdue'
where status = 'issued' and due_date < $1`
	tag, err := r.exec(ctx, q, now)
	if err != nil {
		return 0, errors.Wrap(err, "MarkOverdue")
	}
	return tag.RowsAffected(), nil
}

func (r *repository) ListIssues(ctx context.Context, filter model.IssueFilter) (model.ListIssues, error) {
	where := sq.And{}
	if filter.Status != "" {
		where = append(where, sq.Eq{"status": filter.Status})
	}
	if filter.MemberID != "" {
		where = append(where, sq.Eq{"member_id": filter.MemberID})
	}
	if filter.Active {
		where = append(where, sq.Eq{"status": []model.IssueStatus{model.IssueStatusIssued, model.IssueStatusOverdue}})
	}
	if filter.Overdue {
		where = append(where,
			sq.Eq{"status": []model.IssueStatus{model.IssueStatusIssued, model.IssueStatusOverdue}},
			sq.Lt{"due_date": filter.Now})
	}

	q := qb.Select(issueColumns...).From(issuesTableName).Where(where).OrderBy("issue_date desc")
	count := qb.Select("count(*)").From(issuesTableName).Where(where)

	items, total, err := list[model.Issue](ctx, r, q, count, filter.Page, filter.Size)
	if err != nil {
		return model.ListIssues{}, err
	}
	return model.ListIssues{
		Paging: model.Paging{
			Page:          filter.Page,
			PageSize:      filter.Size,
			TotalElements: total,
		},
		Items: items,
	}, nil
}

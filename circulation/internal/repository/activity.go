package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

func (r *repository) CreateActivity(ctx context.Context, a model.Activity) error {
	const q = `
insert into activity_logs (id, user_id, action, entity_type, entity_id, details, ip_address, user_agent, timestamp)
values (@id, @user_id, @action, @entity_type, @entity_id, @details, @ip_address, @user_agent, @timestamp)
on conflict (id) do nothing`
	details := a.Details
	if details == nil {
		details = map[string]any{}
	}
	args := pgx.NamedArgs{
		"id":          a.ID,
		"user_id":     a.UserID,
		"action":      a.Action,
		"entity_type": a.EntityType,
		"entity_id":   a.EntityID,
		"details":     details,
		"ip_address":  a.IPAddress,
		"user_agent":  a.UserAgent,
		"timestamp":   a.Timestamp,
	}
	_, err := r.exec(ctx, q, args)
	return errors.Wrap(err, "CreateActivity")
}

func (r *repository) ListActivity(ctx context.Context, filter model.ActivityFilter) (model.ListActivity, error) {
	where := sq.Eq{}
	if filter.UserID != "" {
		where["user_id"] = filter.UserID
	}
	if filter.Action != "" {
		where["action"] = filter.Action
	}
	if filter.EntityType != "" {
		where["entity_type"] = filter.EntityType
	}

	q := qb.Select("id", "user_id", "action", "entity_type", "entity_id", "details", "ip_address", "user_agent", "timestamp").
		From(activityTableName).
		Where(where).
		OrderBy("timestamp desc")
	count := qb.Select("count(*)").From(activityTableName).Where(where)

	items, total, err := list[model.Activity](ctx, r, q, count, filter.Page, filter.Size)
	if err != nil {
		return model.ListActivity{}, err
	}
	return model.ListActivity{
		Paging: model.Paging{Page: filter.Page, PageSize: filter.Size, TotalElements: total},
		Items:  items,
	}, nil
}

package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

func (r *repository) ListSettings(ctx context.Context) ([]model.Setting, error) {
	query, args, err := qb.Select("setting_key", "setting_value", "data_type", "description").
		From(settingsTableName).
		OrderBy("setting_key").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build query")
	}
	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "ListSettings")
	}
	settings, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Setting])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return settings, nil
}

package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

type Repository interface {
	// WithTx runs fn in one transaction; nested calls join the outer one.
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error

	GetMember(ctx context.Context, id string) (model.Member, error)
	GetMemberForUpdate(ctx context.Context, id string) (model.Member, error)
	GetMemberByUserID(ctx context.Context, userID string) (model.Member, error)
	AddLoan(ctx context.Context, memberID string) error
	RemoveLoan(ctx context.Context, memberID string) error
	SaveMemberFines(ctx context.Context, memberID string, pending decimal.Decimal, blocked bool) error

	GetBook(ctx context.Context, id string) (model.Book, error)
	GetBookForUpdate(ctx context.Context, id string) (model.Book, error)
	TakeCopy(ctx context.Context, bookID string) error
	ReturnCopy(ctx context.Context, bookID string) (bool, error)

	CreateIssue(ctx context.Context, issue model.Issue) error
	GetIssueForUpdate(ctx context.Context, id string) (model.Issue, error)
	SaveIssue(ctx context.Context, issue model.Issue) error
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
	ListIssues(ctx context.Context, filter model.IssueFilter) (model.ListIssues, error)

	CreateFine(ctx context.Context, fine model.Fine) error
	GetFineForUpdate(ctx context.Context, id string) (model.Fine, error)
	SaveFine(ctx context.Context, fine model.Fine) error
	ListFines(ctx context.Context, filter model.FineFilter) (model.ListFines, error)

	HasPendingRequest(ctx context.Context, memberID, bookID string) (bool, error)
	CreateRequest(ctx context.Context, req model.BookRequest) error
	GetRequestForUpdate(ctx context.Context, id string) (model.BookRequest, error)
	SaveRequest(ctx context.Context, req model.BookRequest) error
	ListRequests(ctx context.Context, filter model.RequestFilter) (model.ListRequests, error)

	ListSettings(ctx context.Context) ([]model.Setting, error)

	CreateActivity(ctx context.Context, a model.Activity) error
	ListActivity(ctx context.Context, filter model.ActivityFilter) (model.ListActivity, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) *repository {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}
}

const (
	booksTableName    = `books`
	membersTableName  = `members`
	issuesTableName   = `issues`
	finesTableName    = `fines`
	requestsTableName = `book_requests`
	settingsTableName = `system_settings`
	activityTableName = `activity_logs`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type txKey struct{}

func (r *repository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.log.Warn("rollback", zap.Error(rbErr))
		}
		return err
	}
	return errors.Wrap(tx.Commit(ctx), "commit tx")
}

func txFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey{}).(pgx.Tx)
	return tx
}

func (r *repository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.db.Exec(ctx, sql, args...)
}

func (r *repository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.db.Query(ctx, sql, args...)
}

func (r *repository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.db.QueryRow(ctx, sql, args...)
}

// getOne runs q and maps the single row into T. Missing rows and malformed ids are NotFound(entity).
func getOne[T any](ctx context.Context, r *repository, q sq.SelectBuilder, entity string) (T, error) {
	var zero T
	query, args, err := q.Limit(1).ToSql()
	if err != nil {
		return zero, errors.Wrap(err, "build query")
	}
	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return zero, r.classify(err, entity, query)
	}
	v, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return zero, r.classify(err, entity, query)
	}
	return v, nil
}

// list runs q with paging applied and counts the full result set with count.
func list[T any](ctx context.Context, r *repository, q, count sq.SelectBuilder, page, size int) ([]T, int, error) {
	if page > 0 && size > 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, 0, errors.Wrap(err, "build query")
	}
	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, 0, r.classify(err, "", query)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, 0, errors.Wrap(err, "pgx.CollectRows")
	}

	countQuery, countArgs, err := count.ToSql()
	if err != nil {
		return nil, 0, errors.Wrap(err, "build count query")
	}
	var total int
	if err := r.queryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, r.classify(err, "", countQuery)
	}
	return items, total, nil
}

func (r *repository) classify(err error, entity, query string) error {
	if errors.Is(err, pgx.ErrNoRows) && entity != "" {
		return errs.NotFound(entity)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.InvalidTextRepresentation && entity != "" {
		return errs.NotFound(entity)
	}
	r.log.Error("query", zap.String("q", query), zap.Error(err))
	return errors.Wrap(err, "query")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

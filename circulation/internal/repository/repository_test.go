package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/testutil"
)

func TestRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	repo := NewRepository(pool, zap.NewNop())
	ctx := context.Background()

	t.Run("TakeCopy stops at zero", func(t *testing.T) {
		testutil.TruncateAll(t, pool)
		book := testutil.InsertBook(t, pool, 1, 1)

		require.NoError(t, repo.TakeCopy(ctx, book.ID))
		require.ErrorIs(t, repo.TakeCopy(ctx, book.ID), errs.ErrBookUnavailable)

		ok, err := repo.ReturnCopy(ctx, book.ID)
		require.NoError(t, err)
		require.True(t, ok)
		ok, err = repo.ReturnCopy(ctx, book.ID)
		require.NoError(t, err)
		require.True(t, ok)

		got, err := repo.GetBookForUpdate(ctx, book.ID)
		require.NoError(t, err)
		require.Equal(t, 1, got.Available)

		ok, err = repo.ReturnCopy(ctx, uuid.NewString())
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("AddLoan respects limit and block", func(t *testing.T) {
		testutil.TruncateAll(t, pool)
		m := testutil.InsertMember(t, pool, model.Member{MaxBooksAllowed: 1})

		require.NoError(t, repo.AddLoan(ctx, m.ID))
		require.ErrorIs(t, repo.AddLoan(ctx, m.ID), errs.ErrLoanLimitExceeded)

		require.NoError(t, repo.RemoveLoan(ctx, m.ID))
		require.NoError(t, repo.RemoveLoan(ctx, m.ID))
		got, err := repo.GetMember(ctx, m.ID)
		require.NoError(t, err)
		require.Equal(t, 0, got.CurrentBooksIssued)

		require.NoError(t, repo.SaveMemberFines(ctx, m.ID, decimal.NewFromInt(510), true))
		require.ErrorIs(t, repo.AddLoan(ctx, m.ID), errs.ErrLoanLimitExceeded)
		got, err = repo.GetMemberByUserID(ctx, m.UserID)
		require.NoError(t, err)
		require.True(t, got.IsBlocked)
		require.True(t, decimal.NewFromInt(510).Equal(got.TotalFinesPending))
	})

	t.Run("missing and malformed ids are not found", func(t *testing.T) {
		testutil.TruncateAll(t, pool)
		_, err := repo.GetMember(ctx, uuid.NewString())
		require.ErrorIs(t, err, errs.ErrNotFound)

		err = repo.WithTx(ctx, func(ctx context.Context) error {
			_, err := repo.GetIssueForUpdate(ctx, "not-a-uuid")
			return err
		})
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("issue and fine lifecycle", func(t *testing.T) {
		testutil.TruncateAll(t, pool)
		m := testutil.InsertMember(t, pool, model.Member{MaxBooksAllowed: 3})
		book := testutil.InsertBook(t, pool, 2, 2)
		now := time.Now().UTC().Truncate(time.Second)

		issue := model.Issue{
			ID:        uuid.NewString(),
			MemberID:  m.ID,
			BookID:    book.ID,
			IssuedBy:  "librarian-1",
			IssueDate: now.Add(-20 * 24 * time.Hour),
			DueDate:   now.Add(-6 * 24 * time.Hour),
			Status:    model.IssueStatusIssued,
		}
		require.NoError(t, repo.CreateIssue(ctx, issue))

		n, err := repo.MarkOverdue(ctx, now)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		overdue, err := repo.ListIssues(ctx, model.IssueFilter{Overdue: true, MemberID: m.ID, Now: now})
		require.NoError(t, err)
		require.Len(t, overdue.Items, 1)
		require.Equal(t, issue.ID, overdue.Items[0].ID)

		fine := model.Fine{
			ID:             uuid.NewString(),
			IssueID:        issue.ID,
			MemberID:       m.ID,
			FineAmount:     decimal.NewFromInt(30),
			FineReason:     model.FineReasonOverdue,
			DaysOverdue:    6,
			FineRatePerDay: decimal.NewFromInt(5),
			Status:         model.FineStatusPending,
			PaidAmount:     decimal.Zero,
			CreatedAt:      now,
		}
		err = repo.WithTx(ctx, func(ctx context.Context) error {
			got, err := repo.GetIssueForUpdate(ctx, issue.ID)
			require.NoError(t, err)
			require.Equal(t, model.IssueStatusOverdue, got.Status)

			if err := repo.CreateFine(ctx, fine); err != nil {
				return err
			}
			got.Status = model.IssueStatusReturned
			got.ReturnDate = &now
			got.FineID = &fine.ID
			return repo.SaveIssue(ctx, got)
		})
		require.NoError(t, err)

		dup := fine
		dup.ID = uuid.NewString()
		require.ErrorIs(t, repo.CreateFine(ctx, dup), errs.ErrInvalidState)

		fines, err := repo.ListFines(ctx, model.FineFilter{MemberID: m.ID, Status: model.FineStatusPending})
		require.NoError(t, err)
		require.Equal(t, 1, fines.TotalElements)
		require.True(t, decimal.NewFromInt(30).Equal(fines.Items[0].FineAmount))

		issues, err := repo.ListIssues(ctx, model.IssueFilter{MemberID: m.ID, Active: true})
		require.NoError(t, err)
		require.Empty(t, issues.Items)
	})

	t.Run("one pending request per member and book", func(t *testing.T) {
		testutil.TruncateAll(t, pool)
		m := testutil.InsertMember(t, pool, model.Member{MaxBooksAllowed: 3})
		book := testutil.InsertBook(t, pool, 1, 0)

		req := model.BookRequest{
			ID:          uuid.NewString(),
			MemberID:    m.ID,
			BookID:      book.ID,
			RequestDate: time.Now().UTC(),
			Status:      model.RequestStatusPending,
		}
		require.NoError(t, repo.CreateRequest(ctx, req))

		pending, err := repo.HasPendingRequest(ctx, m.ID, book.ID)
		require.NoError(t, err)
		require.True(t, pending)

		second := req
		second.ID = uuid.NewString()
		require.ErrorIs(t, repo.CreateRequest(ctx, second), errs.ErrDuplicatePending)

		req.Status = model.RequestStatusCancelled
		require.NoError(t, repo.SaveRequest(ctx, req))
		require.NoError(t, repo.CreateRequest(ctx, second))

		list, err := repo.ListRequests(ctx, model.RequestFilter{MemberID: m.ID})
		require.NoError(t, err)
		require.Equal(t, 2, list.TotalElements)
	})

	t.Run("settings and activity", func(t *testing.T) {
		testutil.TruncateAll(t, pool)
		settings, err := repo.ListSettings(ctx)
		require.NoError(t, err)
		p, err := model.DefaultPolicy().WithSettings(settings)
		require.NoError(t, err)
		require.Equal(t, 14, p.LoanDays)

		require.NoError(t, repo.CreateActivity(ctx, model.Activity{
			ID:         uuid.NewString(),
			UserID:     "admin-1",
			Action:     "fine.waive",
			EntityType: "fine",
			EntityID:   uuid.NewString(),
			Details:    map[string]any{"reason": "Administrative Waiver"},
			Timestamp:  time.Now().UTC(),
		}))
		logs, err := repo.ListActivity(ctx, model.ActivityFilter{Action: "fine.waive"})
		require.NoError(t, err)
		require.Len(t, logs.Items, 1)
		require.Equal(t, "Administrative Waiver", logs.Items[0].Details["reason"])
	})
}

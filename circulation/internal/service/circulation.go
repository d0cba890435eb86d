package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/auth"
)

// IssueBook lends a copy of a book to a member. Preconditions are checked in order:
// member exists, member not blocked, under the loan limit, book exists, a copy is available.
func (s *Service) IssueBook(ctx context.Context, actor auth.Principal, req model.IssueBookRequest) (model.Issue, error) {
	if err := requirePermission(actor, auth.IssueCreate); err != nil {
		return model.Issue{}, err
	}
	if err := checkID(req.MemberID, errs.EntityMember); err != nil {
		return model.Issue{}, err
	}

	policy := s.Policy()
	var issue model.Issue
	err := s.repo.WithTx(ctx, func(ctx context.Context) error {
		member, err := s.repo.GetMemberForUpdate(ctx, req.MemberID)
		if err != nil {
			return err
		}
		if member.IsBlocked {
			return errs.ErrMemberBlocked
		}
		if member.CurrentBooksIssued >= member.MaxBooksAllowed {
			return errs.ErrLoanLimitExceeded
		}

		if err := checkID(req.BookID, errs.EntityBook); err != nil {
			return err
		}
		book, err := s.repo.GetBookForUpdate(ctx, req.BookID)
		if err != nil {
			return err
		}
		if book.Available < 1 {
			return errs.ErrBookUnavailable
		}

		now := s.clock.Now()
		issue = model.Issue{
			ID:        newID(),
			MemberID:  member.ID,
			BookID:    book.ID,
			IssuedBy:  actor.UserID,
			IssueDate: now,
			DueDate:   policy.DueDate(now),
			Status:    model.IssueStatusIssued,
		}
		if err := s.repo.CreateIssue(ctx, issue); err != nil {
			return err
		}
		if err := s.repo.TakeCopy(ctx, book.ID); err != nil {
			return err
		}
		return s.repo.AddLoan(ctx, member.ID)
	})
	if err != nil {
		return model.Issue{}, errors.Wrap(err, "IssueBook")
	}

	s.record(ctx, actor, "issue.create", errs.EntityIssue, issue.ID, map[string]any{
		"member_id": issue.MemberID,
		"book_id":   issue.BookID,
		"due_date":  issue.DueDate,
	})
	return issue, nil
}

// ReturnBook closes a loan. A late return creates a pending fine, adds it to the member's
// balance and blocks the member once the balance exceeds the threshold.
func (s *Service) ReturnBook(ctx context.Context, actor auth.Principal, issueID string) (model.Issue, error) {
	if err := requirePermission(actor, auth.IssueReturn); err != nil {
		return model.Issue{}, err
	}
	if err := checkID(issueID, errs.EntityIssue); err != nil {
		return model.Issue{}, err
	}

	policy := s.Policy()
	var issue model.Issue
	err := s.repo.WithTx(ctx, func(ctx context.Context) error {
		var err error
		issue, err = s.repo.GetIssueForUpdate(ctx, issueID)
		if err != nil {
			return err
		}
		if !issue.Status.CanTransitionTo(model.IssueStatusReturned) {
			return errs.ErrAlreadyReturned
		}

		now := s.clock.Now()
		issue.ReturnDate = &now
		issue.ReturnedTo = &actor.UserID
		issue.Status = model.IssueStatusReturned

		if days := model.DaysOverdue(issue.DueDate, now); days > 0 {
			fine := model.Fine{
				ID:             newID(),
				IssueID:        issue.ID,
				MemberID:       issue.MemberID,
				FineAmount:     policy.FineFor(days),
				FineReason:     model.FineReasonOverdue,
				DaysOverdue:    days,
				FineRatePerDay: policy.FineRatePerDay,
				Status:         model.FineStatusPending,
				CreatedAt:      now,
			}
			if err := s.repo.CreateFine(ctx, fine); err != nil {
				return err
			}
			issue.FineID = &fine.ID
			issue.Fine = &fine

			member, err := s.repo.GetMemberForUpdate(ctx, issue.MemberID)
			if err != nil {
				return err
			}
			pending := member.TotalFinesPending.Add(fine.FineAmount)
			blocked := member.IsBlocked || policy.ShouldBlock(pending)
			if err := s.repo.SaveMemberFines(ctx, member.ID, pending, blocked); err != nil {
				return err
			}
		}

		if err := s.repo.SaveIssue(ctx, issue); err != nil {
			return err
		}
		restocked, err := s.repo.ReturnCopy(ctx, issue.BookID)
		if err != nil {
			return err
		}
		if !restocked {
			s.log.Warn("returned book missing from catalog",
				zap.String("issue_id", issue.ID), zap.String("book_id", issue.BookID))
		}
		return s.repo.RemoveLoan(ctx, issue.MemberID)
	})
	if err != nil {
		return model.Issue{}, errors.Wrap(err, "ReturnBook")
	}

	details := map[string]any{"member_id": issue.MemberID, "book_id": issue.BookID}
	if issue.Fine != nil {
		details["fine_id"] = issue.Fine.ID
		details["fine_amount"] = issue.Fine.FineAmount.String()
		details["days_overdue"] = issue.Fine.DaysOverdue
	}
	s.record(ctx, actor, "issue.return", errs.EntityIssue, issue.ID, details)
	return issue, nil
}

// MarkOverdue flags every issued loan past its due date.
func (s *Service) MarkOverdue(ctx context.Context, actor auth.Principal) (int64, error) {
	if err := requirePermission(actor, auth.IssueReturn); err != nil {
		return 0, err
	}
	n, err := s.repo.MarkOverdue(ctx, s.clock.Now())
	if err != nil {
		return 0, errors.Wrap(err, "MarkOverdue")
	}
	if n > 0 {
		s.record(ctx, actor, "issue.mark_overdue", errs.EntityIssue, "", map[string]any{"count": n})
	}
	return n, nil
}

func (s *Service) ListIssues(ctx context.Context, actor auth.Principal, filter model.IssueFilter) (model.ListIssues, error) {
	own, err := s.ownMember(ctx, actor)
	if err != nil {
		return model.ListIssues{}, err
	}
	if own != "" {
		filter.MemberID = own
	}
	filter.Now = s.clock.Now()
	return s.repo.ListIssues(ctx, filter)
}

// ownMember returns the caller's member id when they may only see their own records,
// and "" for staff.
func (s *Service) ownMember(ctx context.Context, actor auth.Principal) (string, error) {
	if actor.Can(auth.MemberRead) {
		return "", nil
	}
	member, err := s.repo.GetMemberByUserID(ctx, actor.UserID)
	if err != nil {
		return "", err
	}
	return member.ID, nil
}

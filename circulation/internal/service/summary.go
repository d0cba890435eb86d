package service

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/auth"
)

// MemberSummary loads a member with their active loans and pending fines.
func (s *Service) MemberSummary(ctx context.Context, actor auth.Principal, memberID string) (model.MemberSummary, error) {
	if err := checkID(memberID, errs.EntityMember); err != nil {
		return model.MemberSummary{}, err
	}
	if !actor.Can(auth.MemberRead) {
		if !actor.Can(auth.MemberReadSelf) {
			return model.MemberSummary{}, errs.ErrForbidden
		}
		own, err := s.ownMember(ctx, actor)
		if err != nil {
			return model.MemberSummary{}, err
		}
		if own != memberID {
			return model.MemberSummary{}, errs.ErrForbidden
		}
	}

	var (
		summary model.MemberSummary
		issues  model.ListIssues
		fines   model.ListFines
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary.Member, err = s.repo.GetMember(gCtx, memberID)
		return err
	})
	g.Go(func() error {
		var err error
		issues, err = s.repo.ListIssues(gCtx, model.IssueFilter{MemberID: memberID, Active: true})
		return err
	})
	g.Go(func() error {
		var err error
		fines, err = s.repo.ListFines(gCtx, model.FineFilter{MemberID: memberID, Status: model.FineStatusPending})
		return err
	})
	if err := g.Wait(); err != nil {
		return model.MemberSummary{}, errors.Wrap(err, "MemberSummary")
	}
	summary.ActiveIssues = issues.Items
	summary.PendingFines = fines.Items
	return summary, nil
}

func (s *Service) ListActivity(ctx context.Context, actor auth.Principal, filter model.ActivityFilter) (model.ListActivity, error) {
	if err := requirePermission(actor, auth.ActivityRead); err != nil {
		return model.ListActivity{}, err
	}
	return s.repo.ListActivity(ctx, filter)
}

package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/auth"
)

const defaultWaiveReason = "Administrative Waiver"

// PayFine settles a pending fine. amount overrides the recorded paid amount; nil or zero pays
// fine_amount. The member balance always drops by the original fine_amount.
func (s *Service) PayFine(ctx context.Context, actor auth.Principal, fineID string, amount *decimal.Decimal) (model.Fine, error) {
	if err := requirePermission(actor, auth.FinePay); err != nil {
		return model.Fine{}, err
	}
	if err := checkID(fineID, errs.EntityFine); err != nil {
		return model.Fine{}, err
	}
	if amount != nil && amount.IsNegative() {
		return model.Fine{}, errs.Validation("amount")
	}

	var fine model.Fine
	err := s.repo.WithTx(ctx, func(ctx context.Context) error {
		var err error
		fine, err = s.repo.GetFineForUpdate(ctx, fineID)
		if err != nil {
			return err
		}
		if fine.Status == model.FineStatusPaid {
			return errs.ErrAlreadyPaid
		}
		if !fine.Status.CanTransitionTo(model.FineStatusPaid) {
			return errs.InvalidState("fine is %s", fine.Status)
		}

		now := s.clock.Now()
		fine.Status = model.FineStatusPaid
		fine.PaidAmount = fine.FineAmount
		if amount != nil && !amount.IsZero() {
			fine.PaidAmount = *amount
		}
		fine.PaidDate = &now
		fine.CollectedBy = &actor.UserID
		if err := s.repo.SaveFine(ctx, fine); err != nil {
			return err
		}
		return s.releaseFine(ctx, fine)
	})
	if err != nil {
		return model.Fine{}, errors.Wrap(err, "PayFine")
	}

	s.record(ctx, actor, "fine.pay", errs.EntityFine, fine.ID, map[string]any{
		"member_id":   fine.MemberID,
		"fine_amount": fine.FineAmount.String(),
		"paid_amount": fine.PaidAmount.String(),
	})
	return fine, nil
}

// WaiveFine cancels a pending fine. An empty reason is recorded as the default waiver reason.
func (s *Service) WaiveFine(ctx context.Context, actor auth.Principal, fineID, reason string) (model.Fine, error) {
	if err := requirePermission(actor, auth.FineWaive); err != nil {
		return model.Fine{}, err
	}
	if err := checkID(fineID, errs.EntityFine); err != nil {
		return model.Fine{}, err
	}
	if reason == "" {
		reason = defaultWaiveReason
	}

	var fine model.Fine
	err := s.repo.WithTx(ctx, func(ctx context.Context) error {
		var err error
		fine, err = s.repo.GetFineForUpdate(ctx, fineID)
		if err != nil {
			return err
		}
		if !fine.Status.CanTransitionTo(model.FineStatusWaived) {
			return errs.InvalidState("fine is %s", fine.Status)
		}

		fine.Status = model.FineStatusWaived
		fine.WaivedBy = &actor.UserID
		fine.WaiveReason = &reason
		if err := s.repo.SaveFine(ctx, fine); err != nil {
			return err
		}
		return s.releaseFine(ctx, fine)
	})
	if err != nil {
		return model.Fine{}, errors.Wrap(err, "WaiveFine")
	}

	s.record(ctx, actor, "fine.waive", errs.EntityFine, fine.ID, map[string]any{
		"member_id":   fine.MemberID,
		"fine_amount": fine.FineAmount.String(),
		"reason":      reason,
	})
	return fine, nil
}

// releaseFine takes a settled fine off the member balance, floored at zero, and lifts the
// block once the balance is strictly below the threshold. It never blocks.
func (s *Service) releaseFine(ctx context.Context, fine model.Fine) error {
	member, err := s.repo.GetMemberForUpdate(ctx, fine.MemberID)
	if err != nil {
		return err
	}
	pending := decimal.Max(member.TotalFinesPending.Sub(fine.FineAmount), decimal.Zero)
	blocked := member.IsBlocked && !s.Policy().ShouldUnblock(pending)
	return s.repo.SaveMemberFines(ctx, member.ID, pending, blocked)
}

func (s *Service) ListFines(ctx context.Context, actor auth.Principal, filter model.FineFilter) (model.ListFines, error) {
	own, err := s.ownMember(ctx, actor)
	if err != nil {
		return model.ListFines{}, err
	}
	if own != "" {
		filter.MemberID = own
	}
	return s.repo.ListFines(ctx, filter)
}

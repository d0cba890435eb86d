package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/auth"
)

// CreateRequest queues a hold on a book. Members always request for themselves;
// staff name the member explicitly.
func (s *Service) CreateRequest(ctx context.Context, actor auth.Principal, req model.CreateRequestRequest) (model.BookRequest, error) {
	if err := requirePermission(actor, auth.RequestCreate); err != nil {
		return model.BookRequest{}, err
	}
	own, err := s.ownMember(ctx, actor)
	if err != nil {
		return model.BookRequest{}, errors.Wrap(err, "CreateRequest")
	}
	memberID := req.MemberID
	if own != "" {
		memberID = own
	}
	if memberID == "" {
		return model.BookRequest{}, errs.Validation("memberId")
	}
	if err := checkID(memberID, errs.EntityMember); err != nil {
		return model.BookRequest{}, err
	}

	var request model.BookRequest
	err = s.repo.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetMember(ctx, memberID); err != nil {
			return err
		}
		if err := checkID(req.BookID, errs.EntityBook); err != nil {
			return err
		}
		if _, err := s.repo.GetBook(ctx, req.BookID); err != nil {
			return err
		}
		pending, err := s.repo.HasPendingRequest(ctx, memberID, req.BookID)
		if err != nil {
			return err
		}
		if pending {
			return errs.ErrDuplicatePending
		}

		request = model.BookRequest{
			ID:          newID(),
			MemberID:    memberID,
			BookID:      req.BookID,
			RequestDate: s.clock.Now(),
			Status:      model.RequestStatusPending,
			Priority:    req.Priority,
		}
		return s.repo.CreateRequest(ctx, request)
	})
	if err != nil {
		return model.BookRequest{}, errors.Wrap(err, "CreateRequest")
	}

	s.record(ctx, actor, "request.create", errs.EntityRequest, request.ID, map[string]any{
		"member_id": request.MemberID,
		"book_id":   request.BookID,
	})
	return request, nil
}

// ProcessRequest records a staff decision. Approval does not issue the book.
func (s *Service) ProcessRequest(ctx context.Context, actor auth.Principal, requestID string, req model.ProcessRequestRequest) (model.BookRequest, error) {
	if err := requirePermission(actor, auth.RequestManage); err != nil {
		return model.BookRequest{}, err
	}
	if !req.Status.IsDecision() {
		return model.BookRequest{}, errs.Validation("status")
	}
	if err := checkID(requestID, errs.EntityRequest); err != nil {
		return model.BookRequest{}, err
	}

	var request model.BookRequest
	err := s.repo.WithTx(ctx, func(ctx context.Context) error {
		var err error
		request, err = s.repo.GetRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if !request.Status.CanTransitionTo(req.Status) {
			return errs.InvalidState("request is %s", request.Status)
		}

		now := s.clock.Now()
		request.Status = req.Status
		request.ProcessedBy = &actor.UserID
		request.ProcessedDate = &now
		if req.Remarks != "" {
			remarks := req.Remarks
			request.Remarks = &remarks
		}
		return s.repo.SaveRequest(ctx, request)
	})
	if err != nil {
		return model.BookRequest{}, errors.Wrap(err, "ProcessRequest")
	}

	s.record(ctx, actor, "request.process", errs.EntityRequest, request.ID, map[string]any{
		"status":  string(request.Status),
		"remarks": req.Remarks,
	})
	return request, nil
}

// CancelRequest withdraws the caller's own pending request. Another member's request is reported as not found.
func (s *Service) CancelRequest(ctx context.Context, actor auth.Principal, requestID string) (model.BookRequest, error) {
	if err := requirePermission(actor, auth.RequestCreate); err != nil {
		return model.BookRequest{}, err
	}
	if err := checkID(requestID, errs.EntityRequest); err != nil {
		return model.BookRequest{}, err
	}
	own, err := s.ownMember(ctx, actor)
	if err != nil {
		return model.BookRequest{}, errors.Wrap(err, "CancelRequest")
	}

	var request model.BookRequest
	err = s.repo.WithTx(ctx, func(ctx context.Context) error {
		var err error
		request, err = s.repo.GetRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if own != "" && request.MemberID != own {
			return errs.NotFound(errs.EntityRequest)
		}
		if !request.Status.CanTransitionTo(model.RequestStatusCancelled) {
			return errs.InvalidState("request is %s", request.Status)
		}

		now := s.clock.Now()
		request.Status = model.RequestStatusCancelled
		request.ProcessedBy = &actor.UserID
		request.ProcessedDate = &now
		return s.repo.SaveRequest(ctx, request)
	})
	if err != nil {
		return model.BookRequest{}, errors.Wrap(err, "CancelRequest")
	}

	s.record(ctx, actor, "request.cancel", errs.EntityRequest, request.ID, nil)
	return request, nil
}

func (s *Service) ListRequests(ctx context.Context, actor auth.Principal, filter model.RequestFilter) (model.ListRequests, error) {
	own, err := s.ownMember(ctx, actor)
	if err != nil {
		return model.ListRequests{}, err
	}
	filter.MemberID = own
	return s.repo.ListRequests(ctx, filter)
}

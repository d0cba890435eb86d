package handler

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/service"
	"github.com/Astemirdum/library-circulation/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CirculationService interface {
	IssueBook(ctx context.Context, actor auth.Principal, req model.IssueBookRequest) (model.Issue, error)
	ReturnBook(ctx context.Context, actor auth.Principal, issueID string) (model.Issue, error)
	MarkOverdue(ctx context.Context, actor auth.Principal) (int64, error)
	ListIssues(ctx context.Context, actor auth.Principal, filter model.IssueFilter) (model.ListIssues, error)

	PayFine(ctx context.Context, actor auth.Principal, fineID string, amount *decimal.Decimal) (model.Fine, error)
	WaiveFine(ctx context.Context, actor auth.Principal, fineID, reason string) (model.Fine, error)
	ListFines(ctx context.Context, actor auth.Principal, filter model.FineFilter) (model.ListFines, error)

	CreateRequest(ctx context.Context, actor auth.Principal, req model.CreateRequestRequest) (model.BookRequest, error)
	ProcessRequest(ctx context.Context, actor auth.Principal, requestID string, req model.ProcessRequestRequest) (model.BookRequest, error)
	CancelRequest(ctx context.Context, actor auth.Principal, requestID string) (model.BookRequest, error)
	ListRequests(ctx context.Context, actor auth.Principal, filter model.RequestFilter) (model.ListRequests, error)

	MemberSummary(ctx context.Context, actor auth.Principal, memberID string) (model.MemberSummary, error)
	ListActivity(ctx context.Context, actor auth.Principal, filter model.ActivityFilter) (model.ListActivity, error)
	ReloadPolicy(ctx context.Context) (model.Policy, error)
}

var _ CirculationService = (*service.Service)(nil)

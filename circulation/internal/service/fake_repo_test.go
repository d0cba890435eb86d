package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

// fakeRepo keeps records in maps. WithTx snapshots them and restores the snapshot when fn fails.
type fakeRepo struct {
	txMu     sync.Mutex
	mu       sync.Mutex
	members  map[string]model.Member
	books    map[string]model.Book
	issues   map[string]model.Issue
	fines    map[string]model.Fine
	requests map[string]model.BookRequest
	settings []model.Setting
	activity []model.Activity

	settingsErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		members:  map[string]model.Member{},
		books:    map[string]model.Book{},
		issues:   map[string]model.Issue{},
		fines:    map[string]model.Fine{},
		requests: map[string]model.BookRequest{},
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type fakeTxKey struct{}

// WithTx serializes transactions, standing in for row locks.
func (r *fakeRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(fakeTxKey{}) != nil {
		return fn(ctx)
	}
	r.txMu.Lock()
	defer r.txMu.Unlock()

	r.mu.Lock()
	members, books, issues := cloneMap(r.members), cloneMap(r.books), cloneMap(r.issues)
	fines, requests := cloneMap(r.fines), cloneMap(r.requests)
	r.mu.Unlock()

	if err := fn(context.WithValue(ctx, fakeTxKey{}, true)); err != nil {
		r.mu.Lock()
		r.members, r.books, r.issues, r.fines, r.requests = members, books, issues, fines, requests
		r.mu.Unlock()
		return err
	}
	return nil
}

func (r *fakeRepo) GetMember(_ context.Context, id string) (model.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.members[id]
	if !ok {
		return model.Member{}, errs.NotFound(errs.EntityMember)
	}
	return m, nil
}

func (r *fakeRepo) GetMemberForUpdate(ctx context.Context, id string) (model.Member, error) {
	return r.GetMember(ctx, id)
}

func (r *fakeRepo) GetMemberByUserID(_ context.Context, userID string) (model.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.members {
		if m.UserID == userID {
			return m, nil
		}
	}
	return model.Member{}, errs.NotFound(errs.EntityMember)
}

func (r *fakeRepo) AddLoan(_ context.Context, memberID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.members[memberID]
	if !ok || m.IsBlocked || m.CurrentBooksIssued >= m.MaxBooksAllowed {
		return errs.ErrLoanLimitExceeded
	}
	m.CurrentBooksIssued++
	r.members[memberID] = m
	return nil
}

func (r *fakeRepo) RemoveLoan(_ context.Context, memberID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.members[memberID]
	if !ok {
		return nil
	}
	if m.CurrentBooksIssued > 0 {
		m.CurrentBooksIssued--
	}
	r.members[memberID] = m
	return nil
}

func (r *fakeRepo) SaveMemberFines(_ context.Context, memberID string, pending decimal.Decimal, blocked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.members[memberID]
	if !ok {
		return errs.NotFound(errs.EntityMember)
	}
	m.TotalFinesPending = pending
	m.IsBlocked = blocked
	r.members[memberID] = m
	return nil
}

func (r *fakeRepo) GetBook(_ context.Context, id string) (model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return model.Book{}, errs.NotFound(errs.EntityBook)
	}
	return b, nil
}

func (r *fakeRepo) GetBookForUpdate(ctx context.Context, id string) (model.Book, error) {
	return r.GetBook(ctx, id)
}

func (r *fakeRepo) TakeCopy(_ context.Context, bookID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[bookID]
	if !ok || b.Available < 1 {
		return errs.ErrBookUnavailable
	}
	b.Available--
	r.books[bookID] = b
	return nil
}

func (r *fakeRepo) ReturnCopy(_ context.Context, bookID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[bookID]
	if !ok {
		return false, nil
	}
	if b.Available < b.Quantity {
		b.Available++
	}
	r.books[bookID] = b
	return true, nil
}

func (r *fakeRepo) CreateIssue(_ context.Context, issue model.Issue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.issues[issue.ID] = issue
	return nil
}

func (r *fakeRepo) GetIssueForUpdate(_ context.Context, id string) (model.Issue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	issue, ok := r.issues[id]
	if !ok {
		return model.Issue{}, errs.NotFound(errs.EntityIssue)
	}
	return issue, nil
}

func (r *fakeRepo) SaveIssue(_ context.Context, issue model.Issue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.issues[issue.ID]; !ok {
		return errs.NotFound(errs.EntityIssue)
	}
	issue.Fine = nil
	r.issues[issue.ID] = issue
	return nil
}

func (r *fakeRepo) MarkOverdue(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, issue := range r.issues {
		if issue.Status == model.IssueStatusIssued && issue.DueDate.Before(now) {
			issue.Status = model.IssueStatusOverdue
			r.issues[id] = issue
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) ListIssues(_ context.Context, filter model.IssueFilter) (model.ListIssues, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]model.Issue, 0)
	for _, issue := range r.issues {
		switch {
		case filter.Status != "" && issue.Status != filter.Status:
			continue
		case filter.MemberID != "" && issue.MemberID != filter.MemberID:
			continue
		case filter.Active && !issue.Status.OnLoan():
			continue
		case filter.Overdue && !(issue.Status.OnLoan() && issue.DueDate.Before(filter.Now)):
			continue
		}
		items = append(items, issue)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return model.ListIssues{Paging: model.Paging{TotalElements: len(items)}, Items: items}, nil
}

func (r *fakeRepo) CreateFine(_ context.Context, fine model.Fine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.fines {
		if f.IssueID == fine.IssueID {
			return errs.InvalidState("issue already has a fine")
		}
	}
	r.fines[fine.ID] = fine
	return nil
}

func (r *fakeRepo) GetFineForUpdate(_ context.Context, id string) (model.Fine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.fines[id]
	if !ok {
		return model.Fine{}, errs.NotFound(errs.EntityFine)
	}
	return f, nil
}

func (r *fakeRepo) SaveFine(_ context.Context, fine model.Fine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.fines[fine.ID]; !ok {
		return errs.NotFound(errs.EntityFine)
	}
	r.fines[fine.ID] = fine
	return nil
}

func (r *fakeRepo) ListFines(_ context.Context, filter model.FineFilter) (model.ListFines, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]model.Fine, 0)
	for _, f := range r.fines {
		if filter.Status != "" && f.Status != filter.Status {
			continue
		}
		if filter.MemberID != "" && f.MemberID != filter.MemberID {
			continue
		}
		items = append(items, f)
	}
	return model.ListFines{Paging: model.Paging{TotalElements: len(items)}, Items: items}, nil
}

func (r *fakeRepo) HasPendingRequest(_ context.Context, memberID, bookID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range r.requests {
		if req.MemberID == memberID && req.BookID == bookID && req.Status == model.RequestStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) CreateRequest(_ context.Context, req model.BookRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[req.ID] = req
	return nil
}

func (r *fakeRepo) GetRequestForUpdate(_ context.Context, id string) (model.BookRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return model.BookRequest{}, errs.NotFound(errs.EntityRequest)
	}
	return req, nil
}

func (r *fakeRepo) SaveRequest(_ context.Context, req model.BookRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[req.ID] = req
	return nil
}

func (r *fakeRepo) ListRequests(_ context.Context, filter model.RequestFilter) (model.ListRequests, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]model.BookRequest, 0)
	for _, req := range r.requests {
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		if filter.MemberID != "" && req.MemberID != filter.MemberID {
			continue
		}
		items = append(items, req)
	}
	return model.ListRequests{Paging: model.Paging{TotalElements: len(items)}, Items: items}, nil
}

func (r *fakeRepo) ListSettings(context.Context) ([]model.Setting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.settings, r.settingsErr
}

func (r *fakeRepo) CreateActivity(_ context.Context, a model.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activity = append(r.activity, a)
	return nil
}

func (r *fakeRepo) ListActivity(_ context.Context, filter model.ActivityFilter) (model.ListActivity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]model.Activity, 0)
	for _, a := range r.activity {
		if filter.Action != "" && a.Action != filter.Action {
			continue
		}
		items = append(items, a)
	}
	return model.ListActivity{Paging: model.Paging{TotalElements: len(items)}, Items: items}, nil
}

type recorded struct {
	mu    sync.Mutex
	items []model.Activity
}

func (r *recorded) Record(_ context.Context, a model.Activity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, a)
}

func (r *recorded) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.items))
	for _, a := range r.items {
		out = append(out, a.Action)
	}
	return out
}

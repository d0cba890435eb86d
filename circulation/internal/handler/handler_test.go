package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/handler"
	service_mocks "github.com/Astemirdum/library-circulation/circulation/internal/handler/mocks"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/auth"
)

var authCfg = auth.Config{Secret: "handler-test"}

const (
	memberID = "6f1c2a43-40c2-4d0b-9a4e-2f1b0f8f3c11"
	bookID   = "0b7f3d52-88a1-4c9e-b1d4-7e2c5a9f6d20"
	issueID  = "c3a9e1f0-5d2b-4a7c-8e6f-1b2d3c4e5f60"
	fineID   = "9d8c7b6a-5f4e-4d3c-2b1a-0f9e8d7c6b5a"
)

func bearer(t *testing.T, role auth.Role) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		Profile:          auth.Profile{UserID: "user-" + string(role), Username: string(role), Role: string(role)},
	}).SignedString([]byte(authCfg.Secret))
	require.NoError(t, err)
	return "Bearer " + token
}

type roleMatcher auth.Role

func isRole(role auth.Role) gomock.Matcher {
	return roleMatcher(role)
}

func (m roleMatcher) Matches(x interface{}) bool {
	p, ok := x.(auth.Principal)
	return ok && p.Role == auth.Role(m)
}

func (m roleMatcher) String() string {
	return "principal with role " + string(m)
}

type decimalMatcher decimal.Decimal

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(*decimal.Decimal)
	return ok && d != nil && d.Equal(decimal.Decimal(m))
}

func (m decimalMatcher) String() string {
	return "amount " + decimal.Decimal(m).String()
}

func TestHandler_IssueBook(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockCirculationService)

	due := time.Date(2024, 5, 24, 9, 30, 0, 0, time.UTC)
	tests := []struct {
		name          string
		role          auth.Role
		noAuth        bool
		body          string
		mockBehavior  mockBehavior
		expectedCode  int
		expectedBody  string
		bodyHasPrefix string
	}{
		{
			name: "ok",
			role: auth.RoleLibrarian,
			body: `{"memberId":"` + memberID + `","bookId":"` + bookID + `"}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					IssueBook(gomock.Any(), isRole(auth.RoleLibrarian), model.IssueBookRequest{MemberID: memberID, BookID: bookID}).
					Return(model.Issue{
						ID:        issueID,
						MemberID:  memberID,
						BookID:    bookID,
						IssuedBy:  "user-librarian",
						IssueDate: due.AddDate(0, 0, -14),
						DueDate:   due,
						Status:    model.IssueStatusIssued,
					}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":"` + issueID + `","memberId":"` + memberID + `","bookId":"` + bookID + `","issuedBy":"user-librarian","issueDate":"2024-05-10T09:30:00Z","dueDate":"2024-05-24T09:30:00Z","status":"issued"}`,
		},
		{
			name:         "err. no token",
			noAuth:       true,
			body:         `{}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"No Authorization Header"}`,
		},
		{
			name:         "err. member cannot issue",
			role:         auth.RoleMember,
			body:         `{"memberId":"` + memberID + `","bookId":"` + bookID + `"}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"message":"Permission denied: issue.create required"}`,
		},
		{
			name:         "err. invalid member id",
			role:         auth.RoleLibrarian,
			body:         `{"memberId":"42","bookId":"` + bookID + `"}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"validation failed: memberId","kind":"validation_failed","fields":["memberId"]}`,
		},
		{
			name: "err. member blocked",
			role: auth.RoleLibrarian,
			body: `{"memberId":"` + memberID + `","bookId":"` + bookID + `"}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().IssueBook(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Issue{}, errors.Wrap(errs.ErrMemberBlocked, "IssueBook"))
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"member is blocked","kind":"member_blocked"}`,
		},
		{
			name: "err. book not found",
			role: auth.RoleAdmin,
			body: `{"memberId":"` + memberID + `","bookId":"` + bookID + `"}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().IssueBook(gomock.Any(), isRole(auth.RoleAdmin), gomock.Any()).
					Return(model.Issue{}, errs.NotFound(errs.EntityBook))
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"book not found","kind":"not_found"}`,
		},
		{
			name: "err. internal",
			role: auth.RoleLibrarian,
			body: `{"memberId":"` + memberID + `","bookId":"` + bookID + `"}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().IssueBook(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Issue{}, errors.New("pq: connection reset by peer"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"internal error","kind":"internal"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			h := handler.New(svc, zap.NewExample().Named("test"), authCfg)
			e := h.NewRouter()

			r := httptest.NewRequest(http.MethodPost, "/api/v1/issues", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			if !tt.noAuth {
				r.Header.Set("Authorization", bearer(t, tt.role))
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ReturnBook(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)
	e := handler.New(svc, zap.NewNop(), authCfg).NewRouter()

	svc.EXPECT().ReturnBook(gomock.Any(), isRole(auth.RoleLibrarian), issueID).
		Return(model.Issue{}, errs.ErrAlreadyReturned)

	r := httptest.NewRequest(http.MethodPut, "/api/v1/issues/"+issueID+"/return", http.NoBody)
	r.Header.Set("Authorization", bearer(t, auth.RoleLibrarian))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, `{"message":"book already returned","kind":"already_returned"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_PayFine(t *testing.T) {
	t.Parallel()
	amount := decimal.RequireFromString("12.50")
	tests := []struct {
		name         string
		body         string
		amount       gomock.Matcher
		expectedCode int
	}{
		{
			name:         "full amount",
			body:         "",
			amount:       gomock.Nil(),
			expectedCode: http.StatusOK,
		},
		{
			name:         "override",
			body:         `{"amount":12.5}`,
			amount:       decimalMatcher(amount),
			expectedCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			e := handler.New(svc, zap.NewNop(), authCfg).NewRouter()

			svc.EXPECT().PayFine(gomock.Any(), isRole(auth.RoleLibrarian), fineID, tt.amount).
				Return(model.Fine{ID: fineID, Status: model.FineStatusPaid}, nil)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/fines/"+fineID+"/pay", strings.NewReader(tt.body))
			if tt.body != "" {
				r.Header.Set("Content-Type", "application/json")
			}
			r.Header.Set("Authorization", bearer(t, auth.RoleLibrarian))
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Contains(t, w.Body.String(), `"status":"paid"`)
		})
	}
}

func TestHandler_WaiveFine(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)
	e := handler.New(svc, zap.NewNop(), authCfg).NewRouter()

	svc.EXPECT().WaiveFine(gomock.Any(), gomock.Any(), fineID, "").
		Return(model.Fine{}, errs.InvalidState("fine is paid"))

	r := httptest.NewRequest(http.MethodPost, "/api/v1/fines/"+fineID+"/waive", strings.NewReader(`{}`))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Authorization", bearer(t, auth.RoleAdmin))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, `{"message":"fine is paid","kind":"invalid_state"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_ListIssues(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)
	e := handler.New(svc, zap.NewNop(), authCfg).NewRouter()

	svc.EXPECT().
		ListIssues(gomock.Any(), isRole(auth.RoleMember), model.IssueFilter{Overdue: true, Page: 2, Size: 10}).
		Return(model.ListIssues{Paging: model.Paging{Page: 2, PageSize: 10}, Items: []model.Issue{}}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/issues?overdue=true&page=2&size=10", http.NoBody)
	r.Header.Set("Authorization", bearer(t, auth.RoleMember))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"page":2,"pageSize":10,"totalElements":0,"items":[]}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_CreateRequest(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)
	e := handler.New(svc, zap.NewNop(), authCfg).NewRouter()

	svc.EXPECT().CreateRequest(gomock.Any(), isRole(auth.RoleMember), model.CreateRequestRequest{BookID: bookID}).
		Return(model.BookRequest{}, errs.ErrDuplicatePending)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/requests", strings.NewReader(`{"bookId":"`+bookID+`"}`))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Authorization", bearer(t, auth.RoleMember))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), `"kind":"duplicate_pending"`)
}

func TestHandler_ProcessRequest(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)
	e := handler.New(svc, zap.NewNop(), authCfg).NewRouter()

	r := httptest.NewRequest(http.MethodPut, "/api/v1/requests/"+issueID+"/process", strings.NewReader(`{"status":"cancelled"}`))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Authorization", bearer(t, auth.RoleLibrarian))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"message":"validation failed: status","kind":"validation_failed","fields":["status"]}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_MemberSummary(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)
	e := handler.New(svc, zap.NewNop(), authCfg).NewRouter()

	svc.EXPECT().MemberSummary(gomock.Any(), isRole(auth.RoleMember), memberID).
		Return(model.MemberSummary{}, errs.ErrForbidden)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/members/"+memberID+"/summary", http.NoBody)
	r.Header.Set("Authorization", bearer(t, auth.RoleMember))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ActivityAndSettingsAreAdminOnly(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)
	e := handler.New(svc, zap.NewNop(), authCfg).NewRouter()

	for _, target := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/activity-logs"},
		{http.MethodPost, "/api/v1/settings/reload"},
	} {
		r := httptest.NewRequest(target.method, target.path, http.NoBody)
		r.Header.Set("Authorization", bearer(t, auth.RoleLibrarian))
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)
		require.Equal(t, http.StatusForbidden, w.Code, target.path)
	}

	svc.EXPECT().ReloadPolicy(gomock.Any()).Return(model.DefaultPolicy(), nil)
	r := httptest.NewRequest(http.MethodPost, "/api/v1/settings/reload", http.NoBody)
	r.Header.Set("Authorization", bearer(t, auth.RoleAdmin))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"loanDays":14,"fineRatePerDay":"5","maxFineBeforeBlock":"500"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	e := handler.New(service_mocks.NewMockCirculationService(c), zap.NewNop(), authCfg).NewRouter()

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/manage/health", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}

package model

type IssueStatus string

const (
	IssueStatusIssued   IssueStatus = "issued"
	IssueStatusReturned IssueStatus = "returned"
	IssueStatusOverdue  IssueStatus = "overdue"
	IssueStatusLost     IssueStatus = "lost"
)

var issueTransitions = map[IssueStatus][]IssueStatus{
	IssueStatusIssued:  {IssueStatusReturned, IssueStatusOverdue, IssueStatusLost},
	IssueStatusOverdue: {IssueStatusReturned, IssueStatusLost},
}

func (s IssueStatus) Valid() bool {
	switch s {
	case IssueStatusIssued, IssueStatusReturned, IssueStatusOverdue, IssueStatusLost:
		return true
	}
	return false
}

// CanTransitionTo reports whether a loan in state s may move to next.
func (s IssueStatus) CanTransitionTo(next IssueStatus) bool {
	return contains(issueTransitions[s], next)
}

// OnLoan reports whether the copy is still out with the member.
func (s IssueStatus) OnLoan() bool {
	return s == IssueStatusIssued || s == IssueStatusOverdue
}

type FineStatus string

const (
	FineStatusPending FineStatus = "pending"
	FineStatusPaid    FineStatus = "paid"
	FineStatusWaived  FineStatus = "waived"
)

// paid and waived are terminal.
var fineTransitions = map[FineStatus][]FineStatus{
	FineStatusPending: {FineStatusPaid, FineStatusWaived},
}

func (s FineStatus) Valid() bool {
	switch s {
	case FineStatusPending, FineStatusPaid, FineStatusWaived:
		return true
	}
	return false
}

func (s FineStatus) CanTransitionTo(next FineStatus) bool {
	return contains(fineTransitions[s], next)
}

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending: {RequestStatusApproved, RequestStatusRejected, RequestStatusCancelled},
}

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected, RequestStatusCancelled:
		return true
	}
	return false
}

func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	return contains(requestTransitions[s], next)
}

// IsDecision reports whether s is a staff decision on a pending request.
func (s RequestStatus) IsDecision() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

func contains[T comparable](items []T, v T) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type IssueBookRequest struct {
	MemberID string `json:"memberId" validate:"required,uuid"`
	BookID   string `json:"bookId" validate:"required,uuid"`
}

type PayFineRequest struct {
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

type WaiveFineRequest struct {
	Reason string `json:"reason,omitempty" validate:"max=500"`
}

type CreateRequestRequest struct {
	MemberID string `json:"memberId,omitempty" validate:"omitempty,uuid"`
	BookID   string `json:"bookId" validate:"required,uuid"`
	Priority int    `json:"priority" validate:"gte=0"`
}

type ProcessRequestRequest struct {
	Status  RequestStatus `json:"status" validate:"required,oneof=approved rejected"`
	Remarks string        `json:"remarks,omitempty" validate:"max=500"`
}

type IssueFilter struct {
	Status   IssueStatus `query:"status" validate:"omitempty,oneof=issued returned overdue lost"`
	MemberID string      `query:"member_id" validate:"omitempty,uuid"`
	Overdue  bool        `query:"overdue"`
	Active   bool        `query:"active"`
	Page     int         `query:"page" validate:"gte=0"`
	Size     int         `query:"size" validate:"gte=0,lte=100"`
	// Now is the cut-off for Overdue, set by the service.
	Now time.Time `query:"-"`
}

type FineFilter struct {
	Status   FineStatus `query:"status" validate:"omitempty,oneof=pending paid waived"`
	MemberID string     `query:"member_id" validate:"omitempty,uuid"`
	Page     int        `query:"page" validate:"gte=0"`
	Size     int        `query:"size" validate:"gte=0,lte=100"`
}

type RequestFilter struct {
	Status   RequestStatus `query:"status" validate:"omitempty,oneof=pending approved rejected cancelled"`
	MemberID string        `query:"-"`
	Page     int           `query:"page" validate:"gte=0"`
	Size     int           `query:"size" validate:"gte=0,lte=100"`
}

type ActivityFilter struct {
	UserID     string `query:"user_id"`
	Action     string `query:"action"`
	EntityType string `query:"entity_type"`
	Page       int    `query:"page" validate:"gte=0"`
	Size       int    `query:"limit" validate:"gte=0,lte=100"`
}

type ListIssues struct {
	Paging
	Items []Issue `json:"items"`
}

type ListFines struct {
	Paging
	Items []Fine `json:"items"`
}

type ListRequests struct {
	Paging
	Items []BookRequest `json:"items"`
}

type ListActivity struct {
	Paging
	Items []Activity `json:"items"`
}

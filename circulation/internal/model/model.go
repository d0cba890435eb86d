package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type Book struct {
	ID          string  `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	ISBN        string  `json:"isbn" db:"isbn"`
	AuthorID    *string `json:"authorId,omitempty" db:"author_id"`
	CategoryID  *string `json:"categoryId,omitempty" db:"category_id"`
	PublisherID *string `json:"publisherId,omitempty" db:"publisher_id"`
	Quantity    int     `json:"quantity" db:"quantity"`
	Available   int     `json:"available" db:"available"`
	IsActive    bool    `json:"isActive" db:"is_active"`
}

type MembershipType string

const (
	MembershipStudent MembershipType = "student"
	MembershipFaculty MembershipType = "faculty"
	MembershipPublic  MembershipType = "public"
)

type Member struct {
	ID                 string          `json:"id" db:"id"`
	UserID             string          `json:"userId" db:"user_id"`
	MemberCode         string          `json:"memberCode" db:"member_code"`
	MembershipType     MembershipType  `json:"membershipType" db:"membership_type"`
	MaxBooksAllowed    int             `json:"maxBooksAllowed" db:"max_books_allowed"`
	CurrentBooksIssued int             `json:"currentBooksIssued" db:"current_books_issued"`
	TotalFinesPending  decimal.Decimal `json:"totalFinesPending" db:"total_fines_pending"`
	IsBlocked          bool            `json:"isBlocked" db:"is_blocked"`
}

type Issue struct {
	ID         string      `json:"id" db:"id"`
	MemberID   string      `json:"memberId" db:"member_id"`
	BookID     string      `json:"bookId" db:"book_id"`
	IssuedBy   string      `json:"issuedBy" db:"issued_by"`
	IssueDate  time.Time   `json:"issueDate" db:"issue_date"`
	DueDate    time.Time   `json:"dueDate" db:"due_date"`
	ReturnDate *time.Time  `json:"returnDate,omitempty" db:"return_date"`
	ReturnedTo *string     `json:"returnedTo,omitempty" db:"returned_to"`
	Status     IssueStatus `json:"status" db:"status"`
	FineID     *string     `json:"fineId,omitempty" db:"fine_id"`
	Fine       *Fine       `json:"fine,omitempty" db:"-"`
}

type FineReason string

const (
	FineReasonOverdue FineReason = "overdue"
	FineReasonLost    FineReason = "lost"
	FineReasonDamaged FineReason = "damaged"
)

type Fine struct {
	ID             string          `json:"id" db:"id"`
	IssueID        string          `json:"issueId" db:"issue_id"`
	MemberID       string          `json:"memberId" db:"member_id"`
	FineAmount     decimal.Decimal `json:"fineAmount" db:"fine_amount"`
	FineReason     FineReason      `json:"fineReason" db:"fine_reason"`
	DaysOverdue    int             `json:"daysOverdue" db:"days_overdue"`
	FineRatePerDay decimal.Decimal `json:"fineRatePerDay" db:"fine_rate_per_day"`
	Status         FineStatus      `json:"status" db:"status"`
	PaidAmount     decimal.Decimal `json:"paidAmount" db:"paid_amount"`
	PaidDate       *time.Time      `json:"paidDate,omitempty" db:"paid_date"`
	CollectedBy    *string         `json:"collectedBy,omitempty" db:"collected_by"`
	WaivedBy       *string         `json:"waivedBy,omitempty" db:"waived_by"`
	WaiveReason    *string         `json:"waiveReason,omitempty" db:"waive_reason"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
}

type BookRequest struct {
	ID            string        `json:"id" db:"id"`
	MemberID      string        `json:"memberId" db:"member_id"`
	BookID        string        `json:"bookId" db:"book_id"`
	RequestDate   time.Time     `json:"requestDate" db:"request_date"`
	Status        RequestStatus `json:"status" db:"status"`
	ProcessedBy   *string       `json:"processedBy,omitempty" db:"processed_by"`
	ProcessedDate *time.Time    `json:"processedDate,omitempty" db:"processed_date"`
	Remarks       *string       `json:"remarks,omitempty" db:"remarks"`
	Priority      int           `json:"priority" db:"priority"`
}

type SettingType string

const (
	SettingTypeNumber  SettingType = "number"
	SettingTypeString  SettingType = "string"
	SettingTypeBoolean SettingType = "boolean"
	SettingTypeJSON    SettingType = "json"
)

const (
	SettingMaxIssueDays       = "max_issue_days"
	SettingFineRatePerDay     = "fine_rate_per_day"
	SettingMaxFineBeforeBlock = "max_fine_before_block"
)

type Setting struct {
	Key         string      `json:"key" db:"setting_key"`
	Value       string      `json:"value" db:"setting_value"`
	DataType    SettingType `json:"dataType" db:"data_type"`
	Description *string     `json:"description,omitempty" db:"description"`
}

type Activity struct {
	ID         string         `json:"id" db:"id"`
	UserID     string         `json:"userId" db:"user_id"`
	Action     string         `json:"action" db:"action"`
	EntityType string         `json:"entityType" db:"entity_type"`
	EntityID   string         `json:"entityId" db:"entity_id"`
	Details    map[string]any `json:"details,omitempty" db:"details"`
	IPAddress  string         `json:"ipAddress,omitempty" db:"ip_address"`
	UserAgent  string         `json:"userAgent,omitempty" db:"user_agent"`
	Timestamp  time.Time      `json:"timestamp" db:"timestamp"`
}

type MemberSummary struct {
	Member       Member  `json:"member"`
	ActiveIssues []Issue `json:"activeIssues"`
	PendingFines []Fine  `json:"pendingFines"`
}

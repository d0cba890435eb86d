package model

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	day        = 24 * time.Hour
	moneyScale = 2
)

// Policy parametrizes loan length, fine accrual and member blocking.
type Policy struct {
	LoanDays           int             `json:"loanDays"`
	FineRatePerDay     decimal.Decimal `json:"fineRatePerDay"`
	MaxFineBeforeBlock decimal.Decimal `json:"maxFineBeforeBlock"`
}

func DefaultPolicy() Policy {
	return Policy{
		LoanDays:           14,
		FineRatePerDay:     decimal.NewFromInt(5),
		MaxFineBeforeBlock: decimal.NewFromInt(500),
	}
}

func (p Policy) Validate() error {
	if p.LoanDays <= 0 {
		return errors.Errorf("loan period must be positive, got %d", p.LoanDays)
	}
	if p.FineRatePerDay.IsNegative() {
		return errors.Errorf("fine rate must not be negative, got %s", p.FineRatePerDay)
	}
	if p.MaxFineBeforeBlock.IsNegative() {
		return errors.Errorf("block threshold must not be negative, got %s", p.MaxFineBeforeBlock)
	}
	// amounts are stored as numeric(12,2)
	if !isCents(p.FineRatePerDay) {
		return errors.Errorf("fine rate must be whole cents, got %s", p.FineRatePerDay)
	}
	if !isCents(p.MaxFineBeforeBlock) {
		return errors.Errorf("block threshold must be whole cents, got %s", p.MaxFineBeforeBlock)
	}
	return nil
}

func isCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(moneyScale))
}

// WithSettings overlays stored settings on p. Unknown keys are ignored.
func (p Policy) WithSettings(settings []Setting) (Policy, error) {
	for _, s := range settings {
		switch s.Key {
		case SettingMaxIssueDays:
			days, err := strconv.Atoi(s.Value)
			if err != nil {
				return Policy{}, errors.Wrapf(err, "setting %s", s.Key)
			}
			p.LoanDays = days
		case SettingFineRatePerDay:
			rate, err := decimal.NewFromString(s.Value)
			if err != nil {
				return Policy{}, errors.Wrapf(err, "setting %s", s.Key)
			}
			p.FineRatePerDay = rate
		case SettingMaxFineBeforeBlock:
			limit, err := decimal.NewFromString(s.Value)
			if err != nil {
				return Policy{}, errors.Wrapf(err, "setting %s", s.Key)
			}
			p.MaxFineBeforeBlock = limit
		}
	}
	return p, p.Validate()
}

func (p Policy) DueDate(issued time.Time) time.Time {
	return issued.Add(time.Duration(p.LoanDays) * day)
}

// DaysOverdue counts started days past due; a minute late is one day.
func DaysOverdue(due, returned time.Time) int {
	late := returned.Sub(due)
	if late <= 0 {
		return 0
	}
	days := int(late / day)
	if late%day != 0 {
		days++
	}
	return days
}

func (p Policy) FineFor(days int) decimal.Decimal {
	return p.FineRatePerDay.Mul(decimal.NewFromInt(int64(days)))
}

// ShouldBlock is strict: a balance equal to the threshold does not block.
func (p Policy) ShouldBlock(pending decimal.Decimal) bool {
	return pending.GreaterThan(p.MaxFineBeforeBlock)
}

// ShouldUnblock is strict as well, so a blocked member at the threshold stays blocked.
func (p Policy) ShouldUnblock(pending decimal.Decimal) bool {
	return pending.LessThan(p.MaxFineBeforeBlock)
}

package domain

import "github.com/shopspring/decimal"

// JournalLine is a single debit or credit posted against one GL account.
type JournalLine struct {
	GLAccountID int64           `json:"glAccountId" validate:"required"`
	Amount      decimal.Decimal `json:"amount"` // checked by the service; validator tags don't apply to decimals
}

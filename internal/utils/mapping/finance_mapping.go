package mapping

import (
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/protecfeu/erp_backend/internal/core/domain"
	"github.com/protecfeu/erp_backend/internal/models"
)

// NullInt64 converts an optional id to its sql wrapper.
func NullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

// Int64Ptr converts a sql wrapper back to an optional id.
func Int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

// NullString converts "" to NULL; the schema treats empty text as absent.
func NullString(v string) sql.NullString {
	if v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}

// NullDecimal converts an optional decimal to its sql wrapper.
func NullDecimal(v *decimal.Decimal) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *v, Valid: true}
}

// DecimalPtr converts a sql wrapper back to an optional decimal.
func DecimalPtr(v decimal.NullDecimal) *decimal.Decimal {
	if !v.Valid {
		return nil
	}
	return &v.Decimal
}

// ToModelLedgerLine converts a domain ledger line for storage.
func ToModelLedgerLine(d domain.LedgerLine) models.LedgerLine {
	return models.LedgerLine{
		LineID:          d.LineID,
		DebitAccountID:  d.DebitAccountID,
		CreditAccountID: d.CreditAccountID,
		AmountMinor:     d.AmountMinor,
		CurrencyCode:    d.CurrencyCode,
		FxRate:          NullDecimal(d.FxRate),
		OperationDate:   d.OperationDate,
		CategoryID:      NullInt64(d.CategoryID),
		Memo:            NullString(d.Memo),
		CreatedBy:       d.CreatedBy,
	}
}

// ToDomainLedgerLine converts a stored ledger line back to the domain.
func ToDomainLedgerLine(m models.LedgerLine) domain.LedgerLine {
	return domain.LedgerLine{
		LineID:          m.LineID,
		DebitAccountID:  m.DebitAccountID,
		CreditAccountID: m.CreditAccountID,
		AmountMinor:     m.AmountMinor,
		CurrencyCode:    m.CurrencyCode,
		FxRate:          DecimalPtr(m.FxRate),
		OperationDate:   m.OperationDate,
		CategoryID:      Int64Ptr(m.CategoryID),
		Memo:            m.Memo.String,
		CreatedBy:       m.CreatedBy,
	}
}

// ToDomainCashBox converts a stored cash box back to the domain.
func ToDomainCashBox(m models.ProjectCashBox) domain.ProjectCashBox {
	return domain.ProjectCashBox{
		CashBoxID: m.CashBoxID,
		ProjectID: m.ProjectID,
		AccountID: m.AccountID,
		Manager:   m.Manager.String,
	}
}

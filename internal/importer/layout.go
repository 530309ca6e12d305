// Package importer turns heterogeneous tabular and JSON payloads into
// normalized client records with payment schedules. Rows are processed
// independently: one malformed row is recorded and skipped, never aborting
// the batch.
package importer

import (
	"fmt"

	"akhmetov/rassrochka-crm/internal/importerror"
)

// Layout is the positional column contract for spreadsheet imports.
// Indexes are 0-based. The schedule is encoded inline as MaxPairs
// repeating (payment date, payment status) column pairs starting at
// PairsStartCol; the trailing contact columns follow the pair region.
type Layout struct {
	NameCol           int
	PurchaseCol       int
	DebtCol           int
	MonthlyCol        int
	StartDateCol      int
	EndDateCol        int
	PairsStartCol     int
	MaxPairs          int
	GuarantorNameCol  int
	AddressCol        int
	PhoneCol          int
	GuarantorPhoneCol int
}

// DefaultLayout returns the vendor spreadsheet contract: column 0 is the
// row number (ignored), core fields in columns 1-6, 24 schedule pairs in
// columns 7-54, contacts in columns 55-58.
func DefaultLayout() Layout {
	return Layout{
		NameCol:           1,
		PurchaseCol:       2,
		DebtCol:           3,
		MonthlyCol:        4,
		StartDateCol:      5,
		EndDateCol:        6,
		PairsStartCol:     7,
		MaxPairs:          24,
		GuarantorNameCol:  55,
		AddressCol:        56,
		PhoneCol:          57,
		GuarantorPhoneCol: 58,
	}
}

// Validate checks the layout once at the normalizer boundary so positional
// indexes can be trusted afterwards. A malformed layout is a hard error.
func (l Layout) Validate() error {
	columns := map[string]int{
		"name":            l.NameCol,
		"purchase_amount": l.PurchaseCol,
		"debt_amount":     l.DebtCol,
		"monthly_payment": l.MonthlyCol,
		"start_date":      l.StartDateCol,
		"end_date":        l.EndDateCol,
		"pairs_start":     l.PairsStartCol,
		"guarantor_name":  l.GuarantorNameCol,
		"client_address":  l.AddressCol,
		"client_phone":    l.PhoneCol,
		"guarantor_phone": l.GuarantorPhoneCol,
	}
	for name, index := range columns {
		if index < 0 {
			return &importerror.LayoutError{Column: name, Msg: fmt.Sprintf("index %d is negative", index)}
		}
	}

	if l.MaxPairs < 1 {
		return &importerror.LayoutError{Column: "pairs", Msg: fmt.Sprintf("pair count %d must be at least 1", l.MaxPairs)}
	}

	pairsEnd := l.PairsStartCol + 2*l.MaxPairs
	for _, trailing := range []struct {
		name  string
		index int
	}{
		{"guarantor_name", l.GuarantorNameCol},
		{"client_address", l.AddressCol},
		{"client_phone", l.PhoneCol},
		{"guarantor_phone", l.GuarantorPhoneCol},
	} {
		if trailing.index < pairsEnd {
			return &importerror.LayoutError{
				Column: trailing.name,
				Msg:    fmt.Sprintf("index %d overlaps the schedule pair region ending at %d", trailing.index, pairsEnd-1),
			}
		}
	}

	return nil
}

// Package capital checks a statement of capital against the company's
// shareholder register before the statement can be confirmed.
package capital

import (
	"strconv"
	"strings"

	"github.com/mbolis/confirmation-statement/format"
	"github.com/mbolis/confirmation-statement/model"
	"github.com/pkg/errors"
)

type Result struct {
	ShareholderTotal int64
	StatementTotal   int64
	SharesMatch      bool
	UnpaidKnown      bool
}

// Reconciled reports whether the statement can be confirmed as it stands.
func (r Result) Reconciled() bool {
	return r.SharesMatch && r.UnpaidKnown
}

// Reconcile sums the shares held by every shareholder and compares them to the
// statement's total number of shares. A statement with no unpaid amount on
// record is never reconciled.
func Reconcile(soc *model.StatementOfCapital, shareholders []model.Shareholder) (Result, error) {
	if soc == nil {
		return Result{}, errors.New("no statement of capital")
	}

	var r Result
	for _, s := range shareholders {
		n, err := parseShares(s.Shares)
		if err != nil {
			return Result{}, errors.Wrapf(err, "shareholder %q", s.Surname)
		}
		r.ShareholderTotal += n
	}

	total, err := parseShares(soc.TotalNumberOfShares)
	if err != nil {
		return Result{}, errors.Wrap(err, "statement of capital total")
	}
	r.StatementTotal = total
	r.SharesMatch = r.ShareholderTotal == r.StatementTotal
	r.UnpaidKnown = soc.TotalAmountUnpaidForCurrency != nil
	return r, nil
}

func parseShares(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid share count %q", value)
	}
	return n, nil
}

// View is a statement of capital as displayed.
type View struct {
	ClassOfShares              string
	Currency                   string
	NumberAllotted             string
	AggregateNominalValue      string
	PrescribedParticulars      string
	TotalNumberOfShares        string
	TotalAggregateNominalValue string
	TotalAmountUnpaid          string
}

func Display(soc model.StatementOfCapital) (View, error) {
	v := View{
		ClassOfShares:         format.Upper(soc.ClassOfShares),
		Currency:              format.Upper(soc.Currency),
		PrescribedParticulars: soc.PrescribedParticulars,
	}
	var err error
	if v.NumberAllotted, err = format.Shares(soc.NumberAllotted); err != nil {
		return View{}, err
	}
	if v.TotalNumberOfShares, err = format.Shares(soc.TotalNumberOfShares); err != nil {
		return View{}, err
	}
	if v.AggregateNominalValue, err = format.Amount(soc.AggregateNominalValue); err != nil {
		return View{}, err
	}
	if v.TotalAggregateNominalValue, err = format.Amount(soc.TotalAggregateNominalValue); err != nil {
		return View{}, err
	}
	if soc.TotalAmountUnpaidForCurrency != nil {
		if v.TotalAmountUnpaid, err = format.Amount(*soc.TotalAmountUnpaidForCurrency); err != nil {
			return View{}, err
		}
	}
	return v, nil
}

package chit

import (
	"math"
	"time"
)

// InstallmentPeriod is the accrual bucket. The business counts elapsed
// installments in 30-day buckets, not calendar months, so accrual drifts
// from month boundaries over multi-year durations. That drift is a modeling
// choice the defaulter lists depend on; do not replace this with calendar
// arithmetic.
const InstallmentPeriod = 30 * 24 * time.Hour

// ExpectedInstallments estimates how many installments should have elapsed
// as of asOf, clamped to [0, durationMonths].
func ExpectedInstallments(startDate time.Time, durationMonths int, asOf time.Time) int {
	if durationMonths <= 0 {
		return 0
	}
	elapsed := asOf.Sub(startDate)
	if elapsed <= 0 {
		return 0
	}
	months := int(math.Ceil(float64(elapsed) / float64(InstallmentPeriod)))
	if months > durationMonths {
		months = durationMonths
	}
	return months
}

// ExpectedInstallmentsAtLeastOne is the daily-collection variant: a group
// that has started always owes at least its first installment, even before
// the first 30-day bucket closes.
func ExpectedInstallmentsAtLeastOne(startDate time.Time, durationMonths int, asOf time.Time) int {
	if durationMonths <= 0 {
		return 0
	}
	months := ExpectedInstallments(startDate, durationMonths, asOf)
	if months < 1 {
		months = 1
	}
	return months
}

// ExpectedTotal is the cumulative amount a ticket in the group should have
// paid as of asOf.
func ExpectedTotal(g Group, asOf time.Time) float64 {
	return float64(ExpectedInstallments(g.StartDate, g.DurationMonths, asOf)) * g.MonthlyInstallment
}

// FullTotal is the amount owed over the group's entire duration, used by the
// member ledger view.
func FullTotal(g Group) float64 {
	if g.DurationMonths <= 0 {
		return 0
	}
	return float64(g.DurationMonths) * g.MonthlyInstallment
}

package leave

import "time"

// Annual leave entitlements, fixed company policy.
const (
	AnnualPaidEntitlement = 9
	AnnualSickEntitlement = 2
)

// ProratedPaid returns the paid-leave entitlement for year. Employees
// joining mid-year get a pro-rated share of the annual 9 days, rounded
// up: months remaining counts the join month itself.
func ProratedPaid(joinDate time.Time, year int) int {
	if joinDate.Year() != year {
		return AnnualPaidEntitlement
	}
	monthsRemaining := 13 - int(joinDate.Month())
	return (AnnualPaidEntitlement*monthsRemaining + 11) / 12
}

// ProratedSick returns the sick-leave entitlement for year, rounded
// down when pro-rated.
func ProratedSick(joinDate time.Time, year int) int {
	if joinDate.Year() != year {
		return AnnualSickEntitlement
	}
	monthsRemaining := 13 - int(joinDate.Month())
	return AnnualSickEntitlement * monthsRemaining / 12
}

// Package loyalty implements the point ledger applied atomically with a
// booking: redemption is clamped at the account balance, accrual is one
// point per $10 of the booked service's snapshot price, rounded down.
package loyalty

// AccrualDivisor: 1 point per 10 currency units, floor division.
const AccrualDivisor = 10

type Adjustment struct {
	Redeemed   int
	Earned     int
	NewBalance int
}

// Apply computes the ledger adjustment for a booking. Requesting more
// points than the balance holds is not an error; redemption silently caps
// at the balance. A zero or negative snapshot price accrues nothing.
func Apply(balance, requestedRedeem, snapshotPrice int) Adjustment {
	redeemed := requestedRedeem
	if redeemed < 0 {
		redeemed = 0
	}
	if redeemed > balance {
		redeemed = balance
	}

	earned := 0
	if snapshotPrice > 0 {
		earned = snapshotPrice / AccrualDivisor
	}

	return Adjustment{
		Redeemed:   redeemed,
		Earned:     earned,
		NewBalance: balance - redeemed + earned,
	}
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
}

func rng(startMonth time.Month, startDay int, endMonth time.Month, endDay int) DateRange {
	return DateRange{Start: day(startMonth, startDay), End: day(endMonth, endDay)}
}

func TestHasOverlap(t *testing.T) {
	paid := rng(time.June, 10, time.June, 15)

	tests := []struct {
		name     string
		proposed DateRange
		want     bool
	}{
		{"inside existing stay", rng(time.June, 12, time.June, 13), true},
		{"starts on existing checkout day", rng(time.June, 15, time.June, 18), true},
		{"ends on existing checkin day", rng(time.June, 5, time.June, 10), true},
		{"starts inside, ends after", rng(time.June, 14, time.June, 20), true},
		{"starts before, ends inside", rng(time.June, 8, time.June, 11), true},
		{"strictly contains existing stay", rng(time.June, 1, time.June, 30), true},
		{"identical range", paid, true},
		{"day after checkout", rng(time.June, 16, time.June, 18), false},
		{"entirely before", rng(time.June, 1, time.June, 9), false},
		{"different month", rng(time.July, 10, time.July, 15), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasOverlap(tt.proposed, []DateRange{paid}))
		})
	}
}

func TestHasOverlap_NoExistingBookings(t *testing.T) {
	assert.False(t, HasOverlap(rng(time.June, 1, time.June, 2), nil))
	assert.False(t, HasOverlap(rng(time.June, 1, time.June, 2), []DateRange{}))
}

func TestHasOverlap_AnyOfMany(t *testing.T) {
	existing := []DateRange{
		rng(time.June, 1, time.June, 3),
		rng(time.June, 20, time.June, 25),
	}

	assert.True(t, HasOverlap(rng(time.June, 24, time.June, 28), existing))
	assert.False(t, HasOverlap(rng(time.June, 5, time.June, 18), existing))
}

func TestHasOverlap_SymmetricForDisjointRanges(t *testing.T) {
	a := rng(time.March, 1, time.March, 4)
	b := rng(time.March, 6, time.March, 9)

	assert.False(t, HasOverlap(a, []DateRange{b}))
	assert.False(t, HasOverlap(b, []DateRange{a}))
}

func TestHasOverlap_Reflexive(t *testing.T) {
	for _, r := range []DateRange{
		rng(time.January, 1, time.January, 2),
		rng(time.February, 10, time.March, 20),
		{Start: day(time.May, 5), End: day(time.May, 5)},
	} {
		assert.True(t, HasOverlap(r, []DateRange{r}))
	}
}

func TestHasOverlap_ContainmentWithoutEndpointsInside(t *testing.T) {
	outer := rng(time.August, 1, time.August, 31)
	inner := rng(time.August, 10, time.August, 12)

	assert.False(t, inner.Normalize().Contains(outer.Start))
	assert.False(t, inner.Normalize().Contains(outer.End))
	assert.True(t, HasOverlap(outer, []DateRange{inner}))
}

func TestHasOverlap_IgnoresTimeOfDay(t *testing.T) {
	existing := DateRange{
		Start: time.Date(2025, time.June, 10, 15, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.June, 15, 11, 0, 0, 0, time.UTC),
	}
	proposed := DateRange{
		Start: time.Date(2025, time.June, 15, 20, 30, 0, 0, time.UTC),
		End:   time.Date(2025, time.June, 18, 9, 0, 0, 0, time.UTC),
	}

	assert.True(t, HasOverlap(proposed, []DateRange{existing}))
}

func TestDateRange_Nights(t *testing.T) {
	assert.Equal(t, 5, rng(time.June, 10, time.June, 15).Nights())
	assert.Equal(t, 3, rng(time.February, 27, time.March, 2).Nights())
}

func TestDateRange_IsValid(t *testing.T) {
	assert.True(t, rng(time.June, 10, time.June, 11).IsValid())
	assert.False(t, rng(time.June, 10, time.June, 10).IsValid())
	assert.False(t, rng(time.June, 11, time.June, 10).IsValid())
	assert.False(t, DateRange{End: day(time.June, 10)}.IsValid())
}

func TestEndOfDay(t *testing.T) {
	ts := time.Date(2025, time.June, 10, 8, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.June, 10, 23, 59, 59, 999999999, time.UTC), EndOfDay(ts))
	assert.Equal(t, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), StartOfDay(ts))
}

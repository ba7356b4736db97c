package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPantryID(t *testing.T) {
	eventDate := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		location string
		want     string
	}{
		{"市役所本庁舎", "25.04.12.市役所本庁"},
		{"ニコット", "25.04.12.ニコット"},
		{"Nicott 大和田 2F", "25.04.12.大和田"},
		{"センター", "25.04.12.センター"},
		{"ｾﾝﾀｰ", "25.04.12.ｾﾝﾀｰ"},
		{"ﾊﾞｽ停前", "25.04.12.ﾊﾞｽ停前"},
		{"佐々木会館", "25.04.12.佐木会館"},
		{"", "25.04.12."},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			assert.Equal(t, tt.want, PantryID(eventDate, tt.location))
		})
	}
}

func TestPantry_IsReservable(t *testing.T) {
	start := time.Date(2025, 3, 29, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)
	p := &Pantry{ReservationStart: start, ReservationEnd: end}

	assert.True(t, p.IsReservable(start))
	assert.True(t, p.IsReservable(end))
	assert.False(t, p.IsReservable(start.Add(-time.Second)))
	assert.False(t, p.IsReservable(end.Add(time.Second)))
}

func TestPantry_HasCapacity(t *testing.T) {
	assert.True(t, (&Pantry{CapacityTotal: 0, ReservationCount: 100}).HasCapacity())
	assert.True(t, (&Pantry{CapacityTotal: 2, ReservationCount: 1}).HasCapacity())
	assert.False(t, (&Pantry{CapacityTotal: 2, ReservationCount: 2}).HasCapacity())
}

func TestDatePrefix(t *testing.T) {
	assert.Equal(t, "250412", DatePrefix(time.Date(2025, 4, 12, 23, 0, 0, 0, time.UTC)))
}

func TestResolveDonator(t *testing.T) {
	assert.Equal(t, "山田商店", ResolveDonator(DonatorOther, "山田商店"))
	assert.Equal(t, DonatorOther, ResolveDonator(DonatorOther, ""))
	assert.Equal(t, "個人", ResolveDonator("個人", "山田商店"))
}

func TestAdminStatus_Toggled(t *testing.T) {
	assert.Equal(t, AdminStatusInactive, AdminStatusActive.Toggled())
	assert.Equal(t, AdminStatusActive, AdminStatusInactive.Toggled())
}

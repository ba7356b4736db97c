package qrcode

import (
	"encoding/json"
	"testing"

	"foodbank/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, NewQRCodeService(tt.size, tt.errorCorrectionLevel))
		})
	}
}

func TestQRCodeService_GenerateReservationQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	qrBytes, err := svc.GenerateReservationQR("250412001", "25.04.12.市役所本庁")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParseReservationQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	valid, err := json.Marshal(service.ReservationTicket{
		ReservationID: "250412001",
		PantryID:      "25.04.12.市役所本庁",
		Type:          ticketType,
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{name: "valid ticket", payload: string(valid)},
		{name: "wrong type", payload: `{"reservation_id":"250412001","type":"subscription"}`, wantErr: true},
		{name: "missing id", payload: `{"type":"pantry_checkin"}`, wantErr: true},
		{name: "not json", payload: "250412001", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket, err := svc.ParseReservationQR(tt.payload)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "250412001", ticket.ReservationID)
			assert.Equal(t, "25.04.12.市役所本庁", ticket.PantryID)
		})
	}
}

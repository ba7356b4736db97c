package qrcode

import (
	"encoding/json"
	"fmt"

	"foodbank/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	ticketType  = "pantry_checkin"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateReservationQR renders the check-in ticket of a reservation as PNG.
func (s *qrcodeService) GenerateReservationQR(reservationID, pantryID string) ([]byte, error) {
	jsonData, err := json.Marshal(service.ReservationTicket{
		ReservationID: reservationID,
		PantryID:      pantryID,
		Type:          ticketType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseReservationQR decodes a scanned ticket payload.
func (s *qrcodeService) ParseReservationQR(qrData string) (*service.ReservationTicket, error) {
	var ticket service.ReservationTicket
	if err := json.Unmarshal([]byte(qrData), &ticket); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if ticket.Type != ticketType {
		return nil, fmt.Errorf("invalid QR code type: %s", ticket.Type)
	}

	if ticket.ReservationID == "" {
		return nil, fmt.Errorf("QR code has no reservation id")
	}

	return &ticket, nil
}

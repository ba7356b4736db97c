package service

// ReservationTicket is the payload encoded into a check-in QR code.
type ReservationTicket struct {
	ReservationID string `json:"reservation_id"`
	PantryID      string `json:"pantry_id"`
	Type          string `json:"type"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateReservationQR renders a PNG check-in code for a reservation
	GenerateReservationQR(reservationID, pantryID string) ([]byte, error)

	// ParseReservationQR decodes the scanned payload of a check-in code
	ParseReservationQR(qrData string) (*ReservationTicket, error)
}

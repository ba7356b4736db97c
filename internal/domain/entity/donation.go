package entity

import "time"

const (
	// DonatorOther is the form choice that defers to the free-text donor name.
	DonatorOther = "その他"

	TweetYes = "する"
	TweetNo  = "しない"
)

// Donation is one food-drive intake record.
type Donation struct {
	ID          string    `json:"record_id"`
	Donator     string    `json:"donator"`
	WeightKg    float64   `json:"weight"`
	Contents    string    `json:"contents"`
	Tweet       string    `json:"tweet"`
	Memo        string    `json:"memo"`
	PhotoRef    string    `json:"photo_ref,omitempty"`
	InputUser   string    `json:"input_user"`
	InputUserID string    `json:"input_user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ResolveDonator returns the donor name to store: the free-text name when
// the "other" option was chosen and one was supplied.
func ResolveDonator(donator, otherDonator string) string {
	if donator == DonatorOther && otherDonator != "" {
		return otherDonator
	}

	return donator
}

package usecase

import "context"

// ImportSkip explains why one input row was not imported.
type ImportSkip struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportResult summarizes a bulk import.
type ImportResult struct {
	Imported        int           `json:"imported"`
	CreatedPantries []string      `json:"createdPantries"`
	Skipped         []*ImportSkip `json:"skipped"`
}

// ImportUsecase bulk-loads raw form responses.
type ImportUsecase interface {
	// ImportResponses reads CSV rows of timestamp, event text, kana name,
	// address, email and household text, creating missing pantries on the way
	ImportResponses(ctx context.Context, csvText string) (*ImportResult, error)
}

package normalize

import "foodbank/config"

// NewFromConfig loads the table named by normalizer.tablePath, or the
// embedded one when the path is empty.
func NewFromConfig(cfg *config.Config) (*Normalizer, error) {
	path := ""
	if cfg.Normalizer != nil {
		path = cfg.Normalizer.TablePath
	}

	table, err := LoadTable(path)
	if err != nil {
		return nil, err
	}

	return New(table), nil
}

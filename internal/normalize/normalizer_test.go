package normalize

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()

	table, err := LoadTable("")
	require.NoError(t, err)

	return New(table)
}

func TestNormalizeAddress(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"detailed address with block number", "市川市大和田3丁目23-10", "市川大和田"},
		{"full-width digit alias", "市川市真間２丁目", "市川真間"},
		{"exact alias", "真間", "市川真間"},
		{"narrower pattern wins over contained name", "市川市東大和田1-2-3", "市川東大和田"},
		{"south yawata before yawata", "市川市南八幡4丁目", "市川南八幡"},
		{"yawata", "市川市八幡2-15-1", "市川八幡"},
		{"bare city maps to ichikawa neighbourhood", "市川", "市川市川"},
		{"city marker fallback", "市川市新田5丁目", "市川市内"},
		{"whitespace is stripped", " 市川市　曽谷 ", "市川曽谷"},
		{"trailing phone number removed", "市川市菅野09012345678", "市川菅野"},
		{"hyphen variants unified", "国府台１ー２", "市川国府台"},
		{"long unmatched input truncated", "東京都江戸川区西葛西一丁目", "東京都江戸川区西葛西..."},
		{"short unmatched input kept", "船橋市本町", "船橋市本町"},
		{"empty", "", "不明"},
		{"only spaces", "   ", "不明"},
		{"only phone number", "0471234567", "不明"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.NormalizeAddress(tt.raw))
		})
	}
}

func TestNormalizeAddress_Idempotent(t *testing.T) {
	n := newTestNormalizer(t)

	samples := []string{
		"市川市大和田3丁目23-10",
		"市川市真間２丁目",
		"市川市東大和田",
		"市川市南八幡",
		"市川",
		"市川市市川1-1",
		"市川市新田5丁目",
		"東京都江戸川区西葛西一丁目",
		"千葉県船橋市本町1-2-3 0471234567",
		"船橋市本町",
		"1234567890123456789012345",
		"ｲﾁｶﾜｼ",
		"",
		"不明",
		"市川市内",
	}

	for _, sample := range samples {
		t.Run(sample, func(t *testing.T) {
			once := n.NormalizeAddress(sample)
			assert.Equal(t, once, n.NormalizeAddress(once))
		})
	}
}

func TestNormalizeAddress_CanonicalNamesAreFixedPoints(t *testing.T) {
	n := newTestNormalizer(t)

	for _, rule := range n.table.Patterns {
		t.Run(rule.Area, func(t *testing.T) {
			assert.Equal(t, rule.Area, n.NormalizeAddress(rule.Area))
		})
	}
}

func TestExtractLocation(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []struct {
		raw  string
		want string
	}{
		{"4月12日（土）市役所", "市役所本庁舎"},
		{"大和田ニコット", "ニコット"},
		{"", "不明"},
		{"  公民館  ", "公民館"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, n.ExtractLocation(tt.raw))
		})
	}
}

func TestLoadTable_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	doc := `
aliases:
  本町: 船橋本町
patterns:
  - pattern: 西船
    area: 船橋西船
cityMarker: 船橋
cityBucket: 船橋市内
maxLength: 8
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	table, err := LoadTable(path)
	require.NoError(t, err)

	n := New(table)
	assert.Equal(t, "船橋本町", n.NormalizeAddress("本町"))
	assert.Equal(t, "船橋西船", n.NormalizeAddress("船橋市西船4丁目"))
	assert.Equal(t, "船橋市内", n.NormalizeAddress("船橋市宮本"))
	assert.Equal(t, "不明", n.NormalizeAddress(""))
}

func TestLoadTable_InvalidPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte("patterns:\n  - pattern: \"(\"\n    area: x\n"), 0o600))

	_, err := LoadTable(path)
	require.Error(t, err)
}

func TestNormalizeKanaName(t *testing.T) {
	assert.Equal(t, "ヤマダ タロウ", NormalizeKanaName("　ヤマダ　　タロウ "))
	assert.Equal(t, "", NormalizeKanaName("   "))
}

func TestParseHouseholdSize(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"4名以上", 4},
		{"2〜3名", 2},
		{"１名", 1},
		{"３人", 3},
		{"0", 1},
		{"おおぜい", 1},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseHouseholdSize(tt.raw))
		})
	}
}

func TestParseEventDate(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   time.Time
		wantOK bool
	}{
		{"with weekday and venue", "4月12日（土）市役所", time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC), true},
		{"full-width digits", "１２月７日", time.Date(2025, 12, 7, 0, 0, 0, 0, time.UTC), true},
		{"no date", "市役所", time.Time{}, false},
		{"impossible day", "2月30日", time.Time{}, false},
		{"month out of range", "13月1日", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseEventDate(tt.raw, 2025, time.UTC)
			assert.Equal(t, tt.wantOK, ok)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		wantOK bool
	}{
		{"3.5kg", 3.5, true},
		{"１，２００", 1200, true},
		{"12", 12, true},
		{"重い", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseWeight(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseCount(t *testing.T) {
	got, ok := ParseCount("大人２人")
	assert.True(t, ok)
	assert.Equal(t, 2, got)

	_, ok = ParseCount("なし")
	assert.False(t, ok)
}

func TestEventVenue(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"4月12日（土）市役所", "市役所"},
		{"４月１９日(土) 大和田", "大和田"},
		{"5月3日ニコット", "ニコット"},
		{"本八幡", "本八幡"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, EventVenue(tt.raw))
		})
	}
}

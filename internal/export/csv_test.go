package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		rows   [][]string
		want   string
	}{
		{
			name:   "header only",
			header: []string{"timestamp", "level"},
			want:   "timestamp,level\n",
		},
		{
			name:   "quotes are doubled",
			header: []string{"message"},
			rows:   [][]string{{`He said "hi"`}},
			want:   "message\n\"He said \"\"hi\"\"\"\n",
		},
		{
			name:   "comma and newline are quoted",
			header: []string{"a", "b"},
			rows:   [][]string{{"x,y", "line1\nline2"}, {"plain", ""}},
			want:   "a,b\n\"x,y\",\"line1\nline2\"\nplain,\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CSV(tt.header, tt.rows)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

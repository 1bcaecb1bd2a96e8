package report

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vignesh-tw/migration-analysis/internal/insights"
)

var insight = insights.Insight{
	BaseJob:            "cmake_build",
	MigrationJob:       "bazel_build",
	WindowStart:        "start",
	WindowEnd:          "end",
	MinDifferential:    0,
	MeanDifferential:   -1,
	MedianDifferential: -1.5,
	MaxDifferential:    2,
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		assert.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFormat("xml")
	assert.EqualError(t, err, `unknown output format "xml". Options: text, table, json, yaml`)
}

func TestWrite(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name     string
		format   Format
		want     string
		contains []string
		wantErr  bool
	}{
		{
			name:   "text",
			format: TextFormat,
			want:   insight.String(),
		},
		{
			name:   "json",
			format: JSONFormat,
			want:   `{"base_job":"cmake_build","migration_job":"bazel_build","window_start":"start","window_end":"end","min_differential":0,"mean_differential":-1,"median_differential":-1.5,"max_differential":2}` + "\n",
		},
		{
			name:   "yaml",
			format: YAMLFormat,
			want: `base_job: cmake_build
migration_job: bazel_build
window_start: start
window_end: end
min_differential: 0
mean_differential: -1
median_differential: -1.5
max_differential: 2
`,
		},
		{
			name:   "table",
			format: TableFormat,
			contains: []string{
				"Duration",
				"minimum",
				"-1.5",
				"+2",
			},
		},
		{
			name:    "unknown",
			format:  Format("xml"),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Write(&buf, insight, tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.want != "" {
				assert.Equal(t, tt.want, buf.String())
			}
			for _, c := range tt.contains {
				assert.Contains(t, buf.String(), c)
			}
		})
	}
}

func Test_differential(t *testing.T) {
	color.NoColor = true

	assert.Equal(t, "0", differential(0))
	assert.Equal(t, "-1", differential(-1))
	assert.Equal(t, "+3.5", differential(3.5))
}

func Test_tableStyle(t *testing.T) {
	s := tableStyle()

	assert.Equal(t, table.StyleLight.Box.MiddleHorizontal, s.Box.MiddleHorizontal)
	assert.Equal(t, "  ", s.Box.PaddingLeft)
	assert.False(t, s.Options.DrawBorder)
	assert.False(t, s.Options.SeparateColumns)
	assert.True(t, s.Options.SeparateHeader)
	assert.Equal(t, text.FormatDefault, s.Format.Header)

	// The shared style stays untouched.
	assert.Equal(t, " ", table.StyleLight.Box.PaddingLeft)
}

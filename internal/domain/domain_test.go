package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalBaseName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024:03:15 14:30:22", want: "2024-03-15-14-30-22"},
		{in: "1999:12:31 23:59:59", want: "1999-12-31-23-59-59"},
		{in: "2024-03-15 14:30:22", wantErr: true},
		{in: "2024:03:15", wantErr: true},
		{in: "0000:00:00 00:00:00", wantErr: true},
		{in: "2024:13:01 00:00:00", wantErr: true},
		{in: "", wantErr: true},
		{in: "2024:03:15 14:30:22 extra", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := CanonicalBaseName(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnparseableDate))
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNameRegistryClaimsInOrder(t *testing.T) {
	r := NewNameRegistry()

	assert.Equal(t, "2024-03-15-14-30-22.jpeg", r.Claim("2024-03-15-14-30-22"))
	assert.Equal(t, "2024-03-15-14-30-22_1.jpeg", r.Claim("2024-03-15-14-30-22"))
	assert.Equal(t, "2020-01-01-00-00-00.jpeg", r.Claim("2020-01-01-00-00-00"))
	assert.Equal(t, "2024-03-15-14-30-22_2.jpeg", r.Claim("2024-03-15-14-30-22"))
	assert.Equal(t, 2, r.Len())
}

func TestNameRegistryZeroValue(t *testing.T) {
	var r NameRegistry
	assert.Equal(t, "a.jpeg", r.Claim("a"))
	assert.Equal(t, "a_1.jpeg", r.Claim("a"))
}

func TestCopyCandidateIsCaseExact(t *testing.T) {
	for _, name := range []string{"a.jpg", "a.JPEG", "b.PNG", "c.heic", "d.HEIC", "dir/e.JPG"} {
		assert.True(t, IsCopyCandidate(name), name)
	}
	for _, name := range []string{"a.Jpg", "a.gif", "a", "a.jpg.txt", "a.Heic"} {
		assert.False(t, IsCopyCandidate(name), name)
	}
}

func TestStatsCandidateIgnoresCase(t *testing.T) {
	assert.True(t, IsStatsCandidate("a.Jpg"))
	assert.True(t, IsStatsCandidate("a.HeIc"))
	assert.False(t, IsStatsCandidate("a.gif"))
}

func TestClassifySquareIsLandscape(t *testing.T) {
	assert.Equal(t, Landscape, Classify(100, 100))
	assert.Equal(t, Landscape, Classify(200, 100))
	assert.Equal(t, Portrait, Classify(100, 101))
}

func TestOrientationShares(t *testing.T) {
	var c OrientationCounts
	_, _, ok := c.Shares()
	assert.False(t, ok)

	c.Add(Portrait)
	c.Add(Landscape)
	c.Add(Landscape)
	c.Add(Orientation("diagonal"))

	assert.Equal(t, OrientationCounts{Portrait: 1, Landscape: 2, Total: 3}, c)

	p, l, ok := c.Shares()
	require.True(t, ok)
	assert.Equal(t, "33.3", fmt.Sprintf("%.1f", p))
	assert.Equal(t, "66.7", fmt.Sprintf("%.1f", l))
	assert.InDelta(t, 100.0, p+l, 0.0001)
}

func TestCopyReportRecord(t *testing.T) {
	var r CopyReport
	r.Record(FileResult{Status: StatusCopied})
	r.Record(FileResult{Status: StatusNoDate})
	r.Record(FileResult{Status: StatusBadDate})
	r.Record(FileResult{Status: StatusNoExif})

	assert.Equal(t, 1, r.Copied)
	assert.Equal(t, 3, r.Skipped)
}

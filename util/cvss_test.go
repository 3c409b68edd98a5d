package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulnview/vulnview-backend/model"
)

func TestParseVector(t *testing.T) {
	tests := []struct {
		name         string
		vector       string
		wantVersion  string
		wantScore    float64
		wantScored   bool
		wantSeverity string
	}{
		{
			name:         "network low-complexity full impact",
			vector:       "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
			wantVersion:  "3.1",
			wantScore:    9.8,
			wantScored:   true,
			wantSeverity: model.SeverityCritical,
		},
		{
			name:         "network low-complexity single high impact",
			vector:       "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:N/A:N",
			wantVersion:  "3.1",
			wantScore:    7.5,
			wantScored:   true,
			wantSeverity: model.SeverityHigh,
		},
		{
			name:         "two high impacts still network-trivial",
			vector:       "CVSS:3.0/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:N",
			wantVersion:  "3.0",
			wantScore:    7.5,
			wantScored:   true,
			wantSeverity: model.SeverityHigh,
		},
		{
			name:         "local attack vector",
			vector:       "CVSS:3.1/AV:L/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
			wantVersion:  "3.1",
			wantScore:    5.0,
			wantScored:   true,
			wantSeverity: model.SeverityMedium,
		},
		{
			name:         "network but privileged",
			vector:       "CVSS:3.1/AV:N/AC:L/PR:H/UI:N/S:U/C:H/I:H/A:H",
			wantVersion:  "3.1",
			wantScore:    5.0,
			wantScored:   true,
			wantSeverity: model.SeverityMedium,
		},
		{
			name:         "no high impact at all",
			vector:       "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:L/I:L/A:N",
			wantVersion:  "3.1",
			wantScore:    5.0,
			wantScored:   true,
			wantSeverity: model.SeverityMedium,
		},
		{
			name:         "v4 vectors score flat",
			vector:       "CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:N/SI:N/SA:N",
			wantVersion:  "4.0",
			wantScore:    7.0,
			wantScored:   true,
			wantSeverity: model.SeverityHigh,
		},
		{
			name:       "unknown prefix stays unscored",
			vector:     "AV:N/AC:L/Au:N/C:P/I:P/A:P",
			wantScored: false,
		},
		{
			name:       "garbled vector stays unscored",
			vector:     "CVSS:9.9/whatever",
			wantScored: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := ParseVector(tt.vector)
			assert.Equal(t, tt.vector, entry.VectorString)

			if !tt.wantScored {
				assert.Nil(t, entry.BaseScore)
				assert.Empty(t, entry.BaseSeverity)
				return
			}
			require.NotNil(t, entry.BaseScore)
			assert.Equal(t, tt.wantScore, *entry.BaseScore)
			assert.Equal(t, tt.wantSeverity, entry.BaseSeverity)
			assert.Equal(t, tt.wantVersion, entry.Version)
		})
	}
}

func TestParseVectorEmpty(t *testing.T) {
	entry := ParseVector("")
	assert.Empty(t, entry.VectorString)
	assert.Nil(t, entry.BaseScore)
}

func TestParseVectorMalformedSegments(t *testing.T) {
	// Segments without a key or value are skipped, not fatal.
	entry := ParseVector("CVSS:3.1/AV:N//AC:L/:X/PR:/PR:N/C:H/I:H/A:H")
	require.NotNil(t, entry.BaseScore)
	assert.Equal(t, 9.8, *entry.BaseScore)
}

func TestGetSeverityRating(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{10.0, model.SeverityCritical},
		{9.8, model.SeverityCritical},
		{9.0, model.SeverityCritical},
		{8.9, model.SeverityHigh},
		{7.5, model.SeverityHigh},
		{7.0, model.SeverityHigh},
		{6.9, model.SeverityMedium},
		{5.0, model.SeverityMedium},
		{4.0, model.SeverityMedium},
		{3.9, model.SeverityLow},
		{0.0, model.SeverityLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetSeverityRating(tt.score), "score %.1f", tt.score)
	}
}

func TestSelectDisplayEntry(t *testing.T) {
	score := func(v float64) *float64 { return &v }

	t.Run("empty yields nil", func(t *testing.T) {
		assert.Nil(t, SelectDisplayEntry(nil))
		assert.Nil(t, SelectDisplayEntry([]model.CvssEntry{}))
	})

	t.Run("nvd source wins regardless of position or score", func(t *testing.T) {
		entries := []model.CvssEntry{
			{Source: "secalert@redhat.com", BaseScore: score(9.8)},
			{Source: "nvd", BaseScore: score(5.0)},
		}
		got := SelectDisplayEntry(entries)
		require.NotNil(t, got)
		assert.Equal(t, "nvd", got.Source)
	})

	t.Run("first entry wins without an nvd source", func(t *testing.T) {
		entries := []model.CvssEntry{
			{Source: "OSV", BaseScore: score(5.0)},
			{Source: "database_specific", BaseScore: score(9.8)},
		}
		got := SelectDisplayEntry(entries)
		require.NotNil(t, got)
		assert.Equal(t, "OSV", got.Source)
	})
}

package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocator(t *testing.T) {
	tests := []struct {
		name         string
		locator      string
		wantPlaylist string
		wantChannel  string
	}{
		{"playlist url", "https://www.youtube.com/playlist?list=PLabc123", "PLabc123", ""},
		{"watch url with list", "https://www.youtube.com/watch?v=xyz&list=PLdef456", "PLdef456", ""},
		{"channel url", "https://www.youtube.com/channel/UCabcdef", "", "UCabcdef"},
		{"bare playlist id", "PLabc123", "PLabc123", ""},
		{"bare uploads playlist id", "UUabc123", "UUabc123", ""},
		{"bare channel id", "UCabcdef", "", "UCabcdef"},
		{"handle url resolves to neither", "https://www.youtube.com/@somehandle", "", ""},
		{"empty", "", "", ""},
		{"garbage", "not a locator", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			playlist, channel := parseLocator(tt.locator)
			assert.Equal(t, tt.wantPlaylist, playlist)
			assert.Equal(t, tt.wantChannel, channel)
		})
	}
}

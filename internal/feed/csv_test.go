package feed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airsight/airsight/internal/feed"
)

func TestDecodeTable(t *testing.T) {
	text := "timestamp,temperature,humidity\n" +
		"\"10:00, Jan 5\",-10,45\n" +
		"\"11:00, Jan 5\",-9,44\n"

	header, rows, err := feed.DecodeTable(text)
	require.NoError(t, err)
	assert.Equal(t, []string{"timestamp", "temperature", "humidity"}, header)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"10:00, Jan 5", "-10", "45"}, rows[0])
}

func TestDecodeTable_RaggedRowsKept(t *testing.T) {
	text := "timestamp,temperature\n2026-01-05 10:00,-10\n2026-01-05 11:00\n"

	header, rows, err := feed.DecodeTable(text)
	require.NoError(t, err)
	assert.Len(t, header, 2)
	// Ragged widths are tolerated; missing cells read as empty downstream.
	require.Len(t, rows, 2)
	assert.Len(t, rows[1], 1)
}

func TestDecodeTable_StripsBOM(t *testing.T) {
	header, _, err := feed.DecodeTable("\uFEFFtimestamp,temperature\n")
	require.NoError(t, err)
	assert.Equal(t, "timestamp", header[0])
}

func TestDecodeTable_Empty(t *testing.T) {
	_, _, err := feed.DecodeTable("")
	assert.ErrorIs(t, err, feed.ErrEmptyTable)
}

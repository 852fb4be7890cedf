package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_DrainOrder(t *testing.T) {
	f := NewFeed(10)
	f.Success("Booking cancelled")
	f.Error("Failed to delete booking")
	f.Info("Proceeding to checkout...")

	got := f.Drain()
	require.Len(t, got, 3)
	assert.Equal(t, LevelSuccess, got[0].Level)
	assert.Equal(t, "Failed to delete booking", got[1].Message)
	assert.Equal(t, LevelInfo, got[2].Level)
	assert.NotEmpty(t, got[0].ID)

	assert.Empty(t, f.Drain())
}

func TestFeed_Limit(t *testing.T) {
	f := NewFeed(2)
	f.Info("one")
	f.Info("two")
	f.Info("three")

	got := f.Peek()
	require.Len(t, got, 2)
	assert.Equal(t, "two", got[0].Message)
	assert.Equal(t, "three", got[1].Message)
	assert.Len(t, f.Peek(), 2)
}

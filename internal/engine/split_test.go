package engine

import (
	"testing"

	"github.com/piwi3910/cutstock/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitOverlengthPartsBasic(t *testing.T) {
	// seg1 takes the full stock length; the carve reserves jointAllowance
	// (50) out of that segment's budget for the splice, so seg2 is the
	// true remainder (2000) plus that reserved allowance back (50) plus
	// its own joint allowance (50) = 2100.
	parts := []model.Part{model.NewPart("long", 5000, 1, "")}
	placeable, notPlaced, diags := splitOverlengthParts(parts, 3000, 50, 2)
	require.Empty(t, notPlaced)
	require.Len(t, placeable, 2)
	assert.Equal(t, "long_d1", placeable[0].ID)
	assert.Equal(t, 3000.0, placeable[0].Length)
	assert.Equal(t, "long_d2", placeable[1].ID)
	assert.Equal(t, 2100.0, placeable[1].Length)
	assert.Empty(t, diags)
}

func TestSplitOverlengthPartsClampsAllowance(t *testing.T) {
	// After seg1 (3000, reserving 200 of joint allowance), the remainder
	// (2900) plus the final segment's own allowance (200) would total
	// 3100 — over maxStockLength (3000) — so the allowance is dropped
	// silently on that final segment and a diagnostic recorded.
	parts := []model.Part{model.NewPart("long", 5700, 1, "")}
	placeable, notPlaced, diags := splitOverlengthParts(parts, 3000, 200, 2)
	require.Empty(t, notPlaced)
	require.Len(t, placeable, 2)
	assert.Equal(t, 3000.0, placeable[0].Length)
	assert.Equal(t, 2900.0, placeable[1].Length)
	require.NotEmpty(t, diags)
}

func TestSplitOverlengthPartsMultiSegment(t *testing.T) {
	// A part more than 2x the longest stock length still splits cleanly
	// when maxSplitParts allows enough segments: 9100 against 3000 with
	// K=4 carves into three full 3000 segments plus a 300 final segment
	// (250 remainder + 50 joint allowance).
	parts := []model.Part{model.NewPart("huge", 9100, 1, "")}
	placeable, notPlaced, diags := splitOverlengthParts(parts, 3000, 50, 4)
	require.Empty(t, notPlaced)
	require.Len(t, placeable, 4)
	assert.Equal(t, "huge_d1", placeable[0].ID)
	assert.Equal(t, 3000.0, placeable[0].Length)
	assert.Equal(t, 3000.0, placeable[1].Length)
	assert.Equal(t, 3000.0, placeable[2].Length)
	assert.Equal(t, "huge_d4", placeable[3].ID)
	assert.Equal(t, 300.0, placeable[3].Length)
	assert.Empty(t, diags)
}

func TestSplitOverlengthPartsDisabled(t *testing.T) {
	parts := []model.Part{model.NewPart("long", 5000, 1, "")}
	placeable, notPlaced, diags := splitOverlengthParts(parts, 3000, 50, 1)
	assert.Empty(t, placeable)
	require.Len(t, notPlaced, 1)
	assert.Equal(t, "long", notPlaced[0].ID)
	require.NotEmpty(t, diags)
}

func TestSplitOverlengthPartsPassThrough(t *testing.T) {
	parts := []model.Part{model.NewPart("short", 1500, 1, "")}
	placeable, notPlaced, _ := splitOverlengthParts(parts, 3000, 50, 2)
	require.Len(t, placeable, 1)
	assert.Equal(t, "short", placeable[0].ID)
	assert.Empty(t, notPlaced)
}

func TestSplitOverlengthPartsStillTooLongAfterSplit(t *testing.T) {
	// Remainder alone (6100) still exceeds maxStockLength (3000): the part
	// has no two-segment split that fits, even with the allowance dropped.
	parts := []model.Part{model.NewPart("huge", 9100, 1, "")}
	placeable, notPlaced, _ := splitOverlengthParts(parts, 3000, 0, 2)
	assert.Empty(t, placeable)
	require.Len(t, notPlaced, 1)
}

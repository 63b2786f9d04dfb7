package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeAllocation struct {
	width, height int
}

func (f fakeAllocation) GetAllocatedWidth() int  { return f.width }
func (f fakeAllocation) GetAllocatedHeight() int { return f.height }

func TestCalculateModalDimensions(t *testing.T) {
	cfg := ModalSizeConfig{
		WidthPct:       0.5,
		MaxWidth:       500,
		TopMarginPct:   0.2,
		FallbackWidth:  600,
		FallbackHeight: 400,
	}

	tests := []struct {
		name       string
		parent     Allocation
		wantWidth  int
		wantMargin int
	}{
		{"nil parent uses fallback", nil, 300, 80},
		{"unallocated parent uses fallback", fakeAllocation{0, 0}, 300, 80},
		{"tiny parent uses fallback", fakeAllocation{99, 99}, 300, 80},
		{"allocated parent", fakeAllocation{800, 1000}, 400, 200},
		{"width capped", fakeAllocation{2000, 1000}, 500, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			width, margin := CalculateModalDimensions(tt.parent, cfg)
			assert.Equal(t, tt.wantWidth, width)
			assert.Equal(t, tt.wantMargin, margin)
		})
	}
}

package output

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.TerminalColor
	}{
		{
			name:   "created returns green",
			status: StatusCreated,
			wantFG: ColorGreen,
		},
		{
			name:     "failed returns bold red",
			status:   StatusFailed,
			wantBold: true,
			wantFG:   ColorBoldRed,
		},
		{
			name:   "unknown returns default unstyled",
			status: "unknown-value",
			wantFG: lipgloss.NoColor{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := statusStyle(tt.status)
			assert.Equal(t, tt.wantBold, style.GetBold())
			assert.Equal(t, tt.wantFG, style.GetForeground())
		})
	}
}

func TestFormatStatus_ContainsText(t *testing.T) {
	assert.Contains(t, FormatStatus(StatusCreated), "created")
	assert.Contains(t, FormatStatus(StatusFailed), "failed")
}

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("done")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "done")
}

func TestGetStyles_NotNil(t *testing.T) {
	s := GetStyles()
	assert.NotNil(t, s)
	assert.Equal(t, "x", stripANSI(s.Muted.Render("x")))
}

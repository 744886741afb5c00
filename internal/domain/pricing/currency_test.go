package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "zero", amount: 0, want: "Rp0"},
		{name: "thousands", amount: 75000, want: "Rp75.000"},
		{name: "millions", amount: 1400000, want: "Rp1.400.000"},
		{name: "rounds to whole rupiah", amount: 805000.4, want: "Rp805.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRupiah(tt.amount))
		})
	}
}

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrder(t *testing.T) {
	tests := []struct {
		raw string
		want Order
	}{
		{raw: "", want: nil},
		{raw: "name", want: Order{{Field: "name"}}},
		{raw: "-created_at", want: Order{{Field: "created_at", Desc: true}}},
		{raw: "name, -id,+city", want: Order{{Field: "name"}, {Field: "id", Desc: true}, {Field: "city"}}},
		{raw: ",,-,", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOrder(tt.raw))
		})
	}
}

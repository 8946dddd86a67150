package fetch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalar_String(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"integer", `82`, "82"},
		{"float", `4.2`, "4.2"},
		{"string", `"P-1001"`, "P-1001"},
		{"null", `null`, ""},
		{"empty", ``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Scalar(tt.raw).String())
		})
	}
}

func TestScalar_Builders(t *testing.T) {
	assert.Equal(t, "82", Number(82).String())
	assert.Equal(t, "ER", Text("ER").String())
}

func TestDataset_RoundTripKeepsStyle(t *testing.T) {
	in := `{"label":"Bed Availability","data":[50,50],"fill":true,"borderDash":[5,5]}`

	var d Dataset
	require.NoError(t, json.Unmarshal([]byte(in), &d))
	assert.Equal(t, "Bed Availability", d.Label)
	assert.Equal(t, []float64{50, 50}, d.Data)
	assert.Len(t, d.Style, 2)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

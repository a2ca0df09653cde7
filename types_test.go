package magiceden

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytes_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Bytes
		wantErr bool
	}{
		{"numbers", `[0,1,127,255]`, Bytes{0, 1, 127, 255}, false},
		{"empty", `[]`, Bytes{}, false},
		{"null", `null`, nil, false},
		{"base64", `"AQL/"`, Bytes{1, 2, 255}, false},
		{"out of range", `[256]`, nil, true},
		{"negative", `[-1]`, nil, true},
		{"not bytes", `{"a":1}`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Bytes
			err := json.Unmarshal([]byte(tt.input), &b)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b)
		})
	}
}

func TestBytes_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Tx{Data: Bytes{1, 2, 255}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[1,2,255]}`, string(data))

	data, err = json.Marshal(Tx{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":null}`, string(data))
}

func TestInstructionResponse_Decode(t *testing.T) {
	var resp InstructionResponse
	require.NoError(t, json.Unmarshal([]byte(instructionJSON), &resp))
	assert.Equal(t, "Buffer", resp.Tx.Type)
	assert.Equal(t, Bytes{1, 2, 255}, resp.Tx.Data)
	assert.Equal(t, Bytes{}, resp.TxSigned.Data)
}

func TestAttributeFilter_EncodeValues(t *testing.T) {
	v := url.Values{}
	require.NoError(t, AttributeFilter{
		{{TraitType: "eyes", Value: "laser"}},
		{{TraitType: "hat", Value: "cap"}, {TraitType: "hat", Value: "crown"}},
	}.EncodeValues("attributes", &v))
	assert.JSONEq(t,
		`[[{"traitType":"eyes","value":"laser"}],[{"traitType":"hat","value":"cap"},{"traitType":"hat","value":"crown"}]]`,
		v.Get("attributes"))

	empty := url.Values{}
	require.NoError(t, AttributeFilter(nil).EncodeValues("attributes", &empty))
	assert.Empty(t, empty)
}

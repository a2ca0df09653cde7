package params

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magiceden-go/client-go/internal/apierrors"
)

type filters []string

func (f filters) EncodeValues(key string, v *url.Values) error {
	data, err := json.Marshal([]string(f))
	if err != nil {
		return err
	}
	v.Set(key, string(data))
	return nil
}

type listRequest struct {
	Offset    *int    `url:"offset,omitempty" validate:"omitempty,min=0"`
	Limit     *int    `url:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	Sort      string  `url:"sort,omitempty" validate:"omitempty,oneof=listPrice updatedAt"`
	Owner     string  `url:"owner,omitempty" validate:"required_without=Symbol"`
	Symbol    string  `url:"collectionSymbol,omitempty"`
	MinPrice  float64 `url:"minPrice,omitempty" validate:"gte=0"`
	Filters   filters `url:"attributes,omitempty"`
	Untouched string  `url:"-"`
}

func intPtr(i int) *int { return &i }

func TestEncode(t *testing.T) {
	values, err := Encode(listRequest{
		Offset:   intPtr(0),
		Limit:    intPtr(20),
		Owner:    "wallet",
		MinPrice: 1.5,
		Filters:  filters{"a", "b"},
	})
	require.NoError(t, err)

	assert.Equal(t, "0", values.Get("offset"))
	assert.Equal(t, "20", values.Get("limit"))
	assert.Equal(t, "wallet", values.Get("owner"))
	assert.Equal(t, "1.5", values.Get("minPrice"))
	assert.Equal(t, `["a","b"]`, values.Get("attributes"))
	assert.NotContains(t, values, "sort")
	assert.NotContains(t, values, "collectionSymbol")
	assert.NotContains(t, values, "Untouched")
}

func TestEncode_Pointer(t *testing.T) {
	values, err := Encode(&listRequest{Symbol: "degods"})
	require.NoError(t, err)
	assert.Equal(t, url.Values{"collectionSymbol": {"degods"}}, values)
}

func TestEncode_Nil(t *testing.T) {
	values, err := Encode(nil)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestEncode_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		req    listRequest
		field  string
		reason string
	}{
		{"limit too large", listRequest{Owner: "w", Limit: intPtr(101)}, "limit", "must be at most 100"},
		{"limit too small", listRequest{Owner: "w", Limit: intPtr(0)}, "limit", "must be at least 1"},
		{"negative offset", listRequest{Owner: "w", Offset: intPtr(-1)}, "offset", "must be at least 0"},
		{"bad sort", listRequest{Owner: "w", Sort: "price"}, "sort", "must be one of: listPrice updatedAt"},
		{"missing owner and symbol", listRequest{}, "owner", "is required when Symbol is not set"},
		{"negative price", listRequest{Owner: "w", MinPrice: -1}, "minPrice", "must be at least 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.req)
			require.ErrorIs(t, err, apierrors.ErrInvalidArgument)

			var argErr *apierrors.InvalidArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.field, argErr.Field)
			assert.Equal(t, tt.reason, argErr.Reason)
		})
	}
}

func TestSegment(t *testing.T) {
	got, err := Segment("symbol", "okay_bears")
	require.NoError(t, err)
	assert.Equal(t, "okay_bears", got)

	got, err = Segment("symbol", "a/b c")
	require.NoError(t, err)
	assert.Equal(t, "a%2Fb%20c", got)

	_, err = Segment("symbol", " ")
	var argErr *apierrors.InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "symbol", argErr.Field)
}

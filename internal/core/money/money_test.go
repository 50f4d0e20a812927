package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDollars(t *testing.T) {
	assert.Equal(t, Cents(599), FromDollars(5.99))
	assert.Equal(t, Cents(5000), FromDollars(50))
	assert.Equal(t, Cents(0), FromDollars(0))
	// 19.99 is not exactly representable in binary; rounding must absorb it.
	assert.Equal(t, Cents(1999), FromDollars(19.99))
}

func TestCents_Mul(t *testing.T) {
	assert.Equal(t, Cents(4000), Cents(2000).Mul(2))
	assert.Equal(t, Cents(0), Cents(1599).Mul(0))
}

func TestCents_String(t *testing.T) {
	assert.Equal(t, "15.99", Cents(1599).String())
	assert.Equal(t, "0.00", Cents(0).String())
	assert.Equal(t, "50.01", Cents(5001).String())
}

func TestCents_JSON(t *testing.T) {
	data, err := json.Marshal(Cents(599))
	require.NoError(t, err)
	assert.Equal(t, "5.99", string(data))

	var c Cents
	require.NoError(t, json.Unmarshal([]byte("12.50"), &c))
	assert.Equal(t, Cents(1250), c)

	require.NoError(t, json.Unmarshal([]byte("null"), &c))
	assert.Equal(t, Cents(0), c)

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &c))
}

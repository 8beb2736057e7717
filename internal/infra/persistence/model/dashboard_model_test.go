package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONB_ValueAndScan(t *testing.T) {
	value, err := JSONB(`{"a":1}`).Value()
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, value)

	value, err = JSONB(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	var fromBytes JSONB
	src := []byte(`{"b":2}`)
	require.NoError(t, fromBytes.Scan(src))
	src[2] = 'x'
	assert.Equal(t, `{"b":2}`, string(fromBytes))

	var fromString JSONB
	require.NoError(t, fromString.Scan(`{"c":3}`))
	assert.Equal(t, `{"c":3}`, string(fromString))

	var fromNil JSONB
	require.NoError(t, fromNil.Scan(nil))
	assert.Nil(t, fromNil)

	assert.Error(t, fromNil.Scan(42))
}

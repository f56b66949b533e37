package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64ListScan(t *testing.T) {
	var l Int64List
	require.NoError(t, l.Scan([]byte(`[1,3,5]`)))
	assert.Equal(t, Int64List{1, 3, 5}, l)

	// some drivers hand back string instead of []byte
	var s Int64List
	require.NoError(t, s.Scan(`[7]`))
	assert.Equal(t, Int64List{7}, s)

	var n Int64List
	require.NoError(t, n.Scan(nil))
	assert.Equal(t, Int64List{}, n)
}

func TestInt64ListValue(t *testing.T) {
	v, err := Int64List{2, 4}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `[2,4]`, string(v.([]byte)))

	// empty stays a valid JSON array, never null
	v, err = Int64List{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalDistinguishesAbsentNullAndValue(t *testing.T) {
	type payload struct {
		Notes Optional[string] `json:"notes"`
	}

	var absent payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.Notes.Present)
	assert.Nil(t, absent.Notes.Ptr())

	var null payload
	require.NoError(t, json.Unmarshal([]byte(`{"notes":null}`), &null))
	assert.True(t, null.Notes.Present)
	assert.False(t, null.Notes.Valid)
	assert.Nil(t, null.Notes.Ptr())

	var value payload
	require.NoError(t, json.Unmarshal([]byte(`{"notes":"hello"}`), &value))
	assert.True(t, value.Notes.Present)
	assert.True(t, value.Notes.Valid)
	require.NotNil(t, value.Notes.Ptr())
	assert.Equal(t, "hello", *value.Notes.Ptr())
}

func TestOptionalItemListEmptyIsPresent(t *testing.T) {
	var req UpdateOrderRequest
	require.NoError(t, json.Unmarshal([]byte(`{"items":[]}`), &req))
	assert.True(t, req.Items.Present)
	assert.True(t, req.Items.Valid)
	assert.Empty(t, req.Items.Value)
}

func TestOptionalRejectsTypeMismatch(t *testing.T) {
	type payload struct {
		CustomerID Optional[int] `json:"customer_id"`
	}
	var p payload
	assert.Error(t, json.Unmarshal([]byte(`{"customer_id":"seven"}`), &p))
}

func TestOptionalMarshalRoundTrip(t *testing.T) {
	out, err := json.Marshal(Some(7))
	require.NoError(t, err)
	assert.Equal(t, "7", string(out))

	out, err = json.Marshal(Null[int]())
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

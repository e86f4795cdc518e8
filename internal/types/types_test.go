package types_test

import (
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zestagio/chat-relay/internal/types"
)

var _ interface {
	encoding.TextMarshaler
	encoding.TextUnmarshaler
	driver.Valuer
	gomock.Matcher
} = (*types.MessageID)(nil)

func TestParse(t *testing.T) {
	_, err := types.Parse[types.MessageID]("abra-cadabra")
	require.Error(t, err)

	msgID, err := types.Parse[types.MessageID]("f0317e88-bbfe-11ed-8728-461e464ebed8")
	require.NoError(t, err)
	assert.Equal(t, "f0317e88-bbfe-11ed-8728-461e464ebed8", msgID.String())
}

func TestMustParse(t *testing.T) {
	assert.Panics(t, func() {
		types.MustParse[types.EventID]("abra-cadabra")
	})

	assert.NotPanics(t, func() {
		eventID := types.MustParse[types.EventID]("f0317e88-bbfe-11ed-8728-461e464ebed8")
		assert.Equal(t, "f0317e88-bbfe-11ed-8728-461e464ebed8", eventID.String())
	})
}

func TestMessageID_Scan(t *testing.T) {
	const src = "5c9de646-529c-11ed-81ba-461e464ebed9"

	t.Run("from string and bytes", func(t *testing.T) {
		var id1, id2 types.MessageID
		require.NoError(t, id1.Scan(src))
		require.NoError(t, id2.Scan([]byte(src)))
		assert.Equal(t, id1.String(), id2.String())
		assert.Equal(t, getValueAsString(t, id1), getValueAsString(t, id2))
	})

	t.Run("from NULL", func(t *testing.T) {
		for _, src := range []any{nil, []byte(nil), []byte{}, ""} {
			t.Run("", func(t *testing.T) {
				var id types.MessageID
				require.NoError(t, id.Scan(src))
				assert.Equal(t, types.MessageIDNil.String(), id.String())
			})
		}
	})
}

func TestMessageID_JSON(t *testing.T) {
	id := types.MustParse[types.MessageID]("f0317e88-bbfe-11ed-8728-461e464ebed8")

	data, err := json.Marshal(struct {
		ID types.MessageID `json:"id"`
	}{ID: id})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "f0317e88-bbfe-11ed-8728-461e464ebed8"}`, string(data))

	var v struct {
		ID types.MessageID `json:"id"`
	}
	require.NoError(t, json.Unmarshal(data, &v))
	assert.Equal(t, id, v.ID)
}

func TestMessageID_IsZero(t *testing.T) {
	assert.False(t, types.NewMessageID().IsZero())
	assert.True(t, types.MessageIDNil.IsZero())
	assert.Equal(t, uuid.Nil.String(), types.MessageIDNil.String())
}

func TestMessageID_Matches(t *testing.T) {
	id := types.NewMessageID()
	id2 := types.MustParse[types.MessageID](id.String())

	assert.True(t, id.Matches(id2))
	assert.False(t, id.Matches(id2.String()))
	assert.False(t, id.Matches(types.NewMessageID()))
}

//nolint:testifylint // not directly related single checks
func TestValidate(t *testing.T) {
	assert.NoError(t, types.NewMessageID().Validate())
	assert.Error(t, types.MessageID{}.Validate())
	assert.NoError(t, types.NewEventID().Validate())
	assert.Error(t, types.EventIDNil.Validate())
}

func getValueAsString(t *testing.T, valuer driver.Valuer) string {
	t.Helper()

	v, err := valuer.Value()
	require.NoError(t, err)
	vv, ok := v.(string)
	require.True(t, ok)
	return vv
}

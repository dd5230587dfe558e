package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNotifyListener(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 0)
	listener := NewNotifyListener("host=localhost dbname=cipherswarm", manager)

	assert.NotNil(t, listener)
	assert.Equal(t, "host=localhost dbname=cipherswarm", listener.dsn)
	assert.NotNil(t, listener.active)
	assert.Equal(t, manager, listener.manager)
}

func TestNotifyListener_BeforeStart(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 0)
	listener := NewNotifyListener("host=localhost dbname=cipherswarm", manager)

	t.Run("subscribe fails without a connection", func(t *testing.T) {
		err := listener.Subscribe(t.Context(), "campaign:1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not established")
	})

	t.Run("unsubscribe of an unlistened channel is a no-op", func(t *testing.T) {
		err := listener.Unsubscribe(t.Context(), "campaign:1")
		assert.NoError(t, err)
	})
}

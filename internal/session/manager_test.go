// internal/session/manager_test.go
package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestManagerCreateAndGet(t *testing.T) {
	manager := NewManager(1000, time.Hour, time.Hour)

	sess := manager.Create()
	assert.NotEqual(t, uuid.Nil, sess.ID)
	assert.NotNil(t, sess.Cart)
	assert.NotNil(t, sess.Energy)
	assert.Equal(t, 1, manager.Len())

	got, ok := manager.Get(sess.ID)
	assert.True(t, ok)
	assert.Same(t, sess, got)

	_, ok = manager.Get(uuid.New())
	assert.False(t, ok)
}

func TestManagerDelete(t *testing.T) {
	manager := NewManager(1000, time.Hour, time.Hour)
	sess := manager.Create()

	manager.Delete(sess.ID)

	_, ok := manager.Get(sess.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, manager.Len())
}

func TestManagerExpiresIdleSessions(t *testing.T) {
	manager := NewManager(1000, 10*time.Millisecond, time.Hour)
	sess := manager.Create()

	time.Sleep(25 * time.Millisecond)

	_, ok := manager.Get(sess.ID)
	assert.False(t, ok)
}

func TestManagerSessionsAreIndependent(t *testing.T) {
	manager := NewManager(1000, time.Hour, time.Hour)
	first := manager.Create()
	second := manager.Create()

	first.Energy.Earn(500)
	first.Cart.AddToCart(newTestProduct("A", 10), 1)

	assert.InDelta(t, 0, second.Energy.Energy(), 1e-9)
	assert.Empty(t, second.Cart.CartItems())
	assert.Equal(t, 1, first.Cart.CartCount())
}

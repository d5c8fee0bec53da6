package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vladimiradmaev/health-diary-bot/internal/domain"
)

func TestManager_PendingLifecycle(t *testing.T) {
	m := NewManager()

	_, ok := m.Pending(42)
	assert.False(t, ok)

	m.SetPending(42, domain.PendingWeight{})
	entry, ok := m.Pending(42)
	require.True(t, ok)
	assert.Equal(t, domain.PendingWeight{}, entry)

	m.SetPending(42, domain.PendingGlucose{Tag: domain.BeforeMeal})
	entry, ok = m.Pending(42)
	require.True(t, ok)
	assert.Equal(t, domain.PendingGlucose{Tag: domain.BeforeMeal}, entry)

	m.ClearPending(42)
	_, ok = m.Pending(42)
	assert.False(t, ok)
}

func TestManager_ClearIsIdempotent(t *testing.T) {
	m := NewManager()
	m.ClearPending(42)
	m.ClearPending(42)
	_, ok := m.Pending(42)
	assert.False(t, ok)
}

func TestManager_ChatsIndependent(t *testing.T) {
	m := NewManager()
	m.SetPending(1, domain.PendingWeight{})

	_, ok := m.Pending(2)
	assert.False(t, ok)
}

func TestManager_LockChatSerializesOneChat(t *testing.T) {
	m := NewManager()
	unlock := m.LockChat(42)

	acquired := make(chan struct{})
	go func() {
		u := m.LockChat(42)
		close(acquired)
		u()
	}()

	select {
	case <-acquired:
		t.Fatal("second LockChat acquired while first still held")
	case <-time.After(20 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second LockChat never acquired after unlock")
	}
}

func TestManager_LockChatIndependentAcrossChats(t *testing.T) {
	m := NewManager()
	unlock := m.LockChat(1)
	defer unlock()

	done := make(chan struct{})
	go func() {
		u := m.LockChat(2)
		u()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock for another chat blocked")
	}
}

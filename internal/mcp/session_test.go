package mcp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreCreateAndGet(t *testing.T) {
	store := NewSessionStore(func() (Analyzer, error) { return &stubAnalyzer{}, nil })

	session, err := store.Create()
	require.NoError(t, err)
	require.NotNil(t, session.Analyzer)

	got, ok := store.Get(session.ID)
	assert.True(t, ok)
	assert.Same(t, session, got)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestSessionStoreEachSessionGetsFreshAnalyzer(t *testing.T) {
	built := 0
	store := NewSessionStore(func() (Analyzer, error) {
		built++
		return &stubAnalyzer{}, nil
	})

	first, err := store.Create()
	require.NoError(t, err)
	second, err := store.Create()
	require.NoError(t, err)

	assert.Equal(t, 2, built)
	assert.NotSame(t, first.Analyzer, second.Analyzer)
}

func TestSessionStoreFactoryError(t *testing.T) {
	store := NewSessionStore(func() (Analyzer, error) {
		return nil, errors.New("no api key")
	})

	_, err := store.Create()
	assert.Error(t, err)
}

func TestSessionStoreClear(t *testing.T) {
	store := NewSessionStore(func() (Analyzer, error) { return &stubAnalyzer{}, nil })

	session, err := store.Create()
	require.NoError(t, err)

	store.Clear()

	_, ok := store.Get(session.ID)
	assert.False(t, ok)
}

func TestSessionHistoryIsACopy(t *testing.T) {
	session := &Session{ID: "s1"}
	session.Append("user", "hello")

	history := session.History()
	require.Len(t, history, 1)
	history[0].Content = "mutated"

	assert.Equal(t, "hello", session.History()[0].Content)
}

package mcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil note service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Assistant: &mockAssistant{}})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingNoteService)
	})

	t.Run("nil assistant returns error", func(t *testing.T) {
		_, err := NewServer(&Ports{Notes: &mockNoteService{}})
		assert.ErrorIs(t, err, ErrMissingAssistant)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(validPorts(&mockNoteService{}))
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingNoteService)
	assert.NoError(t, validPorts(&mockNoteService{}).Validate())
}

func TestServer_RunHTTP_StopsOnCancel(t *testing.T) {
	server, err := NewServer(validPorts(&mockNoteService{}))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.RunHTTP(ctx, "127.0.0.1:0")
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_Handler(t *testing.T) {
	server, err := NewServer(validPorts(&mockNoteService{}))
	require.NoError(t, err)

	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	// A GET without an MCP session is rejected, but reaches the handler.
	resp, err := http.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
}

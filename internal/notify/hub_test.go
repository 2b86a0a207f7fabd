package notify

import (
	"bufio"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hcstnb2047/lvdash/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_StreamsToasts(t *testing.T) {
	h := New()
	go h.Run()
	t.Cleanup(h.Stop)

	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	require.Eventually(t, func() bool { return h.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	h.Toast(models.ToastSuccess, "daily dispatched")

	reader := bufio.NewReader(resp.Body)
	var data string
	for data == "" {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "data: ") {
			data = strings.TrimPrefix(strings.TrimSpace(line), "data: ")
		}
	}

	var event struct {
		ID      string       `json:"id"`
		Type    EventType    `json:"type"`
		Payload models.Toast `json:"payload"`
	}
	require.NoError(t, json.Unmarshal([]byte(data), &event))
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, EventToast, event.Type)
	assert.Equal(t, models.ToastSuccess, event.Payload.Kind)
	assert.Equal(t, "daily dispatched", event.Payload.Message)
}

func TestHub_PublishWithoutClientsDoesNotBlock(t *testing.T) {
	h := New()

	for i := 0; i < 300; i++ {
		h.Publish(EventPolling, i)
	}
}

func TestHub_StopDisconnectsClients(t *testing.T) {
	h := New()
	go h.Run()

	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Eventually(t, func() bool { return h.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	h.Stop()

	assert.Eventually(t, func() bool { return h.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
}

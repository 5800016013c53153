package messages

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTick(t *testing.T) {
	now := time.Now()
	msg := Tick{Time: now}

	assert.Equal(t, now, msg.Time)
}

func TestResultOpened(t *testing.T) {
	msg := ResultOpened{URL: "https://go.dev"}

	assert.Equal(t, "https://go.dev", msg.URL)
}

package anthropic

import (
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
)

func TestFromSDKMessage_ConcatenatesTextBlocks(t *testing.T) {
	msg := &sdk.Message{
		ID:    "msg_123",
		Model: "claude-sonnet-4-5-20250929",
		Content: []sdk.ContentBlockUnion{
			{Type: "text", Text: "Part one. "},
			{Type: "text", Text: "Part two."},
		},
		StopReason: "end_turn",
	}
	msg.Usage.InputTokens = 100
	msg.Usage.OutputTokens = 50

	out := fromSDKMessage(msg)
	assert.Equal(t, "msg_123", out.ID)
	assert.Equal(t, "Part one. Part two.", out.Text)
	assert.Equal(t, "end_turn", out.StopReason)
	assert.Equal(t, int64(100), out.Usage.InputTokens)
	assert.Equal(t, int64(50), out.Usage.OutputTokens)
}

func TestWithRateLimit_ZeroDisables(t *testing.T) {
	c := &sdkClient{}
	WithRateLimit(0)(c)
	assert.Nil(t, c.limiter)

	WithRateLimit(2)(c)
	assert.NotNil(t, c.limiter)
}

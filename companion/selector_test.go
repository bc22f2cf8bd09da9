package companion

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/materna/ai/mock"
	"github.com/poiesic/materna/core"
)

func TestReply_EveryMoodDrawsFromItsPool(t *testing.T) {
	selector := NewSelector()
	ctx := context.Background()

	for _, mood := range core.Moods {
		entry := &core.JournalEntry{Content: "um dia como outro qualquer", Mood: mood}
		response := selector.Reply(ctx, entry)

		require.NotEmpty(t, response.Text, "mood %s", mood.Code())
		assert.False(t, response.Remote)
		assert.Contains(t, moodPools[mood], response.Text, "mood %s", mood.Code())
	}
}

func TestReply_PickIsUniformOverPool(t *testing.T) {
	index := 0
	selector := NewSelector(WithPickFunc(func(n int) int {
		return index % n
	}))
	ctx := context.Background()
	entry := &core.JournalEntry{Content: "texto", Mood: core.MoodHappy}

	seen := map[string]bool{}
	for index = 0; index < 3; index++ {
		seen[selector.Reply(ctx, entry).Text] = true
	}
	assert.Len(t, seen, 3)
}

func TestReply_RemotePathUsed(t *testing.T) {
	responder := mock.NewMockResponder()
	responder.ReplyFunc = func(_ context.Context, system, user string, maxTokens int) (string, error) {
		assert.Contains(t, system, "doula")
		assert.Contains(t, user, "Humor: "+core.MoodAnxious.Label())
		assert.Contains(t, user, "coração acelerado")
		assert.Equal(t, defaultMaxTokens, maxTokens)
		return "Estou aqui com você. Respire comigo.", nil
	}

	selector := NewSelector(WithResponder(responder))
	entry := &core.JournalEntry{Content: "acordei com o coração acelerado", Mood: core.MoodAnxious}

	response := selector.Reply(context.Background(), entry)

	assert.True(t, response.Remote)
	assert.Equal(t, "Estou aqui com você. Respire comigo.", response.Text)
	assert.Equal(t, 1, responder.CallCount())
}

func TestReply_SilentFallbackOnRemoteFailure(t *testing.T) {
	responder := mock.NewMockResponder()
	responder.ReplyFunc = func(context.Context, string, string, int) (string, error) {
		return "", errors.New("connection refused")
	}

	selector := NewSelector(WithResponder(responder))
	entry := &core.JournalEntry{Content: "dia pesado", Mood: core.MoodSad}

	response := selector.Reply(context.Background(), entry)

	assert.False(t, response.Remote)
	assert.Contains(t, moodPools[core.MoodSad], response.Text)
}

func TestReply_FallbackOnEmptyRemoteText(t *testing.T) {
	responder := mock.NewMockResponder()
	responder.ReplyFunc = func(context.Context, string, string, int) (string, error) {
		return "", nil
	}

	selector := NewSelector(WithResponder(responder))
	entry := &core.JournalEntry{Content: "tudo certo", Mood: core.MoodCalm}

	response := selector.Reply(context.Background(), entry)

	assert.False(t, response.Remote)
	assert.Contains(t, moodPools[core.MoodCalm], response.Text)
}

func TestCelebrateMilestone(t *testing.T) {
	selector := NewSelector(WithPickFunc(func(int) int { return 0 }))

	message := selector.CelebrateMilestone("Primeiro sorriso")

	assert.Contains(t, message, "Primeiro sorriso")
	assert.True(t, strings.Contains(message, "🎉") || strings.Contains(message, "🌟") || strings.Contains(message, "💝"))
}

func TestWeekMessage(t *testing.T) {
	selector := NewSelector(WithPickFunc(func(int) int { return 0 }))

	// Special weeks take priority over the every-4th-week rule.
	for _, week := range []int{12, 20, 28, 37, 40} {
		assert.Equal(t, specialWeekMessages[week], selector.WeekMessage(week), "week %d", week)
	}

	// Week 16 is divisible by 4 but not special.
	assert.Contains(t, selector.WeekMessage(16), "16")
	assert.NotEqual(t, defaultWeekMessage, selector.WeekMessage(16))

	// Ordinary weeks get the generic message.
	assert.Equal(t, defaultWeekMessage, selector.WeekMessage(15))
	assert.Equal(t, defaultWeekMessage, selector.WeekMessage(0))
}

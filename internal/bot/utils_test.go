package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in       string
		wantCmd  string
		wantArgs string
	}{
		{"/compliment", "/compliment", ""},
		{"/category  career ", "/category", "career"},
		{"/add career | Great  job!", "/add", "career | Great  job!"},
		{"/add\ncareer | multi\nline", "/add", "career | multi\nline"},
		{"/compliment@compliment_bot study", "/compliment", "study"},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cmd, args := parseCommand(tt.in)
			assert.Equal(t, tt.wantCmd, cmd)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestComplimentCount(t *testing.T) {
	assert.Equal(t, "1 compliment", complimentCount(1))
	assert.Equal(t, "0 compliments", complimentCount(0))
	assert.Equal(t, "7 compliments", complimentCount(7))
}

func TestCategoryKeyboard(t *testing.T) {
	kb := categoryKeyboard([]string{"study", "career", "wellness", "night-owls"}, "career")

	// 5 chips in rows of 3, then the "another" row.
	rows := kb.InlineKeyboard
	assert.Len(t, rows, 3)
	assert.Len(t, rows[0], 3)
	assert.Len(t, rows[1], 2)

	assert.Equal(t, "All", rows[0][0].Text)
	assert.Equal(t, "✓ Career", rows[0][2].Text)
	assert.Equal(t, "cat:night-owls", *rows[1][1].CallbackData)
	assert.Equal(t, callbackAnother, *rows[2][0].CallbackData)
}

func TestCategoryKeyboard_SkipsOversizedCategories(t *testing.T) {
	long := "a-very-long-category-name-that-does-not-fit-in-telegram-callback-data"
	kb := categoryKeyboard([]string{long, "study"}, "all")

	chips := kb.InlineKeyboard[0]
	assert.Len(t, chips, 2)
	assert.Equal(t, "✓ All", chips[0].Text)
	assert.Equal(t, "Study", chips[1].Text)
}

func TestCategoryKeyboard_StoredAllCategorySharesAllChip(t *testing.T) {
	kb := categoryKeyboard([]string{"study", "all"}, "all")

	chips := kb.InlineKeyboard[0]
	require.Len(t, chips, 2)
	assert.Equal(t, "✓ All", chips[0].Text)
	assert.Equal(t, "cat:all", *chips[0].CallbackData)
	assert.Equal(t, "Study", chips[1].Text)
}

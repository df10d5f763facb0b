package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandsForRole(t *testing.T) {
	assert.Equal(t, []string{"code"}, commandsForRole(RoleUser))
	assert.Contains(t, commandsForRole(RoleGroupAdmin), "send_now")
	assert.NotContains(t, commandsForRole(RoleGroupAdmin), "logs")
	assert.Contains(t, commandsForRole(RoleOwner), "alllogs")
}

func TestKeyboardForRole_RowsOfThree(t *testing.T) {
	kb := keyboardForRole(RoleOwner)
	assert.True(t, kb.ResizeKeyboard)
	assert.Len(t, kb.Keyboard, 3) // 7 commands in rows of 3
	assert.Len(t, kb.Keyboard[0], 3)
	assert.Len(t, kb.Keyboard[2], 1)
	assert.Equal(t, "/code", kb.Keyboard[0][0].Text)
}

func TestAllowed(t *testing.T) {
	assert.True(t, allowed(RoleUser, "code"))
	assert.False(t, allowed(RoleUser, "start"))
	assert.True(t, allowed(RoleGroupAdmin, "start"))
	assert.False(t, allowed(RoleGroupAdmin, "health"))
	assert.True(t, allowed(RoleOwner, "health"))
}

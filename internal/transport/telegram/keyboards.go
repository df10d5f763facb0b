package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Role is what a user is allowed to do in one chat.
type Role int

const (
	RoleUser Role = iota
	RoleGroupAdmin
	RoleOwner
)

var (
	userCommands       = []string{"code"}
	groupAdminCommands = []string{"code", "start", "code_completed", "send_now"}
	ownerCommands      = []string{"code", "start", "code_completed", "send_now", "health", "logs", "alllogs"}
)

const keyboardRowSize = 3

func commandsForRole(role Role) []string {
	switch role {
	case RoleOwner:
		return ownerCommands
	case RoleGroupAdmin:
		return groupAdminCommands
	default:
		return userCommands
	}
}

// keyboardForRole lays the role's commands out as a reply keyboard, three
// buttons per row.
func keyboardForRole(role Role) tgbotapi.ReplyKeyboardMarkup {
	commands := commandsForRole(role)
	var rows [][]tgbotapi.KeyboardButton
	for i := 0; i < len(commands); i += keyboardRowSize {
		end := i + keyboardRowSize
		if end > len(commands) {
			end = len(commands)
		}
		var row []tgbotapi.KeyboardButton
		for _, cmd := range commands[i:end] {
			row = append(row, tgbotapi.NewKeyboardButton("/"+cmd))
		}
		rows = append(rows, row)
	}
	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	return kb
}

// allowed reports whether the role may run the command.
func allowed(role Role, command string) bool {
	for _, cmd := range commandsForRole(role) {
		if cmd == command {
			return true
		}
	}
	return false
}

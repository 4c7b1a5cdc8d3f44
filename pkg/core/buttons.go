package core

import (
	"fmt"

	"github.com/amarnathcjd/gogram/telegram"
)

// AddMeMarkup returns an inline keyboard with a button that adds the bot to a
// group. It requires the bot's username to generate the correct link.
func AddMeMarkup(username string) *telegram.ReplyInlineMarkup {
	addMeBtn := telegram.Button.URL("Aᴅᴅ ᴍᴇ ᴛᴏ ʏᴏᴜʀ ɢʀᴏᴜᴘ", fmt.Sprintf("https://t.me/%s?startgroup=true", username))

	keyboard := telegram.NewKeyboard().AddRow(addMeBtn)
	return keyboard.Build()
}

package telegram

import (
	"fmt"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

func SendTelegram(botToken, message string, channelId int64) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		fmt.Println(err)
		return
	}

	_, err = bot.Send(tgbotapi.NewMessage(channelId, message))
	if err != nil {
		fmt.Println(err)
	}
}

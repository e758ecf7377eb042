package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"fantasywar/internal/service"
)

const leaderboardSize = 25

type Handler struct {
	warService *service.WARService
	season     int
}

func NewHandler(warService *service.WARService, season int) *Handler {
	return &Handler{warService: warService, season: season}
}

func (h *Handler) HandleCommand(update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := update.Message.CommandArguments()
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome! Use /help to see available commands."
	case "help":
		msg.Text = "Available commands:\n/war [season] - WAR leaderboard\n/auction [season] - Auction dollar values\n/player <name> - Look up a player's WAR and value\n/baselines [season] - Positional scoring baselines"
	case "war":
		h.handleWAR(&msg, args)
	case "auction":
		h.handleAuction(&msg, args)
	case "player":
		h.handlePlayer(&msg, args)
	case "baselines":
		h.handleBaselines(&msg, args)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleWAR(msg *tgbotapi.MessageConfig, args string) {
	report, err := h.warService.WARReport(h.seasonArg(args), nil, leaderboardSize)
	if err != nil {
		msg.Text = fmt.Sprintf("Error computing WAR: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleAuction(msg *tgbotapi.MessageConfig, args string) {
	report, err := h.warService.AuctionReport(h.seasonArg(args), nil, leaderboardSize)
	if err != nil {
		msg.Text = fmt.Sprintf("Error computing auction values: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handlePlayer(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a player name. Usage: /player <player name>"
		return
	}
	result, err := h.warService.FindPlayer(args, h.season, nil)
	if err != nil {
		msg.Text = fmt.Sprintf("Error looking up player: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleBaselines(msg *tgbotapi.MessageConfig, args string) {
	summary, err := h.warService.PositionSummary(h.seasonArg(args), nil)
	if err != nil {
		msg.Text = fmt.Sprintf("Error computing baselines: %v", err)
	} else {
		msg.Text = summary
	}
}

func (h *Handler) seasonArg(args string) int {
	if args == "" {
		return h.season
	}
	season, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		return h.season
	}
	return season
}

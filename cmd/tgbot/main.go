package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pattarak/stockify/internal/analyst"
	"github.com/pattarak/stockify/internal/api/backend"
	"github.com/pattarak/stockify/internal/config"
	"github.com/pattarak/stockify/internal/i18n"
	"github.com/pattarak/stockify/internal/metrics"
	"github.com/pattarak/stockify/internal/portfolio"
	"github.com/pattarak/stockify/internal/storage"
	"github.com/pattarak/stockify/internal/watchlist"
)

type bot struct {
	api     *tgbotapi.BotAPI
	client  *backend.Client
	engine  *analyst.Analyst
	ledger  *portfolio.Ledger
	watches *watchlist.Manager
	logger  zerolog.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config failed")
	}

	lvl, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()

	botToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	if botToken == "" {
		logger.Fatal().Msg("TELEGRAM_BOT_TOKEN not set in environment")
	}

	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize Telegram bot")
	}
	logger.Info().Str("username", api.Self.UserName).Msg("Authorized on Telegram")

	ctx := context.Background()
	locale := i18n.ParseLocale(cfg.Locale)

	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("opening store failed")
	}
	ledger, err := portfolio.New(ctx, store, locale)
	if err != nil {
		logger.Fatal().Err(err).Msg("opening portfolio failed")
	}
	watches, err := watchlist.New(ctx, store)
	if err != nil {
		logger.Fatal().Err(err).Msg("opening watchlist failed")
	}

	b := &bot{
		api:     api,
		client:  backend.New(cfg.BackendURL, cfg.RequestTimeout),
		engine:  analyst.New(cfg.Policy, locale),
		ledger:  ledger,
		watches: watches,
		logger:  logger,
	}

	// Prometheus scrape endpoint
	go func() {
		http.Handle("/metrics", metrics.Handler())
		addr := ":" + cfg.MetricsPort
		logger.Info().Str("addr", addr).Msg("metrics endpoint listening")
		if err := http.ListenAndServe(addr, nil); err != nil {
			logger.Error().Err(err).Msg("metrics endpoint failed")
		}
	}()

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := api.GetUpdatesChan(updateConfig)

	for update := range updates {
		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}
		b.handleCommand(ctx, update.Message)
	}
}

func (b *bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	args := strings.Fields(msg.CommandArguments())

	var reply string
	switch msg.Command() {
	case "start", "help":
		reply = "Stockify Pro 🤖\n" +
			"/analyze SYMBOL - signal + full report\n" +
			"/buy SYMBOL QTY - paper buy at live quote\n" +
			"/sell SYMBOL QTY - paper sell at live quote\n" +
			"/portfolio - balance and holdings\n" +
			"/watch SYMBOL, /unwatch SYMBOL, /watchlist\n" +
			"/reset - wipe the paper portfolio"
	case "analyze":
		reply = b.analyze(ctx, args)
	case "buy":
		reply = b.trade(ctx, args, true)
	case "sell":
		reply = b.trade(ctx, args, false)
	case "portfolio":
		reply = b.portfolioSummary()
	case "watch":
		reply = b.watch(ctx, args, true)
	case "unwatch":
		reply = b.watch(ctx, args, false)
	case "watchlist":
		list := b.watches.List()
		if len(list) == 0 {
			reply = "No favorites yet. Star some stocks! ⭐"
		} else {
			reply = "⭐ " + strings.Join(list, ", ")
		}
	case "reset":
		state, err := b.ledger.Reset(ctx)
		if err != nil {
			reply = "Reset failed: " + err.Error()
		} else {
			reply = fmt.Sprintf("Portfolio reset. Balance: %.2f", state.Balance)
		}
	default:
		reply = "Unknown command. Try /help"
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, reply)
	if _, err := b.api.Send(out); err != nil {
		b.logger.Error().Err(err).Msg("sending reply failed")
	}
}

func (b *bot) analyze(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return "Usage: /analyze SYMBOL"
	}
	snap, err := b.client.Analyze(ctx, args[0])
	if err != nil {
		b.logger.Error().Err(err).Str("symbol", args[0]).Msg("analyze fetch failed")
		return "Could not fetch data for " + strings.ToUpper(args[0])
	}
	rec := b.engine.Analyze(*snap)
	metrics.SignalsGenerated.WithLabelValues(rec.Signal).Inc()
	return b.engine.FormatReport(rec)
}

func (b *bot) trade(ctx context.Context, args []string, isBuy bool) string {
	if len(args) < 2 {
		return "Usage: /buy SYMBOL QTY or /sell SYMBOL QTY"
	}
	qty, err := strconv.ParseFloat(args[1], 64)
	if err != nil || qty <= 0 {
		return "Invalid quantity: " + args[1]
	}

	snap, err := b.client.Analyze(ctx, args[0])
	if err != nil {
		return "Could not fetch a live quote for " + strings.ToUpper(args[0])
	}

	var receipt portfolio.Receipt
	if isBuy {
		receipt, err = b.ledger.Buy(ctx, snap.Symbol, snap.Price, qty)
	} else {
		receipt, err = b.ledger.Sell(ctx, snap.Symbol, snap.Price, qty)
	}
	if err != nil {
		metrics.OrdersRejected.WithLabelValues(err.Error()).Inc()
		return "❌ " + b.ledger.FailureMessage(err)
	}

	action := "sell"
	if isBuy {
		action = "buy"
	}
	metrics.OrdersExecuted.WithLabelValues(action).Inc()
	return "✅ " + receipt.Message
}

func (b *bot) portfolioSummary() string {
	summary := b.ledger.Summary()
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("💼 Available Cash: %.2f\n", summary.Balance))
	if summary.PositionCount == 0 {
		sb.WriteString("No open positions. Use /analyze to find setups! 🚀")
		return sb.String()
	}
	sb.WriteString("Current Holdings:\n")
	for _, p := range summary.Positions {
		sb.WriteString(fmt.Sprintf("• %s: %.0f @ %.2f (since %s)\n",
			p.Symbol, p.Qty, p.AvgPrice, p.EntryDate.Format("2006-01-02")))
	}
	return sb.String()
}

func (b *bot) watch(ctx context.Context, args []string, add bool) string {
	if len(args) < 1 {
		return "Usage: /watch SYMBOL"
	}
	if add {
		added, err := b.watches.Add(ctx, args[0])
		if err != nil {
			return "Watchlist update failed: " + err.Error()
		}
		if !added {
			return "Already on the watchlist"
		}
		return "Added to favorites ⭐"
	}
	if err := b.watches.Remove(ctx, args[0]); err != nil {
		return "Watchlist update failed: " + err.Error()
	}
	return "Removed from favorites"
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case "redis":
		return storage.NewRedis(ctx, cfg.RedisAddr)
	case "postgres":
		return storage.NewPostgres(storage.ConnectionParams{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
			SSLMode:  cfg.DBSSLMode,
		})
	default:
		return storage.NewMemory(), nil
	}
}

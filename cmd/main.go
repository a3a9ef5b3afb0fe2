package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

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

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config failed")
	}

	lvl, _ := zerolog.ParseLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	ctx := context.Background()
	locale := i18n.ParseLocale(cfg.Locale)
	client := backend.New(cfg.BackendURL, cfg.RequestTimeout)
	engine := analyst.New(cfg.Policy, locale)

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("opening store failed")
	}

	cmd := "analyze"
	args := os.Args[1:]
	if len(args) > 0 {
		cmd = args[0]
		args = args[1:]
	}

	switch cmd {
	case "analyze":
		symbol := cfg.Symbol
		if len(args) > 0 {
			symbol = args[0]
		}
		snap, err := client.Analyze(ctx, symbol)
		if err != nil {
			log.Fatal().Err(err).Str("symbol", symbol).Msg("analyze fetch failed")
		}
		rec := engine.Analyze(*snap)
		metrics.SignalsGenerated.WithLabelValues(rec.Signal).Inc()
		fmt.Println(engine.FormatReport(rec))

	case "backtest":
		symbol := cfg.Symbol
		if len(args) > 0 {
			symbol = args[0]
		}
		result, err := client.Backtest(ctx, symbol)
		if err != nil {
			log.Fatal().Err(err).Msg("backtest fetch failed")
		}
		fmt.Printf("Backtest %s: %d trades, win rate %.2f%%, return %.2f%% (%.2f -> %.2f)\n",
			result.Symbol, result.TotalTrades, result.WinRate, result.ReturnPct,
			result.InitialCapital, result.FinalCapital)

	case "discover":
		opportunities, err := client.Discover(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("discover fetch failed")
		}
		for _, o := range opportunities {
			fmt.Printf("%-8s %10.2f  %+6.2f%%  RSI %5.1f  score %d  %s [%s]\n",
				o.Symbol, o.Price, o.Change, o.RSI, o.Score, o.Signal, o.Category)
		}

	case "streaks":
		report, err := client.Streaks(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("streaks fetch failed")
		}
		fmt.Println("Winning streaks:")
		for _, s := range report.Gainers {
			fmt.Printf("  %-8s %d days  %+.2f%%\n", s.Symbol, s.Streak, s.TotalChange)
		}
		fmt.Println("Losing streaks:")
		for _, s := range report.Losers {
			fmt.Printf("  %-8s %d days  %+.2f%%\n", s.Symbol, s.Streak, s.TotalChange)
		}

	case "buy", "sell":
		if len(args) < 2 {
			fmt.Fprintf(os.Stderr, "usage: stockify %s SYMBOL QTY\n", cmd)
			os.Exit(2)
		}
		symbol := args[0]
		qty, err := strconv.ParseFloat(args[1], 64)
		if err != nil || qty <= 0 {
			log.Fatal().Str("qty", args[1]).Msg("invalid quantity")
		}

		ledger, err := portfolio.New(ctx, store, locale)
		if err != nil {
			log.Fatal().Err(err).Msg("opening portfolio failed")
		}

		// Orders execute at the backend's live quote, like the dashboard did.
		snap, err := client.Analyze(ctx, symbol)
		if err != nil {
			log.Fatal().Err(err).Str("symbol", symbol).Msg("price fetch failed")
		}

		var receipt portfolio.Receipt
		if cmd == "buy" {
			receipt, err = ledger.Buy(ctx, snap.Symbol, snap.Price, qty)
		} else {
			receipt, err = ledger.Sell(ctx, snap.Symbol, snap.Price, qty)
		}
		if err != nil {
			metrics.OrdersRejected.WithLabelValues(err.Error()).Inc()
			fmt.Println(ledger.FailureMessage(err))
			os.Exit(1)
		}
		metrics.OrdersExecuted.WithLabelValues(cmd).Inc()
		fmt.Println(receipt.Message)

	case "summary":
		ledger, err := portfolio.New(ctx, store, locale)
		if err != nil {
			log.Fatal().Err(err).Msg("opening portfolio failed")
		}
		summary := ledger.Summary()
		fmt.Printf("Cash: %.2f  Open positions: %d\n", summary.Balance, summary.PositionCount)
		for _, p := range summary.Positions {
			fmt.Printf("  %-8s qty %.0f  avg %.2f  since %s\n",
				p.Symbol, p.Qty, p.AvgPrice, p.EntryDate.Format("2006-01-02"))
		}

	case "history":
		ledger, err := portfolio.New(ctx, store, locale)
		if err != nil {
			log.Fatal().Err(err).Msg("opening portfolio failed")
		}
		for _, h := range ledger.History() {
			fmt.Printf("%s  %s %-8s qty %.0f @ %.2f  P/L %+.2f\n",
				h.Date.Format("2006-01-02 15:04"), h.Action, h.Symbol, h.Qty, h.Price, h.Profit)
		}

	case "reset":
		ledger, err := portfolio.New(ctx, store, locale)
		if err != nil {
			log.Fatal().Err(err).Msg("opening portfolio failed")
		}
		state, err := ledger.Reset(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("reset failed")
		}
		fmt.Printf("Portfolio reset. Balance: %.2f\n", state.Balance)

	case "watch", "unwatch", "watchlist":
		manager, err := watchlist.New(ctx, store)
		if err != nil {
			log.Fatal().Err(err).Msg("opening watchlist failed")
		}
		switch cmd {
		case "watch":
			if len(args) < 1 {
				fmt.Fprintln(os.Stderr, "usage: stockify watch SYMBOL")
				os.Exit(2)
			}
			added, err := manager.Add(ctx, args[0])
			if err != nil {
				log.Fatal().Err(err).Msg("watchlist add failed")
			}
			if added {
				fmt.Println("Added to favorites ⭐")
			} else {
				fmt.Println("Already on the watchlist")
			}
		case "unwatch":
			if len(args) < 1 {
				fmt.Fprintln(os.Stderr, "usage: stockify unwatch SYMBOL")
				os.Exit(2)
			}
			if err := manager.Remove(ctx, args[0]); err != nil {
				log.Fatal().Err(err).Msg("watchlist remove failed")
			}
			fmt.Println("Removed from favorites")
		default:
			for _, s := range manager.List() {
				fmt.Println(s)
			}
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		fmt.Fprintln(os.Stderr, "commands: analyze backtest discover streaks buy sell summary history reset watch unwatch watchlist")
		os.Exit(2)
	}
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

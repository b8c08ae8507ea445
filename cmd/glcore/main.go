package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finware/glcore/internal/core/domain"
	"github.com/finware/glcore/internal/core/services"
	"github.com/finware/glcore/internal/ctxlog"
	"github.com/finware/glcore/internal/dto"
	"github.com/finware/glcore/internal/repositories/database/pgsql"
	"github.com/finware/glcore/pkg/config"
	"github.com/finware/glcore/pkg/database"

	portssvc "github.com/finware/glcore/internal/core/ports/services"
)

const usage = `Usage: glcore <command> [flags]

Commands:
  load-rate     load a daily conversion rate
  revalue       run FX revaluation for a ledger period and currency
  recur         materialize due recurring templates into draft journals
  reverse       generate reversals for auto-reverse journals of a period
  reconcile     compare subledger totals against GL control accounts
  close-status  show the period-close checklist rollup
  close         transition a period to closed if the gate allows it
`

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	command := os.Args[1]
	args := os.Args[2:]

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := ctxlog.WithLogger(context.Background(), logger)

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	repos := pgsql.NewRepositoryProvider(dbPool)
	svcs := services.NewServiceContainer(cfg, repos)

	if err := run(ctx, svcs, command, args); err != nil {
		logger.Error("Command failed", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, svcs *portssvc.ServiceContainer, command string, args []string) error {
	switch command {
	case "load-rate":
		return runLoadRate(ctx, svcs, args)
	case "revalue":
		return runRevalue(ctx, svcs, args)
	case "recur":
		return runRecur(ctx, svcs, args)
	case "reverse":
		return runReverse(ctx, svcs, args)
	case "reconcile":
		return runReconcile(ctx, svcs, args)
	case "close-status":
		return runCloseStatus(ctx, svcs, args)
	case "close":
		return runClose(ctx, svcs, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func runLoadRate(ctx context.Context, svcs *portssvc.ServiceContainer, args []string) error {
	fs := flag.NewFlagSet("load-rate", flag.ExitOnError)
	from := fs.String("from", "", "from currency code")
	to := fs.String("to", "", "to currency code")
	convType := fs.String("type", string(domain.ConversionCorporate), "conversion type (CORPORATE or SPOT)")
	dateStr := fs.String("date", "", "rate date (2006-01-02), defaults to today")
	rateStr := fs.String("rate", "", "units of the to-currency per one from-currency unit")
	actor := fs.String("actor", "system", "acting user ID recorded on the rate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rate, err := decimal.NewFromString(*rateStr)
	if err != nil {
		return fmt.Errorf("invalid -rate %q: %w", *rateStr, err)
	}
	rateDate := time.Now().UTC()
	if *dateStr != "" {
		parsed, err := time.Parse("2006-01-02", *dateStr)
		if err != nil {
			return fmt.Errorf("invalid -date %q: %w", *dateStr, err)
		}
		rateDate = parsed
	}

	result, err := svcs.Rate.UpsertDailyRate(ctx, dto.UpsertRateRequest{
		FromCurrencyCode: *from,
		ToCurrencyCode:   *to,
		ConversionType:   domain.ConversionType(*convType),
		RateDate:         rateDate,
		Rate:             rate,
	}, *actor)
	if err != nil {
		return err
	}
	return printJSON(result)
}

func runRevalue(ctx context.Context, svcs *portssvc.ServiceContainer, args []string) error {
	fs := flag.NewFlagSet("revalue", flag.ExitOnError)
	ledgerID := fs.String("ledger", "", "ledger ID")
	period := fs.String("period", "", "period name, e.g. Jan-2026")
	currency := fs.String("currency", "", "foreign currency code to revalue")
	actor := fs.String("actor", "system", "acting user ID recorded on the journal")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := svcs.Revaluation.RunRevaluation(ctx, *ledgerID, *period, *currency, *actor)
	if err != nil {
		return err
	}
	return printJSON(result)
}

func runRecur(ctx context.Context, svcs *portssvc.ServiceContainer, args []string) error {
	fs := flag.NewFlagSet("recur", flag.ExitOnError)
	ledgerID := fs.String("ledger", "", "ledger ID")
	asOfStr := fs.String("as-of", "", "run date (2006-01-02), defaults to today")
	actor := fs.String("actor", "system", "acting user ID recorded on generated journals")
	if err := fs.Parse(args); err != nil {
		return err
	}

	asOf := time.Now().UTC()
	if *asOfStr != "" {
		parsed, err := time.Parse("2006-01-02", *asOfStr)
		if err != nil {
			return fmt.Errorf("invalid -as-of date %q: %w", *asOfStr, err)
		}
		asOf = parsed
	}

	result, err := svcs.Recurring.GenerateDueJournals(ctx, *ledgerID, asOf, *actor)
	if err != nil {
		return err
	}
	return printJSON(result)
}

func runReverse(ctx context.Context, svcs *portssvc.ServiceContainer, args []string) error {
	fs := flag.NewFlagSet("reverse", flag.ExitOnError)
	ledgerID := fs.String("ledger", "", "ledger ID")
	period := fs.String("period", "", "period whose flagged journals get reversed")
	actor := fs.String("actor", "system", "acting user ID recorded on reversal journals")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := svcs.Reversal.RunAutoReversal(ctx, *ledgerID, *period, *actor)
	if err != nil {
		return err
	}
	return printJSON(result)
}

func runReconcile(ctx context.Context, svcs *portssvc.ServiceContainer, args []string) error {
	fs := flag.NewFlagSet("reconcile", flag.ExitOnError)
	ledgerID := fs.String("ledger", "", "ledger ID")
	period := fs.String("period", "", "period name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	report, err := svcs.Reconciliation.Reconcile(ctx, *ledgerID, *period)
	if err != nil {
		return err
	}
	return printJSON(report)
}

func runCloseStatus(ctx context.Context, svcs *portssvc.ServiceContainer, args []string) error {
	fs := flag.NewFlagSet("close-status", flag.ExitOnError)
	ledgerID := fs.String("ledger", "", "ledger ID")
	period := fs.String("period", "", "period name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	status, err := svcs.PeriodClose.GetCloseStatus(ctx, *ledgerID, *period)
	if err != nil {
		return err
	}
	return printJSON(status)
}

func runClose(ctx context.Context, svcs *portssvc.ServiceContainer, args []string) error {
	fs := flag.NewFlagSet("close", flag.ExitOnError)
	ledgerID := fs.String("ledger", "", "ledger ID")
	period := fs.String("period", "", "period name")
	actor := fs.String("actor", "system", "acting user ID recorded on the transition")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := svcs.PeriodClose.ClosePeriod(ctx, *ledgerID, *period, *actor); err != nil {
		return err
	}
	return printJSON(map[string]string{"ledgerID": *ledgerID, "period": *period, "status": "CLOSED"})
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

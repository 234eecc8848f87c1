/*hesabctl records and inspects finance entries straight against the store.*/
package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"

	"hesab/internal/cli"
	"hesab/internal/ledger"
)

// cliArgs is the command tree.
var cliArgs struct {
	Add    addCmd    `cmd:"" help:"Record a transaction."`
	List   listCmd   `cmd:"" help:"List entries, newest first."`
	Report reportCmd `cmd:"" help:"Print the dashboard figures."`
	Goal   goalCmd   `cmd:"" help:"Manage the purchase checklist."`
}

type addCmd struct {
	Income     addIncomeCmd     `cmd:"" help:"Record income."`
	Expense    addExpenseCmd    `cmd:"" help:"Record an expense."`
	Saving     addSavingCmd     `cmd:"" help:"Record a saving deposit or withdrawal."`
	Investment addInvestmentCmd `cmd:"" help:"Record an investment contribution."`
}

func main() {
	ctx := kong.Parse(&cliArgs)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// openLedger loads config, opens the store and pulls the snapshot.
// The returned cleanup must run before exit.
func openLedger(ctx context.Context) (*ledger.Ledger, func(), error) {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(envOr("HESAB_LOG_LEVEL", "warn"))
	cfg := cli.LoadAndValidateConfig(logger)

	result := cli.OpenStore(ctx, logger, cfg)
	cleanup := func() {
		if result.Cleanup != nil {
			_ = result.Cleanup()
		}
	}

	led := ledger.New(result.Store, nil)
	if err := led.Load(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	return led, cleanup, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

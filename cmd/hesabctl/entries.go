package main

import (
	"context"
	"fmt"
	"time"

	"hesab/internal/core"
	"hesab/internal/report"
)

type addIncomeCmd struct {
	Amount string `arg:"" required:"" help:"Amount, e.g. 1200.50"`
	Note   string `help:"Optional note."`
	Date   string `help:"Date (YYYY-MM-DD), defaults to today."`
}

type addExpenseCmd struct {
	Amount      string `arg:"" required:"" help:"Amount, e.g. 42.80"`
	Category    string `help:"Expense category, defaults to Other."`
	Subcategory string `help:"Optional second-level label."`
	Note        string `help:"Optional note."`
	Date        string `help:"Date (YYYY-MM-DD), defaults to today."`
}

type addSavingCmd struct {
	Delta    string `arg:"" required:"" help:"Signed amount: 500 deposits, -150 withdraws."`
	Currency string `required:"" enum:"IRR,USD" help:"Saving currency (IRR or USD)."`
	Note     string `help:"Optional note."`
	Date     string `help:"Date (YYYY-MM-DD), defaults to today."`
}

type addInvestmentCmd struct {
	Amount string `arg:"" required:"" help:"Amount paid in."`
	Type   string `enum:"Gold,Stocks,Crypto,Other" default:"Other" help:"Investment type."`
	Note   string `help:"Optional note."`
	Date   string `help:"Date (YYYY-MM-DD), defaults to today."`
}

type listCmd struct {
	Query string `help:"Fuzzy-filter entries by note."`
	Limit int    `default:"20" help:"Maximum entries to print."`
}

type reportCmd struct{}

func (c *addIncomeCmd) Run() error {
	return addEntry(core.EntryInput{
		Kind: core.KindIncome, Amount: c.Amount, Note: c.Note, Date: parseDate(c.Date),
	})
}

func (c *addExpenseCmd) Run() error {
	return addEntry(core.EntryInput{
		Kind: core.KindExpense, Amount: c.Amount, Note: c.Note, Date: parseDate(c.Date),
		Category: c.Category, Subcategory: c.Subcategory,
	})
}

func (c *addSavingCmd) Run() error {
	return addEntry(core.EntryInput{
		Kind: core.KindSaving, Amount: c.Delta, Note: c.Note, Date: parseDate(c.Date),
		Currency: core.Currency(c.Currency),
	})
}

func (c *addInvestmentCmd) Run() error {
	return addEntry(core.EntryInput{
		Kind: core.KindInvestment, Amount: c.Amount, Note: c.Note, Date: parseDate(c.Date),
		Investment: core.InvestmentType(c.Type),
	})
}

func addEntry(in core.EntryInput) error {
	ctx := context.Background()
	led, cleanup, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	e, err := led.AddEntry(ctx, in)
	if err != nil {
		return err
	}
	fmt.Printf("recorded %s %s (%s)\n", e.Kind, e.Amount.Decimal(), e.ID)
	return nil
}

func (c *listCmd) Run() error {
	ctx := context.Background()
	led, cleanup, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	entries := led.Entries()
	if c.Query != "" {
		entries = report.SearchNotes(entries, c.Query)
	}
	entries = report.RecentEntries(entries, c.Limit)

	for _, e := range entries {
		label := ""
		switch {
		case e.Expense != nil:
			label = e.Expense.Category
		case e.Saving != nil:
			label = string(e.Saving.Currency) + " " + e.Saving.Delta.Decimal()
		case e.Investment != nil:
			label = string(e.Investment.Type)
		}
		fmt.Printf("%s  %-10s  %10s  %-16s  %s\n",
			e.Date.Format("2006-01-02"), e.Kind, e.Amount.Decimal(), label, e.Note)
	}
	return nil
}

func (c *reportCmd) Run() error {
	ctx := context.Background()
	led, cleanup, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	ov := report.BuildOverview(led.Entries())

	fmt.Printf("income    %12s\n", ov.TotalIncome.Decimal())
	fmt.Printf("expense   %12s\n", ov.TotalExpense.Decimal())
	fmt.Printf("net       %12s\n", ov.NetBalance.Decimal())
	fmt.Printf("invested  %12s\n", ov.TotalInvested.Decimal())
	for _, st := range ov.Savings {
		fmt.Printf("saving %s %10s\n", st.Currency, st.Balance.Decimal())
	}
	for _, c := range ov.OverdrawnCurrencies {
		fmt.Printf("warning: %s balance is negative\n", c)
	}

	if len(ov.ExpenseShares) > 0 {
		fmt.Println("\nexpenses by category:")
		for i, g := range ov.ExpenseCategories {
			fmt.Printf("  %-20s %10s  %3d%%\n", g.Name, g.Amount.Decimal(), ov.ExpenseShares[i].Percent)
		}
	}
	if len(ov.InvestmentShares) > 0 {
		fmt.Println("\ninvestments by type:")
		for i, g := range ov.InvestmentTypes {
			fmt.Printf("  %-20s %10s  %3d%%\n", g.Name, g.Amount.Decimal(), ov.InvestmentShares[i].Percent)
		}
	}
	return nil
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return d
}

package main

import (
	"context"
	"fmt"
)

type goalCmd struct {
	Add  goalAddCmd  `cmd:"" help:"Add a checklist item."`
	List goalListCmd `cmd:"" help:"List checklist items."`
	Done goalDoneCmd `cmd:"" help:"Mark an item done (or not done with --undone)."`
	Rm   goalRmCmd   `cmd:"" help:"Remove an item."`
}

type goalAddCmd struct {
	Title string `arg:"" required:"" help:"What to buy."`
	Note  string `help:"Optional note."`
}

type goalListCmd struct{}

type goalDoneCmd struct {
	ID     string `arg:"" required:"" help:"Goal id."`
	Undone bool   `help:"Clear the done flag instead of setting it."`
}

type goalRmCmd struct {
	ID string `arg:"" required:"" help:"Goal id."`
}

func (c *goalAddCmd) Run() error {
	ctx := context.Background()
	led, cleanup, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	g, err := led.AddGoal(ctx, c.Title, c.Note)
	if err != nil {
		return err
	}
	fmt.Printf("added goal %q (%s)\n", g.Title, g.ID)
	return nil
}

func (c *goalListCmd) Run() error {
	ctx := context.Background()
	led, cleanup, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	for _, g := range led.Goals() {
		mark := " "
		if g.Done {
			mark = "x"
		}
		fmt.Printf("[%s] %s  %s\n", mark, g.ID, g.Title)
	}
	return nil
}

func (c *goalDoneCmd) Run() error {
	ctx := context.Background()
	led, cleanup, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	return led.SetGoalDone(ctx, c.ID, !c.Undone)
}

func (c *goalRmCmd) Run() error {
	ctx := context.Background()
	led, cleanup, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	return led.DeleteGoal(ctx, c.ID)
}

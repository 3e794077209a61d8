package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"TravelRecord/internal/cli/adapter"
	"TravelRecord/internal/cli/bootstrap"
	"TravelRecord/internal/config"
)

type addCmd struct{}

func (addCmd) Name() string        { return "add" }
func (addCmd) Description() string { return "Добавить одну запись (интерактивная форма)" }
func (addCmd) Usage() string {
	return "add [--date YYYY-MM-DD] [--title T] [--city C] [--country C] [--note N]"
}

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	date := fs.String("date", "", "дата поездки (YYYY-MM-DD)")
	title := fs.String("title", "", "заголовок записи")
	city := fs.String("city", "", "город")
	country := fs.String("country", "", "страна")
	note := fs.String("note", "", "заметка")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	form := adapter.NewForm()
	form.Set("date", *date)
	form.Set("title", *title)
	form.Set("city", *city)
	form.Set("country", *country)
	form.Set("note", *note)

	journal := bootstrap.NewJournal(cfg)
	body, err := journal.Submit(ctx, form)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, string(body))
	return nil
}

func init() { RegisterCmd(addCmd{}) }

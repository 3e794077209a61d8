package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"TravelRecord/internal/cli/bootstrap"
	"TravelRecord/internal/config"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "Показать все записи (новые сверху)" }
func (listCmd) Usage() string       { return "list" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	journal := bootstrap.NewJournal(cfg)
	if err := journal.Refresh(ctx); err != nil {
		return err
	}
	records := journal.View().Sorted()
	if len(records) == 0 {
		fmt.Fprintln(Out, "No records yet")
		return nil
	}
	w := tabwriter.NewWriter(Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTITLE\tCITY\tCOUNTRY\tNOTE")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.Date, r.Title, r.City, r.Country, r.Note)
	}
	return w.Flush()
}

func init() { RegisterCmd(listCmd{}) }

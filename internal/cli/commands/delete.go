package commands

import (
	"context"
	"fmt"

	"TravelRecord/internal/cli/bootstrap"
	"TravelRecord/internal/config"
)

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Удалить записи по идентификаторам" }
func (deleteCmd) Usage() string       { return "delete <id> [<id> ...]" }

func (deleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	journal := bootstrap.NewJournal(cfg)
	for _, id := range args {
		journal.View().Toggle(id)
	}
	if err := journal.DeleteSelected(ctx); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted %d record(s)\n", len(args))
	return nil
}

func init() { RegisterCmd(deleteCmd{}) }

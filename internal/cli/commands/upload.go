package commands

import (
	"context"
	"fmt"

	"TravelRecord/internal/cli/adapter"
	"TravelRecord/internal/cli/bootstrap"
	"TravelRecord/internal/config"
)

type uploadCmd struct{}

func (uploadCmd) Name() string        { return "upload" }
func (uploadCmd) Description() string { return "Загрузить записи из файла (.csv или .json)" }
func (uploadCmd) Usage() string       { return "upload <path>" }

func (uploadCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	file := adapter.NewFile()
	if err := file.Select(args[0]); err != nil {
		return err
	}
	journal := bootstrap.NewJournal(cfg)
	body, err := journal.Submit(ctx, file)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, string(body))
	return nil
}

func init() { RegisterCmd(uploadCmd{}) }

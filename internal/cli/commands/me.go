package commands

import (
	"context"
	"fmt"

	"TravelRecord/internal/cli/bootstrap"
	"TravelRecord/internal/config"
)

type meCmd struct{}

func (meCmd) Name() string        { return "me" }
func (meCmd) Description() string { return "Показать текущую сессию" }
func (meCmd) Usage() string       { return "me" }

func (meCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	email, ok, err := bootstrap.NewClient(cfg).Me(ctx)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(Out, "Not logged in")
		return nil
	}
	fmt.Fprintf(Out, "Logged in as %s\n", email)
	return nil
}

func init() { RegisterCmd(meCmd{}) }

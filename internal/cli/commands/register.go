package commands

import (
	"context"
	"fmt"

	"TravelRecord/internal/cli/bootstrap"
	"TravelRecord/internal/config"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Зарегистрировать нового пользователя" }
func (registerCmd) Usage() string       { return "register <email> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	client := bootstrap.NewClient(cfg)
	if err := client.Register(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Registered. Now run: login", args[0], "<password>")
	return nil
}

func init() { RegisterCmd(registerCmd{}) }

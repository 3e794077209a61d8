package commands

import (
	"context"
	"fmt"

	"TravelRecord/internal/cli/bootstrap"
	"TravelRecord/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Войти и сохранить сессионный токен" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	client := bootstrap.NewClient(cfg)
	token, err := client.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	store := bootstrap.SessionStore(cfg)
	if err := store.SaveToken(token); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	if err := store.SaveEmail(args[0]); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

func init() { RegisterCmd(loginCmd{}) }

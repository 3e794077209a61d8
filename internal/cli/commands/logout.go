package commands

import (
	"context"
	"fmt"

	"TravelRecord/internal/cli/bootstrap"
	"TravelRecord/internal/config"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Завершить сессию и удалить токен" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	// серверная сторона сессии завершается по возможности,
	// локальный токен удаляется в любом случае
	if err := bootstrap.NewClient(cfg).Logout(ctx); err != nil {
		fmt.Fprintf(Out, "server logout failed: %v\n", err)
	}
	if err := bootstrap.SessionStore(cfg).ClearToken(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }

package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"TravelRecord/internal/cli/adapter"
	"TravelRecord/internal/cli/bootstrap"
	"TravelRecord/internal/config"
)

// In — источник вставляемого текста, когда аргумент не передан.
// В тестах переназначается.
var In io.Reader = os.Stdin

type pasteCmd struct{}

func (pasteCmd) Name() string        { return "paste" }
func (pasteCmd) Description() string { return "Отправить записи JSON-текстом (аргумент или stdin)" }
func (pasteCmd) Usage() string       { return "paste [<json>]" }

func (pasteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	var text string
	if len(args) == 1 {
		text = args[0]
	} else {
		b, err := io.ReadAll(In)
		if err != nil {
			return err
		}
		text = string(b)
	}

	paste := adapter.NewPaste()
	paste.Set(text)

	journal := bootstrap.NewJournal(cfg)
	body, err := journal.Submit(ctx, paste)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, string(body))
	return nil
}

func init() { RegisterCmd(pasteCmd{}) }

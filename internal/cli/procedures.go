package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/noah-isme/unigov-client/internal/service"
)

func (a *App) proceduresCommand() *cobra.Command {
	return leaf("procedures", "administrative procedures, step by step", cobra.NoArgs, a.procedures)
}

func (a *App) procedures(_ context.Context, _ []string) error {
	view := service.NewProceduresService().List()
	if a.format == FormatJSON {
		return a.render(view.Data, nil)
	}
	a.printf("%s\n", service.ProceduresIntro)
	for _, p := range view.Data {
		a.printf("\n%s\n%s\n", p.Title, p.Description)
		for i, step := range p.Steps {
			a.printf("  %d. %s\n", i+1, step)
		}
	}
	return nil
}

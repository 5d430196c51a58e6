package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/noah-isme/unigov-client/internal/models"
	"github.com/noah-isme/unigov-client/internal/service"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
)

func (a *App) pollsCommand() *cobra.Command {
	pollService := func() *service.PollService {
		return service.NewPollService(a.client, a.validate, a.logger)
	}

	listPolls := func(ctx context.Context, _ []string) error {
		view := pollService().Load(ctx)
		if view.Err != nil {
			return view.Err
		}
		return a.render(view.Data, func(w io.Writer) {
			row(w, "POLL", "OPTION", "VOTES", "TEXT")
			for _, p := range view.Data {
				state := "closed"
				if p.Active {
					state = "open"
				}
				row(w, p.ID, "", p.TotalVotes(), fmt.Sprintf("%s [%s, ends %s]", p.Question, state, whenPtr(p.EndDate)))
				for _, o := range p.Options {
					row(w, "", o.ID, o.Votes, o.Text)
				}
			}
		})
	}

	var (
		req     models.CreatePollRequest
		endDate string
	)
	create := leaf("create", "open a poll", cobra.NoArgs, func(ctx context.Context, _ []string) error {
		if endDate != "" {
			ts, err := models.ParseTimestamp(endDate)
			if err != nil {
				return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid end date")
			}
			req.EndDate = &ts
		}
		poll, err := pollService().Create(ctx, req)
		if err != nil {
			return err
		}
		return a.report(poll, "created poll %d", poll.ID)
	})
	create.Flags().StringVar(&req.Question, "question", "", "question (required)")
	create.Flags().StringVar(&req.Description, "description", "", "description")
	create.Flags().StringArrayVar(&req.Options, "option", nil, "an option (repeat, at least two)")
	create.Flags().StringVar(&endDate, "end", "", "closing date")

	vote := leaf("vote <option-id>", "vote for a poll option", cobra.ExactArgs(1), func(ctx context.Context, args []string) error {
		optionID, err := parseID("polls vote", args[0])
		if err != nil {
			return err
		}
		poll, err := pollService().Vote(ctx, optionID)
		if err != nil {
			return err
		}
		return a.report(poll, "vote recorded, %d votes in total", poll.TotalVotes())
	})

	return group("polls", "list, create or vote in polls", listPolls,
		leaf("list", "list polls with their tallies", cobra.NoArgs, listPolls),
		create, vote,
	)
}

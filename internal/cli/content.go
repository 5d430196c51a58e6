package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/noah-isme/unigov-client/internal/models"
	"github.com/noah-isme/unigov-client/internal/service"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
)

func (a *App) eventsCommand() *cobra.Command {
	var all bool
	listEvents := func(ctx context.Context, _ []string) error {
		svc := service.NewAgendaService(a.client, a.validate, a.logger)
		var events []models.Event
		if all {
			var err error
			if events, err = svc.All(ctx); err != nil {
				return err
			}
		} else {
			view := svc.Load(ctx)
			if view.Err != nil {
				return view.Err
			}
			events = view.Data
		}
		return a.render(events, func(w io.Writer) {
			row(w, "ID", "TYPE", "START", "END", "LOCATION", "TITLE")
			for _, e := range events {
				location := "-"
				if e.Location != nil {
					location = *e.Location
				}
				row(w, e.ID, e.Type, when(e.StartTime), whenPtr(e.EndTime), location, e.Title)
			}
		})
	}
	list := leaf("list", "list upcoming events", cobra.NoArgs, listEvents)
	list.Flags().BoolVar(&all, "all", false, "include past events")

	var (
		req                         models.CreateEventRequest
		eventType, start, end, room string
	)
	create := leaf("create", "create an agenda event", cobra.NoArgs, func(ctx context.Context, _ []string) error {
		req.Type = models.EventType(eventType)
		if start != "" {
			ts, err := models.ParseTimestamp(start)
			if err != nil {
				return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid start time")
			}
			req.StartTime = ts
		}
		if end != "" {
			ts, err := models.ParseTimestamp(end)
			if err != nil {
				return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid end time")
			}
			req.EndTime = &ts
		}
		if room != "" {
			req.Location = &room
		}
		event, err := service.NewAgendaService(a.client, a.validate, a.logger).Create(ctx, req)
		if err != nil {
			return err
		}
		return a.report(event, "created event %d: %s", event.ID, event.Title)
	})
	create.Flags().StringVar(&req.Title, "title", "", "title (required)")
	create.Flags().StringVar(&req.Description, "description", "", "description")
	create.Flags().StringVar(&eventType, "type", string(models.EventTypeMeeting), "ACADEMIC, MEETING, EXAM or SOCIAL")
	create.Flags().StringVar(&start, "start", "", "start time, e.g. 2026-11-03T14:00")
	create.Flags().StringVar(&end, "end", "", "end time")
	create.Flags().StringVar(&room, "location", "", "location")

	return group("events", "list or create agenda events", listEvents, list, create)
}

func (a *App) announcementsCommand() *cobra.Command {
	listAnnouncements := func(ctx context.Context, _ []string) error {
		view := service.NewAnnouncementService(a.client, a.validate, a.logger).Load(ctx)
		if view.Err != nil {
			return view.Err
		}
		return a.render(view.Data, func(w io.Writer) {
			row(w, "ID", "DATE", "PRIORITY", "AUDIENCE", "AUTHOR", "TITLE")
			for _, an := range view.Data {
				row(w, an.ID, orDash(an.Date), orDash(string(an.Priority)), orDash(an.Audience), orDash(an.Author), an.Title)
			}
		})
	}

	var (
		form       models.AnnouncementForm
		attachment string
	)
	publish := leaf("publish", "publish an announcement", cobra.NoArgs, func(ctx context.Context, _ []string) error {
		if attachment != "" {
			f, err := os.Open(attachment)
			if err != nil {
				return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "attachment cannot be read")
			}
			defer f.Close()
			form.File = &models.Attachment{Filename: filepath.Base(attachment), Content: f}
		}
		created, err := service.NewAnnouncementService(a.client, a.validate, a.logger).Publish(ctx, form)
		if err != nil {
			return err
		}
		return a.report(created, "published announcement %d (%d words)", created.ID, service.WordCount(created.Content))
	})
	flags := publish.Flags()
	flags.StringVar(&form.Title, "title", "", "title (required)")
	flags.StringVar(&form.Content, "content", "", "content (required)")
	flags.BoolVar(&form.Urgent, "urgent", false, "mark as urgent")
	flags.StringVar(&form.Audience, "audience", models.AudienceAll, "all, department or staff")
	flags.StringSliceVar(&form.Departments, "department", nil, "target department (repeatable)")
	flags.StringSliceVar(&form.Years, "year", nil, "target study year (repeatable)")
	flags.BoolVar(&form.AllowComments, "allow-comments", false, "allow comments")
	flags.BoolVar(&form.PushNotification, "push", false, "send a push notification")
	flags.StringVar(&attachment, "file", "", "attachment path")

	return group("announcements", "list or publish announcements", listAnnouncements,
		leaf("list", "list announcements", cobra.NoArgs, listAnnouncements),
		publish,
	)
}

func (a *App) decisionsCommand() *cobra.Command {
	decisionService := func() *service.DecisionService {
		return service.NewDecisionService(a.client, a.validate, a.logger)
	}
	printOne := func(d *models.Decision) error {
		return a.render(d, func(w io.Writer) {
			row(w, "ID", d.ID)
			row(w, "TITLE", d.Title)
			row(w, "CATEGORY", orDash(d.Category))
			row(w, "STATUS", orDash(d.Status))
			row(w, "CREATED", when(d.CreatedAt))
			row(w, "CONTENT", d.Content)
		})
	}
	decisionFlags := func(cmd *cobra.Command) *models.DecisionRequest {
		req := &models.DecisionRequest{}
		cmd.Flags().StringVar(&req.Title, "title", "", "title (required)")
		cmd.Flags().StringVar(&req.Content, "content", "", "content (required)")
		cmd.Flags().StringVar(&req.Category, "category", "", "category")
		cmd.Flags().StringVar(&req.Status, "status", "", "status, e.g. ADOPTED")
		return req
	}

	listDecisions := func(ctx context.Context, _ []string) error {
		view := decisionService().List(ctx)
		if view.Err != nil {
			return view.Err
		}
		return a.render(view.Data, func(w io.Writer) {
			row(w, "ID", "CREATED", "STATUS", "CATEGORY", "TITLE")
			for _, d := range view.Data {
				row(w, d.ID, when(d.CreatedAt), orDash(d.Status), orDash(d.Category), d.Title)
			}
		})
	}

	show := leaf("show <id>", "show one decision", cobra.ExactArgs(1), func(ctx context.Context, args []string) error {
		id, err := parseID("decisions show", args[0])
		if err != nil {
			return err
		}
		d, err := decisionService().Get(ctx, id)
		if err != nil {
			return err
		}
		return printOne(d)
	})

	remove := leaf("delete <id>", "delete a decision", cobra.ExactArgs(1), func(ctx context.Context, args []string) error {
		id, err := parseID("decisions delete", args[0])
		if err != nil {
			return err
		}
		if err := decisionService().Delete(ctx, id); err != nil {
			return err
		}
		a.printf("deleted decision %d\n", id)
		return nil
	})

	var createReq *models.DecisionRequest
	create := leaf("create", "record a decision", cobra.NoArgs, func(ctx context.Context, _ []string) error {
		d, err := decisionService().Create(ctx, *createReq)
		if err != nil {
			return err
		}
		return printOne(d)
	})
	createReq = decisionFlags(create)

	var updateReq *models.DecisionRequest
	update := leaf("update <id>", "replace a decision", cobra.ExactArgs(1), func(ctx context.Context, args []string) error {
		id, err := parseID("decisions update", args[0])
		if err != nil {
			return err
		}
		d, err := decisionService().Update(ctx, id, *updateReq)
		if err != nil {
			return err
		}
		return printOne(d)
	})
	updateReq = decisionFlags(update)

	return group("decisions", "council decisions CRUD", listDecisions,
		leaf("list", "list decisions", cobra.NoArgs, listDecisions),
		show, create, update, remove,
	)
}

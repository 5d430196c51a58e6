package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/noah-isme/unigov-client/internal/models"
	"github.com/noah-isme/unigov-client/internal/service"
	"github.com/noah-isme/unigov-client/pkg/export"
)

func (a *App) complaintService() *service.ComplaintService {
	return service.NewComplaintService(a.client, a.validate, a.logger)
}

func (a *App) complaintsCommand() *cobra.Command {
	var mine bool
	listComplaints := func(ctx context.Context, _ []string) error {
		view := a.complaintService().List(ctx, mine)
		if view.Err != nil {
			return view.Err
		}
		return a.render(view.Data, func(w io.Writer) {
			row(w, "ID", "CREATED", "STATUS", "PRIORITY", "CATEGORY", "TITLE")
			for _, c := range view.Data {
				row(w, c.ID, when(c.CreatedAt), c.Status, orDash(c.Priority), orDash(c.Category), truncate(c.Title, 48))
			}
		})
	}
	list := leaf("list", "list complaints", cobra.NoArgs, listComplaints)
	list.Flags().BoolVar(&mine, "mine", false, "only complaints I filed")

	show := leaf("show <id>", "show one complaint", cobra.ExactArgs(1), func(ctx context.Context, args []string) error {
		view := a.complaintService().Detail(ctx, args[0])
		if view.Err != nil {
			return view.Err
		}
		return a.printComplaint(view.Data)
	})

	var req models.CreateComplaintRequest
	create := leaf("create", "file a complaint", cobra.NoArgs, func(ctx context.Context, _ []string) error {
		created, err := a.complaintService().Create(ctx, req)
		if err != nil {
			return err
		}
		return a.report(created, "filed complaint %s", created.ID)
	})
	create.Flags().StringVar(&req.Title, "title", "", "title (required)")
	create.Flags().StringVar(&req.Description, "description", "", "description (required)")
	create.Flags().StringVar(&req.Category, "category", "", "category (required)")
	create.Flags().StringVar(&req.Priority, "priority", "", "URGENT, HIGH, MEDIUM or LOW")

	var status, reply string
	setStatus := leaf("status <id>", "move a complaint through its workflow", cobra.ExactArgs(1), func(ctx context.Context, args []string) error {
		updated, err := a.complaintService().UpdateStatus(ctx, args[0], models.ComplaintStatus(status), reply)
		if err != nil {
			return err
		}
		return a.report(updated, "complaint %s is now %s", updated.ID, updated.Status)
	})
	setStatus.Flags().StringVar(&status, "status", "", "PENDING, IN_PROGRESS or RESOLVED")
	setStatus.Flags().StringVar(&reply, "response", "", "response shown to the student")

	remove := leaf("delete <id>", "delete a complaint", cobra.ExactArgs(1), func(ctx context.Context, args []string) error {
		if err := a.complaintService().Delete(ctx, args[0]); err != nil {
			return err
		}
		a.printf("deleted complaint %s\n", args[0])
		return nil
	})

	var rawFormat, outPath string
	exportCmd := leaf("export <id>", "export a complaint as csv or pdf", cobra.ExactArgs(1), func(ctx context.Context, args []string) error {
		format, err := export.ParseFormat(rawFormat)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		file, err := a.complaintService().Export(ctx, args[0], format)
		if err != nil {
			return err
		}
		target := outPath
		if target == "" {
			target = file.Filename
		}
		if target == "-" {
			_, err := a.stdout.Write(file.Content)
			return err
		}
		if err := os.WriteFile(target, file.Content, 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		a.printf("wrote %s (%d bytes)\n", target, len(file.Content))
		return nil
	})
	exportCmd.Flags().StringVarP(&rawFormat, "format", "f", string(export.FormatPDF), "csv or pdf")
	exportCmd.Flags().StringVar(&outPath, "out", "", "output file (defaults to complaint-<id>.<format>)")

	return group("complaints", "list, file, update, delete or export complaints", listComplaints,
		list, show, create, setStatus, remove, exportCmd)
}

func (a *App) printComplaint(c *models.Complaint) error {
	return a.render(c, func(w io.Writer) {
		row(w, "ID", c.ID)
		row(w, "TITLE", c.Title)
		row(w, "STATUS", c.Status)
		row(w, "PRIORITY", orDash(c.Priority))
		row(w, "CATEGORY", orDash(c.Category))
		row(w, "STUDENT", orDash(c.StudentName))
		row(w, "DEPARTMENT", orDash(c.StudentDepartment))
		row(w, "CREATED", when(c.CreatedAt))
		row(w, "DESCRIPTION", c.Description)
		row(w, "RESPONSE", orDash(c.Response))
	})
}

package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/noah-isme/unigov-client/internal/models"
	"github.com/noah-isme/unigov-client/internal/service"
)

func (a *App) messagesCommand() *cobra.Command {
	messageService := func() *service.MessageService {
		return service.NewMessageService(a.client, a.validate, a.logger)
	}

	listConversations := func(ctx context.Context, _ []string) error {
		view := messageService().Conversations(ctx)
		if view.Err != nil {
			return view.Err
		}
		return a.render(view.Data, func(w io.Writer) {
			row(w, "USER", "NAME", "UNREAD", "LAST")
			for _, c := range view.Data {
				last := "-"
				if c.LastMessage != nil {
					last = when(c.LastMessage.Timestamp) + "  " + truncate(c.LastMessage.Content, 40)
				}
				row(w, c.User.ID, orDash(c.User.FullName), c.UnreadCount, last)
			}
		})
	}

	history := leaf("history <user-id>", "show the conversation with a user", cobra.ExactArgs(1), func(ctx context.Context, args []string) error {
		userID, err := parseID("messages history", args[0])
		if err != nil {
			return err
		}
		view := messageService().History(ctx, userID)
		if view.Err != nil {
			return view.Err
		}
		return a.render(view.Data, func(w io.Writer) {
			row(w, "ID", "AT", "FROM", "READ", "CONTENT")
			for _, m := range view.Data {
				row(w, m.ID, when(m.Timestamp), m.SenderID, m.IsRead, m.Content)
			}
		})
	})

	var req models.SendMessageRequest
	send := leaf("send", "send a direct message", cobra.NoArgs, func(ctx context.Context, _ []string) error {
		msg, err := messageService().Send(ctx, req)
		if err != nil {
			return err
		}
		return a.report(msg, "sent message %d", msg.ID)
	})
	send.Flags().Int64Var(&req.RecipientID, "to", 0, "recipient user id (required)")
	send.Flags().StringVar(&req.Content, "content", "", "message text (required)")

	read := leaf("read <user-id>", "mark a conversation as read", cobra.ExactArgs(1), func(ctx context.Context, args []string) error {
		userID, err := parseID("messages read", args[0])
		if err != nil {
			return err
		}
		if err := messageService().MarkRead(ctx, userID); err != nil {
			return err
		}
		a.printf("conversation with %d marked as read\n", userID)
		return nil
	})

	remove := leaf("delete <message-id>", "delete a message", cobra.ExactArgs(1), func(ctx context.Context, args []string) error {
		id, err := parseID("messages delete", args[0])
		if err != nil {
			return err
		}
		if err := messageService().Delete(ctx, id); err != nil {
			return err
		}
		a.printf("deleted message %d\n", id)
		return nil
	})

	unread := leaf("unread", "count unread messages", cobra.NoArgs, func(ctx context.Context, _ []string) error {
		count := messageService().Unread(ctx)
		return a.report(models.UnreadCount{Count: count}, "%d unread", count)
	})

	return group("messages", "conversations, history, send, read, delete, unread", listConversations,
		leaf("list", "list conversations", cobra.NoArgs, listConversations),
		history, send, read, remove, unread,
	)
}

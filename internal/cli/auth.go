package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/noah-isme/unigov-client/internal/models"
	"github.com/noah-isme/unigov-client/internal/service"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
)

func (a *App) authService() *service.AuthService {
	return service.NewAuthService(a.client, a.store, a.validate, a.logger)
}

func (a *App) loginCommand() *cobra.Command {
	var username, password string
	cmd := leaf("login", "sign in and persist the session", cobra.NoArgs, func(ctx context.Context, _ []string) error {
		if password == "" {
			password = os.Getenv("UNIGOV_PASSWORD")
		}
		sess, err := a.authService().Login(ctx, username, password)
		if err != nil {
			return err
		}
		a.printf("signed in as %s (%s)\n", sess.Username, sess.Role)
		return nil
	})
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (read from UNIGOV_PASSWORD when empty)")
	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return leaf("logout", "remove the persisted session", cobra.NoArgs, a.logout)
}

func (a *App) logout(ctx context.Context, _ []string) error {
	if err := a.authService().Clear(ctx); err != nil {
		return err
	}
	a.printf("signed out\n")
	return nil
}

func (a *App) sessionCommand() *cobra.Command {
	return group("session", "show, set or clear the persisted session", a.showSession,
		leaf("show", "show the persisted session and its token claims", cobra.NoArgs, a.showSession),
		a.sessionSetCommand(),
		leaf("clear", "remove the persisted session", cobra.NoArgs, a.logout),
	)
}

func (a *App) showSession(ctx context.Context, _ []string) error {
	auth := a.authService()
	sess, err := auth.Current(ctx)
	if err != nil {
		if errors.Is(err, appErrors.ErrSessionMissing) {
			a.printf("no active session\n")
			return nil
		}
		return err
	}
	info, infoErr := auth.Describe(sess.Token)
	view := struct {
		*models.Session
		Token   string               `json:"token,omitempty"`
		Claims  *service.SessionInfo `json:"claims,omitempty"`
		Decoded string               `json:"decodeError,omitempty"`
	}{Session: sess, Token: maskToken(sess.Token), Claims: info}
	if infoErr != nil {
		view.Decoded = infoErr.Error()
	}
	return a.render(view, func(w io.Writer) {
		row(w, "USERNAME", sess.Username)
		row(w, "NAME", orDash(sess.FullName))
		row(w, "ROLE", sess.Role)
		row(w, "TOKEN", maskToken(sess.Token))
		if info != nil {
			row(w, "SUBJECT", orDash(info.Subject))
			if !info.ExpiresAt.IsZero() {
				row(w, "EXPIRES", info.ExpiresAt.Local().Format("2006-01-02 15:04"))
				row(w, "EXPIRED", info.Expired)
			}
		}
	})
}

func (a *App) sessionSetCommand() *cobra.Command {
	var sess models.Session
	var role string
	cmd := leaf("set", "persist a session record without signing in", cobra.NoArgs, func(ctx context.Context, _ []string) error {
		sess.Role = models.UserRole(strings.ToUpper(role))
		if err := a.authService().SetSession(ctx, &sess); err != nil {
			return err
		}
		a.printf("session saved\n")
		return nil
	})
	cmd.Flags().StringVar(&sess.Token, "token", "", "bearer token")
	cmd.Flags().StringVar(&sess.Username, "username", "", "username")
	cmd.Flags().StringVar(&sess.FullName, "full-name", "", "full name")
	cmd.Flags().StringVar(&role, "role", string(models.RoleStudent), "ROLE_ADMIN, ROLE_DELEGATE or ROLE_STUDENT")
	cmd.Flags().StringVar(&sess.ProfilePhoto, "photo", "", "profile photo name or URL")
	return cmd
}

func (a *App) currentSession(ctx context.Context) (*models.Session, error) {
	return a.authService().Current(ctx)
}

func maskToken(token string) string {
	if len(token) <= 12 {
		return strings.Repeat("*", len(token))
	}
	return fmt.Sprintf("%s…%s", token[:6], token[len(token)-4:])
}

package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/noah-isme/unigov-client/internal/models"
	"github.com/noah-isme/unigov-client/internal/service"
)

func (a *App) profileService() *service.ProfileService {
	return service.NewProfileService(a.client, a.validate, a.logger)
}

func (a *App) whoamiCommand() *cobra.Command {
	return leaf("whoami", "show the signed-in user's profile", cobra.NoArgs, a.whoami)
}

func (a *App) whoami(ctx context.Context, _ []string) error {
	svc := a.profileService()
	view := svc.Me(ctx)
	if view.Err != nil {
		return view.Err
	}
	return a.printUser(svc, view.Data)
}

func (a *App) profileCommand() *cobra.Command {
	var req models.UpdateProfileRequest
	update := leaf("update", "update the profile", cobra.NoArgs, func(ctx context.Context, _ []string) error {
		svc := a.profileService()
		user, err := svc.Update(ctx, req)
		if err != nil {
			return err
		}
		return a.printUser(svc, user)
	})
	update.Flags().StringVar(&req.FullName, "full-name", "", "full name (required)")
	update.Flags().StringVar(&req.Email, "email", "", "e-mail address")
	update.Flags().StringVar(&req.Department, "department", "", "department")
	update.Flags().StringVar(&req.Year, "year", "", "study year")

	photo := leaf("photo <path>", "upload a profile photo", cobra.ExactArgs(1), func(ctx context.Context, args []string) error {
		svc := a.profileService()
		user, err := svc.UploadPhoto(ctx, args[0])
		if err != nil {
			return err
		}
		return a.printUser(svc, user)
	})

	return group("profile", "update the profile or upload a photo", a.whoami,
		leaf("show", "show the signed-in user's profile", cobra.NoArgs, a.whoami),
		update,
		photo,
	)
}

func (a *App) printUser(svc *service.ProfileService, user *models.User) error {
	return a.render(user, func(w io.Writer) {
		row(w, "ID", user.ID)
		row(w, "USERNAME", user.Username)
		row(w, "NAME", orDash(user.FullName))
		row(w, "EMAIL", orDash(user.Email))
		row(w, "ROLE", user.Role)
		row(w, "DEPARTMENT", orDash(user.Department))
		row(w, "YEAR", orDash(user.Year))
		row(w, "PHOTO", orDash(svc.PhotoURL(user.ProfilePhoto)))
	})
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/smartfarm/internal/cli/formatter"
	"github.com/alexanderramin/smartfarm/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage your gardening profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileSetCmd(app),
		newProfileClimateCmd(app),
		newProfileResetCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Current(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatProfile(p))
			if !p.IsOnboarded() {
				fmt.Fprintln(out, formatter.Dim("Run `smartfarm profile set` to finish onboarding."))
			}
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var name, location string
	var exp domain.Experience
	var garden domain.GardenType

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields, or fill in the onboarding form",
		Long: `Update profile fields from flags. Fields not passed keep their stored value.
Without flags on a terminal, an interactive form is shown instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Profiles.Current(ctx)
			if err != nil {
				return err
			}

			fl := cmd.Flags()
			switch {
			case fl.NFlag() > 0:
				if fl.Changed("name") {
					p.Name = strings.TrimSpace(name)
				}
				if fl.Changed("location") {
					p.Location = strings.TrimSpace(location)
				}
				if fl.Changed("experience") {
					p.Experience = exp
				}
				if fl.Changed("garden") {
					p.GardenType = garden
				}
			case app.interactive():
				in := newOnboardingInput(p)
				if err := newOnboardingForm(in).RunWithContext(ctx); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
						return nil
					}
					return err
				}
				p = in.apply(p)
			default:
				return errors.New("nothing to update: pass --name, --location, --experience or --garden")
			}

			if err := app.Profiles.Save(ctx, &p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your name")
	cmd.Flags().StringVar(&location, "location", "", "City or region of your garden")
	cmd.Flags().Var(experienceValue{&exp}, "experience", "Experience level: "+joinOptions(domain.ExperienceOptions))
	cmd.Flags().Var(gardenValue{&garden}, "garden", "Garden type: "+joinOptions(domain.GardenTypeOptions))

	return cmd
}

func newProfileClimateCmd(app *App) *cobra.Command {
	var lat float64

	cmd := &cobra.Command{
		Use:   "climate",
		Short: "Infer climate zone and hemisphere from a latitude",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.DetectClimate(cmd.Context(), lat)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Climate: %s (%s hemisphere)\n", p.ClimateZone, p.Hemisphere)
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude in degrees, -90 to 90")
	_ = cmd.MarkFlagRequired("lat")

	return cmd
}

func newProfileResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the profile and the chat history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !yes {
				confirmed, err := confirmReset(ctx, app)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}
			if err := app.Profiles.Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile and chat history deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func confirmReset(ctx context.Context, app *App) (bool, error) {
	if !app.interactive() {
		return false, errors.New("refusing to reset without confirmation: pass --yes")
	}
	var confirmed bool
	err := wizardConfirm("Delete your profile and all chat history?", &confirmed).RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return confirmed, err
}

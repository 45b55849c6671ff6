package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-contact-keeper/internal/client"
)

func (c *cli) enrollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enroll",
		Short: "Obtain a new identity and replace local contacts with the server's dataset",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, app client.Client, _ []string) error {
			return app.Enroll(ctx)
		}),
	}
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List contacts with their sync state",
		Args:    cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, app client.Client, _ []string) error {
			return app.List(ctx)
		}),
	}
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <localID>",
		Short: "Show a single contact",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(ctx context.Context, app client.Client, args []string) error {
			id, err := parseLocalID(args[0])
			if err != nil {
				return err
			}
			return app.Show(ctx, id)
		}),
	}
}

func (c *cli) addCmd() *cobra.Command {
	var flags contactFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a contact locally and push it when possible",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = c.run(func(ctx context.Context, app client.Client, _ []string) error {
		return app.Add(ctx, flags.fields(cmd))
	})

	flags.register(cmd)
	_ = cmd.MarkFlagRequired(flagName)

	return cmd
}

func (c *cli) editCmd() *cobra.Command {
	var flags contactFlags

	cmd := &cobra.Command{
		Use:   "edit <localID>",
		Short: "Change the given fields of a contact",
		Long:  "Change the given fields of a contact. Fields without a flag keep their value; an empty value clears an optional field.",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = c.run(func(ctx context.Context, app client.Client, args []string) error {
		id, err := parseLocalID(args[0])
		if err != nil {
			return err
		}
		return app.Edit(ctx, id, flags.fields(cmd))
	})

	flags.register(cmd)

	return cmd
}

func (c *cli) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <localID>",
		Aliases: []string{"remove"},
		Short:   "Delete a contact here and on the server",
		Args:    cobra.ExactArgs(1),
		RunE: c.run(func(ctx context.Context, app client.Client, args []string) error {
			id, err := parseLocalID(args[0])
			if err != nil {
				return err
			}
			return app.Remove(ctx, id)
		}),
	}
}

func (c *cli) syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Push pending deletions, creations and edits to the server",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, app client.Client, _ []string) error {
			return app.Sync(ctx)
		}),
	}
}

func (c *cli) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep syncing in the background until interrupted",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, app client.Client, _ []string) error {
			return app.Watch(ctx)
		}),
	}
}

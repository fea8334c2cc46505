package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/frontegg-community/frontegg-go/pkg/frontegg"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage users",
		Long:    "List, create, inspect, and delete users",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersCreateCommand())
	cmd.AddCommand(newUsersDeleteCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	var (
		tenantID string
		pageSize int
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Long: `List users across all tenants, or within one tenant with --tenant.
Pages are fetched on demand; --limit stops the listing early without
fetching the remaining pages.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			opts := &frontegg.ListOptions{PageSize: pageSize}
			if tenantID != "" {
				id, err := uuid.Parse(tenantID)
				if err != nil {
					return fmt.Errorf("invalid tenant ID %q: %w", tenantID, err)
				}
				opts.TenantID = &id
			}

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			var users []frontegg.User
			iter := client.Users().List(ctx, opts)
			for iter.HasNext() {
				user, err := iter.Next()
				if err != nil {
					return fmt.Errorf("listing users: %w", err)
				}
				users = append(users, user)
				if limit > 0 && len(users) >= limit {
					break
				}
			}

			switch viper.GetString("output") {
			case "json":
				return outputJSON(users)
			case "yaml":
				return outputYAML(users)
			default:
				return renderUsersTable(users)
			}
		},
	}

	cmd.Flags().StringVarP(&tenantID, "tenant", "t", "", "restrict the listing to one tenant")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "users fetched per request (default 50)")
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many users (0 means no limit)")

	return cmd
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid user ID %q: %w", args[0], err)
			}

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			cache, err := openCache()
			if err != nil {
				return fmt.Errorf("opening cache: %w", err)
			}

			user, err := cachedLookup(ctx, cache, "users/"+id.String(), viper.GetDuration("cache.ttl"),
				func() (*frontegg.User, error) {
					return client.Users().Get(ctx, id)
				})
			if err != nil {
				return fmt.Errorf("getting user: %w", err)
			}

			switch viper.GetString("output") {
			case "json":
				return outputJSON(user)
			case "yaml":
				return outputYAML(user)
			default:
				return renderUsersTable([]frontegg.User{*user})
			}
		},
	}
}

func newUsersCreateCommand() *cobra.Command {
	var (
		name            string
		metadataJSON    string
		skipInviteEmail bool
	)

	cmd := &cobra.Command{
		Use:   "create TENANT_ID EMAIL",
		Short: "Create a user in a tenant",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			tenantID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid tenant ID %q: %w", args[0], err)
			}

			req := &frontegg.UserRequest{
				TenantID:        tenantID,
				Name:            name,
				Email:           args[1],
				SkipInviteEmail: skipInviteEmail,
			}

			if metadataJSON != "" {
				var metadata map[string]any
				if err := json.Unmarshal([]byte(metadataJSON), &metadata); err != nil {
					return fmt.Errorf("invalid metadata document: %w", err)
				}
				req.Metadata = metadata
			}

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			created, err := client.Users().Create(ctx, req)
			if err != nil {
				return fmt.Errorf("creating user: %w", err)
			}

			switch viper.GetString("output") {
			case "json":
				return outputJSON(created)
			case "yaml":
				return outputYAML(created)
			default:
				fmt.Printf("Created user %s (%s)\n", created.ID, created.Email)

				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "name of the user")
	cmd.Flags().StringVar(&metadataJSON, "metadata", "", "metadata document as JSON")
	cmd.Flags().BoolVar(&skipInviteEmail, "skip-invite-email", false, "do not send the invitation email")

	return cmd
}

func newUsersDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete USER_ID",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid user ID %q: %w", args[0], err)
			}

			if !force {
				fmt.Printf("Really delete user %s? (y/N): ", id)

				var response string
				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Cancelled")

					return nil
				}
			}

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			if err := client.Users().Delete(ctx, id); err != nil {
				return fmt.Errorf("deleting user: %w", err)
			}

			fmt.Printf("Deleted user %s\n", id)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}

func renderUsersTable(users []frontegg.User) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Email", "Name", "Tenants", "Created")

	for _, user := range users {
		tenantIDs := make([]string, 0, len(user.Tenants))
		for _, binding := range user.Tenants {
			tenantIDs = append(tenantIDs, binding.TenantID.String())
		}
		_ = table.Append(
			user.ID.String(),
			user.Email,
			user.Name,
			strings.Join(tenantIDs, ", "),
			user.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	fmt.Printf("\nTotal: %d users\n", len(users))

	return nil
}

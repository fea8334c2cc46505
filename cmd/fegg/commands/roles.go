package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRolesCommand creates the roles command group.
func NewRolesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "roles",
		Aliases: []string{"role"},
		Short:   "Inspect roles and permissions",
	}

	cmd.AddCommand(newRolesListCommand())
	cmd.AddCommand(newRolesPermissionsCommand())

	return cmd
}

func newRolesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			roles, err := client.Roles().List(ctx)
			if err != nil {
				return fmt.Errorf("listing roles: %w", err)
			}

			switch viper.GetString("output") {
			case "json":
				return outputJSON(roles)
			case "yaml":
				return outputYAML(roles)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Key", "Name", "Level", "Default", "Permissions")

				for _, role := range roles {
					_ = table.Append(
						role.ID.String(),
						role.Key,
						role.Name,
						fmt.Sprintf("%d", role.Level),
						fmt.Sprintf("%t", role.IsDefault),
						fmt.Sprintf("%d", len(role.PermissionIDs)),
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("rendering table: %w", err)
				}

				return nil
			}
		},
	}
}

func newRolesPermissionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "permissions",
		Short: "List all permissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			permissions, err := client.Roles().ListPermissions(ctx)
			if err != nil {
				return fmt.Errorf("listing permissions: %w", err)
			}

			switch viper.GetString("output") {
			case "json":
				return outputJSON(permissions)
			case "yaml":
				return outputYAML(permissions)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Key", "Name", "Category")

				for _, permission := range permissions {
					_ = table.Append(
						permission.ID.String(),
						permission.Key,
						permission.Name,
						permission.CategoryID,
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("rendering table: %w", err)
				}

				return nil
			}
		},
	}
}

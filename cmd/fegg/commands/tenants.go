package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/frontegg-community/frontegg-go/pkg/frontegg"
)

// NewTenantsCommand creates the tenants command group.
func NewTenantsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tenants",
		Aliases: []string{"tenant"},
		Short:   "Manage tenants",
		Long:    "List, create, inspect, and delete tenants, and edit tenant metadata",
	}

	cmd.AddCommand(newTenantsListCommand())
	cmd.AddCommand(newTenantsGetCommand())
	cmd.AddCommand(newTenantsCreateCommand())
	cmd.AddCommand(newTenantsDeleteCommand())
	cmd.AddCommand(newTenantsSetMetadataCommand())
	cmd.AddCommand(newTenantsDeleteMetadataCommand())

	return cmd
}

func newTenantsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tenants",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			tenants, err := client.Tenants().List(ctx)
			if err != nil {
				return fmt.Errorf("listing tenants: %w", err)
			}

			switch viper.GetString("output") {
			case "json":
				return outputJSON(tenants)
			case "yaml":
				return outputYAML(tenants)
			default:
				return renderTenantsTable(tenants)
			}
		},
	}
}

func newTenantsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TENANT_ID",
		Short: "Show a tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid tenant ID %q: %w", args[0], err)
			}

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			cache, err := openCache()
			if err != nil {
				return fmt.Errorf("opening cache: %w", err)
			}

			tenant, err := cachedLookup(ctx, cache, "tenants/"+id.String(), viper.GetDuration("cache.ttl"),
				func() (*frontegg.Tenant, error) {
					return client.Tenants().Get(ctx, id)
				})
			if err != nil {
				return fmt.Errorf("getting tenant: %w", err)
			}

			return renderTenant(tenant)
		},
	}
}

func newTenantsCreateCommand() *cobra.Command {
	var (
		tenantID     string
		metadataJSON string
		creatorName  string
		creatorEmail string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			req := &frontegg.TenantRequest{
				ID:           uuid.New(),
				Name:         args[0],
				CreatorName:  creatorName,
				CreatorEmail: creatorEmail,
			}

			if tenantID != "" {
				id, err := uuid.Parse(tenantID)
				if err != nil {
					return fmt.Errorf("invalid tenant ID %q: %w", tenantID, err)
				}
				req.ID = id
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

			tenant, err := client.Tenants().Create(ctx, req)
			if err != nil {
				return fmt.Errorf("creating tenant: %w", err)
			}

			return renderTenant(tenant)
		},
	}

	cmd.Flags().StringVar(&tenantID, "id", "", "tenant ID (defaults to a random UUID)")
	cmd.Flags().StringVar(&metadataJSON, "metadata", "", "metadata document as JSON")
	cmd.Flags().StringVar(&creatorName, "creator-name", "", "name of the person creating the tenant")
	cmd.Flags().StringVar(&creatorEmail, "creator-email", "", "email of the person creating the tenant")

	return cmd
}

func newTenantsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete TENANT_ID",
		Short: "Delete a tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid tenant ID %q: %w", args[0], err)
			}

			if !force {
				fmt.Printf("Really delete tenant %s? (y/N): ", id)

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

			if err := client.Tenants().Delete(ctx, id); err != nil {
				return fmt.Errorf("deleting tenant: %w", err)
			}

			fmt.Printf("Deleted tenant %s\n", id)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}

func newTenantsSetMetadataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-metadata TENANT_ID METADATA_JSON",
		Short: "Merge a metadata document into a tenant",
		Long: `Merge a JSON metadata document into a tenant's metadata. Keys present
in the document overwrite existing values; keys omitted from the
document are left in place.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid tenant ID %q: %w", args[0], err)
			}

			var metadata map[string]any
			if err := json.Unmarshal([]byte(args[1]), &metadata); err != nil {
				return fmt.Errorf("invalid metadata document: %w", err)
			}

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			tenant, err := client.Tenants().SetMetadata(ctx, id, metadata)
			if err != nil {
				return fmt.Errorf("setting tenant metadata: %w", err)
			}

			return renderTenant(tenant)
		},
	}
}

func newTenantsDeleteMetadataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-metadata TENANT_ID KEY",
		Short: "Remove one key from a tenant's metadata",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid tenant ID %q: %w", args[0], err)
			}

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			tenant, err := client.Tenants().DeleteMetadata(ctx, id, args[1])
			if err != nil {
				return fmt.Errorf("deleting tenant metadata: %w", err)
			}

			return renderTenant(tenant)
		},
	}
}

func renderTenant(tenant *frontegg.Tenant) error {
	switch viper.GetString("output") {
	case "json":
		return outputJSON(tenant)
	case "yaml":
		return outputYAML(tenant)
	default:
		return renderTenantsTable([]frontegg.Tenant{*tenant})
	}
}

func renderTenantsTable(tenants []frontegg.Tenant) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Creator", "Created")

	for _, tenant := range tenants {
		creator := tenant.CreatorEmail
		if creator == "" {
			creator = tenant.CreatorName
		}
		_ = table.Append(
			tenant.ID.String(),
			tenant.Name,
			creator,
			tenant.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	fmt.Printf("\nTotal: %d tenants\n", len(tenants))

	return nil
}

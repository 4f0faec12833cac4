package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmeshcher/deliverus-owner/internal/model"
	"github.com/mmeshcher/deliverus-owner/internal/service"
)

func (a *App) addressesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addresses",
		Short: "Manage shipping addresses",
	}

	cmd.AddCommand(a.addressesListCmd())
	cmd.AddCommand(a.addressesAddCmd())
	cmd.AddCommand(a.addressesSetDefaultCmd())
	cmd.AddCommand(a.addressesDeleteCmd())

	return cmd
}

func (a *App) addressesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List shipping addresses of the logged in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			addresses, err := a.services.Addresses.List(cmd.Context(), a.token)
			if err != nil {
				return a.reportError(err)
			}
			printAddresses(addresses)
			return nil
		},
	}
}

func (a *App) addressesAddCmd() *cobra.Command {
	var payload service.AddressPayload

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new shipping address",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := a.services.Addresses.Create(cmd.Context(), a.token, payload)
			if err != nil {
				return a.reportError(err)
			}
			fmt.Printf("Address %s created\n", created.Alias)
			return nil
		},
	}

	cmd.Flags().StringVar(&payload.Alias, "alias", "", "short name of the address")
	cmd.Flags().StringVar(&payload.Street, "street", "", "street and number")
	cmd.Flags().StringVar(&payload.City, "city", "", "city")
	cmd.Flags().StringVar(&payload.Province, "province", "", "province")
	cmd.Flags().StringVar(&payload.ZipCode, "zip", "", "zip code")
	cmd.Flags().BoolVar(&payload.IsDefault, "default", false, "mark the address as default")

	return cmd
}

func (a *App) addressesSetDefaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-default <id>",
		Short: "Mark an address as the default one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "address id")
			if err != nil {
				return err
			}

			addresses, err := a.services.Addresses.SetDefault(cmd.Context(), a.token, id)
			if err != nil {
				return a.reportError(err)
			}

			if addr, ok := service.DefaultAddress(addresses); ok {
				fmt.Printf("Address %s set as default\n", addr.Alias)
			}
			printAddresses(addresses)
			return nil
		},
	}
}

func (a *App) addressesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a shipping address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "address id")
			if err != nil {
				return err
			}

			if !a.confirmDelete(fmt.Sprintf("Delete address %d?", id)) {
				fmt.Println("Deletion cancelled")
				return nil
			}

			addresses, err := a.services.Addresses.Delete(cmd.Context(), a.token, id)
			if err != nil {
				return a.reportError(err)
			}

			fmt.Printf("Address %d removed\n", id)
			printAddresses(addresses)
			return nil
		},
	}
}

func printAddresses(addresses []model.ShippingAddress) {
	if len(addresses) == 0 {
		fmt.Println("No addresses saved yet.")
		return
	}

	for _, addr := range addresses {
		marker := " "
		if addr.IsDefault {
			marker = "*"
		}
		fmt.Printf("%s %d  %s: %s, %s, %s, %s\n",
			marker, addr.ID, addr.Alias, addr.Street, addr.City, addr.Province, addr.ZipCode)
	}
}

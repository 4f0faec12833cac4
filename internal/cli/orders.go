package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmeshcher/deliverus-owner/internal/model"
	"github.com/mmeshcher/deliverus-owner/internal/service"
)

func (a *App) ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage restaurant orders",
	}

	cmd.AddCommand(a.ordersShowCmd())
	cmd.AddCommand(a.ordersEditCmd())
	cmd.AddCommand(a.ordersAdvanceCmd())

	return cmd
}

func (a *App) ordersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "order id")
			if err != nil {
				return err
			}

			order, err := a.services.Orders.Get(cmd.Context(), a.token, id)
			if err != nil {
				return a.reportError(err)
			}
			printOrder(*order)
			return nil
		},
	}
}

func (a *App) ordersEditCmd() *cobra.Command {
	var upd service.OwnerOrderUpdate

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update the address and price of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "order id")
			if err != nil {
				return err
			}

			order, err := a.services.Orders.UpdateByOwner(cmd.Context(), a.token, id, upd)
			if err != nil {
				return a.reportError(err)
			}

			fmt.Printf("Order %d updated successfully\n", order.ID)
			printOrder(*order)
			return nil
		},
	}

	cmd.Flags().StringVar(&upd.Address, "address", "", "delivery address")
	cmd.Flags().Float64Var(&upd.Price, "price", 0, "order price")

	return cmd
}

func (a *App) ordersAdvanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advance <id>",
		Short: "Advance an order to its next status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "order id")
			if err != nil {
				return err
			}

			// Текущий статус читается с сервера: выбор перехода
			// делает машина состояний, а не пользователь.
			order, err := a.services.Orders.Get(cmd.Context(), a.token, id)
			if err != nil {
				return a.reportError(err)
			}

			updated, err := a.services.Orders.AdvanceStatus(cmd.Context(), a.token, *order)
			if err != nil {
				return a.reportError(err)
			}

			fmt.Printf("Order %d advanced to %q\n", updated.ID, updated.Status)
			return nil
		},
	}
}

func printOrder(order model.Order) {
	fmt.Printf("%d  status: %s  address: %s  price: %.2f  restaurant: %d\n",
		order.ID, order.Status, order.Address, order.Price, order.RestaurantID)
}

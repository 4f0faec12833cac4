package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmeshcher/deliverus-owner/internal/model"
	"github.com/mmeshcher/deliverus-owner/internal/service"
)

func (a *App) restaurantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restaurants",
		Short: "Manage restaurants of the logged in owner",
	}

	cmd.AddCommand(a.restaurantsListCmd())
	cmd.AddCommand(a.restaurantsDetailCmd())
	cmd.AddCommand(a.restaurantsCategoriesCmd())
	cmd.AddCommand(a.restaurantsCreateCmd())
	cmd.AddCommand(a.restaurantsUpdateCmd())
	cmd.AddCommand(a.restaurantsDeleteCmd())
	cmd.AddCommand(a.restaurantsOrdersCmd())
	cmd.AddCommand(a.restaurantsAnalyticsCmd())
	cmd.AddCommand(a.restaurantsDashboardCmd())

	return cmd
}

func (a *App) restaurantsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List restaurants of the logged in owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			restaurants, err := a.services.Restaurants.Mine(cmd.Context(), a.token)
			if err != nil {
				return a.reportError(err)
			}
			printRestaurants(restaurants)
			return nil
		},
	}
}

func (a *App) restaurantsDetailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detail <id>",
		Short: "Show a restaurant with its products and schedules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "restaurant id")
			if err != nil {
				return err
			}

			restaurant, err := a.services.Restaurants.Detail(cmd.Context(), a.token, id)
			if err != nil {
				return a.reportError(err)
			}

			fmt.Printf("%d  %s  %s, %s  shipping: %.2f\n",
				restaurant.ID, restaurant.Name, restaurant.Address, restaurant.PostalCode, restaurant.ShippingCosts)
			for _, p := range restaurant.Products {
				scheduled := "unscheduled"
				if p.ScheduleID != nil {
					scheduled = fmt.Sprintf("schedule %d", *p.ScheduleID)
				}
				fmt.Printf("  product %d  %s  %.2f  %s\n", p.ID, p.Name, p.Price, scheduled)
			}
			printSchedules(restaurant.Schedules)
			return nil
		},
	}
}

func (a *App) restaurantsCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List available restaurant categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := a.services.Restaurants.Categories(cmd.Context(), a.token)
			if err != nil {
				return a.reportError(err)
			}
			for _, c := range categories {
				fmt.Printf("%d  %s\n", c.ID, c.Name)
			}
			return nil
		},
	}
}

func restaurantFlags(cmd *cobra.Command, payload *service.RestaurantPayload) {
	cmd.Flags().StringVar(&payload.Name, "name", "", "restaurant name")
	cmd.Flags().StringVar(&payload.Description, "description", "", "description")
	cmd.Flags().StringVar(&payload.Address, "address", "", "address")
	cmd.Flags().StringVar(&payload.PostalCode, "postal-code", "", "postal code")
	cmd.Flags().StringVar(&payload.URL, "url", "", "web page")
	cmd.Flags().Float64Var(&payload.ShippingCosts, "shipping-costs", 0, "shipping costs")
	cmd.Flags().StringVar(&payload.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&payload.Phone, "phone", "", "contact phone")
	cmd.Flags().Int64Var(&payload.RestaurantCategoryID, "category", 0, "restaurant category id")
}

func (a *App) restaurantsCreateCmd() *cobra.Command {
	var payload service.RestaurantPayload

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new restaurant",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := a.services.Restaurants.Create(cmd.Context(), a.token, payload)
			if err != nil {
				return a.reportError(err)
			}
			fmt.Printf("Restaurant %s created\n", created.Name)
			return nil
		},
	}

	restaurantFlags(cmd, &payload)
	return cmd
}

func (a *App) restaurantsUpdateCmd() *cobra.Command {
	var payload service.RestaurantPayload

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a restaurant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "restaurant id")
			if err != nil {
				return err
			}

			updated, err := a.services.Restaurants.Update(cmd.Context(), a.token, id, payload)
			if err != nil {
				return a.reportError(err)
			}
			fmt.Printf("Restaurant %s updated\n", updated.Name)
			return nil
		},
	}

	restaurantFlags(cmd, &payload)
	return cmd
}

func (a *App) restaurantsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a restaurant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "restaurant id")
			if err != nil {
				return err
			}

			if !a.confirmDelete(fmt.Sprintf("Delete restaurant %d?", id)) {
				fmt.Println("Deletion cancelled")
				return nil
			}

			restaurants, err := a.services.Restaurants.Delete(cmd.Context(), a.token, id)
			if err != nil {
				return a.reportError(err)
			}

			fmt.Printf("Restaurant %d removed\n", id)
			printRestaurants(restaurants)
			return nil
		},
	}
}

func (a *App) restaurantsOrdersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orders <id>",
		Short: "List orders of a restaurant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "restaurant id")
			if err != nil {
				return err
			}

			orders, err := a.services.Restaurants.Orders(cmd.Context(), a.token, id)
			if err != nil {
				return a.reportError(err)
			}
			for _, o := range orders {
				printOrder(o)
			}
			return nil
		},
	}
}

func (a *App) restaurantsAnalyticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analytics <id>",
		Short: "Show order analytics of a restaurant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "restaurant id")
			if err != nil {
				return err
			}

			analytics, err := a.services.Restaurants.Analytics(cmd.Context(), a.token, id)
			if err != nil {
				return a.reportError(err)
			}
			printAnalytics(*analytics)
			return nil
		},
	}
}

func (a *App) restaurantsDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard <id>",
		Short: "Show orders and analytics of a restaurant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "restaurant id")
			if err != nil {
				return err
			}

			dash, err := a.services.Restaurants.Dashboard(cmd.Context(), a.token, id)
			if err != nil {
				return a.reportError(err)
			}

			printAnalytics(dash.Analytics)
			for _, o := range dash.Orders {
				printOrder(o)
			}
			return nil
		},
	}
}

func printRestaurants(restaurants []model.Restaurant) {
	if len(restaurants) == 0 {
		fmt.Println("No restaurants yet.")
		return
	}

	for _, r := range restaurants {
		fmt.Printf("%d  %s  %s, %s\n", r.ID, r.Name, r.Address, r.PostalCode)
	}
}

func printAnalytics(a model.Analytics) {
	fmt.Printf("invoiced today: %.2f  pending: %d  delivered today: %d  yesterday: %d\n",
		a.InvoicedToday, a.NumPendingOrders, a.NumDeliveredTodayOrders, a.NumYesterdayOrders)
}

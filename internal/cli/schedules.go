package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmeshcher/deliverus-owner/internal/model"
	"github.com/mmeshcher/deliverus-owner/internal/service"
)

func (a *App) schedulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedules",
		Short: "Manage restaurant schedules",
	}

	cmd.AddCommand(a.schedulesListCmd())
	cmd.AddCommand(a.schedulesCreateCmd())
	cmd.AddCommand(a.schedulesDeleteCmd())

	return cmd
}

func (a *App) schedulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <restaurantId>",
		Short: "List schedules of a restaurant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			restaurantID, err := parseID(args[0], "restaurant id")
			if err != nil {
				return err
			}

			schedules, err := a.services.Schedules.List(cmd.Context(), a.token, restaurantID)
			if err != nil {
				return a.reportError(err)
			}
			printSchedules(schedules)
			return nil
		},
	}
}

func (a *App) schedulesCreateCmd() *cobra.Command {
	var payload service.SchedulePayload

	cmd := &cobra.Command{
		Use:   "create <restaurantId>",
		Short: "Create a schedule for a restaurant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			restaurantID, err := parseID(args[0], "restaurant id")
			if err != nil {
				return err
			}

			created, err := a.services.Schedules.Create(cmd.Context(), a.token, restaurantID, payload)
			if err != nil {
				return a.reportError(err)
			}

			fmt.Printf("Schedule %s - %s successfully created\n", created.StartTime, created.EndTime)
			return nil
		},
	}

	cmd.Flags().StringVar(&payload.StartTime, "start", "", "start time (HH:mm:ss)")
	cmd.Flags().StringVar(&payload.EndTime, "end", "", "end time (HH:mm:ss)")

	return cmd
}

func (a *App) schedulesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <restaurantId> <scheduleId>",
		Short: "Delete a schedule of a restaurant",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			restaurantID, err := parseID(args[0], "restaurant id")
			if err != nil {
				return err
			}
			scheduleID, err := parseID(args[1], "schedule id")
			if err != nil {
				return err
			}

			if !a.confirmDelete("The products of this schedule will become unscheduled. Delete it?") {
				fmt.Println("Deletion cancelled")
				return nil
			}

			schedules, err := a.services.Schedules.Delete(cmd.Context(), a.token, restaurantID, scheduleID)
			if err != nil {
				return a.reportError(err)
			}

			fmt.Printf("Schedule %d successfully removed\n", scheduleID)
			printSchedules(schedules)
			return nil
		},
	}
}

func printSchedules(schedules []model.Schedule) {
	if len(schedules) == 0 {
		fmt.Println("The restaurant has no schedules yet.")
		return
	}

	for _, sch := range schedules {
		fmt.Printf("%d  %s - %s  %d products associated\n",
			sch.ID, sch.StartTime, sch.EndTime, len(sch.Products))
	}
}

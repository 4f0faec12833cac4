// Package cli реализует командный интерфейс владельца ресторанов DeliverUS.
// Команды вызывают сервисы жизненного цикла ресурсов и печатают результат;
// вся работа с состоянием остаётся на стороне бэкенда.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mmeshcher/deliverus-owner/internal/apierror"
	"github.com/mmeshcher/deliverus-owner/internal/config"
	"github.com/mmeshcher/deliverus-owner/internal/service"
	"github.com/mmeshcher/deliverus-owner/internal/transport"
)

// App держит сервисы и логгер, общие для всех команд.
type App struct {
	logger   *zap.SugaredLogger
	services *service.Services
	token    string

	flagAddress string
	flagToken   string
	flagTimeout time.Duration
	flagYes     bool
}

// New создаёт корневую команду клиента со всеми подкомандами.
func New(logger *zap.SugaredLogger) *cobra.Command {
	app := &App{logger: logger}

	root := &cobra.Command{
		Use:           "deliverus",
		Short:         "DeliverUS owner client",
		Long:          "Command-line client for restaurant owners of the DeliverUS food-delivery platform.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init()
		},
	}

	root.PersistentFlags().StringVarP(&app.flagAddress, "api", "a", config.DefaultAPIAddress, "address of the DeliverUS backend")
	root.PersistentFlags().StringVarP(&app.flagToken, "token", "t", "", "bearer token of the logged in owner")
	root.PersistentFlags().DurationVar(&app.flagTimeout, "timeout", transport.DefaultTimeout, "request timeout")
	root.PersistentFlags().BoolVarP(&app.flagYes, "yes", "y", false, "skip delete confirmations")

	root.AddCommand(app.addressesCmd())
	root.AddCommand(app.ordersCmd())
	root.AddCommand(app.schedulesCmd())
	root.AddCommand(app.restaurantsCmd())

	return root
}

func (a *App) init() error {
	cfg, err := config.Parse(a.flagAddress, a.flagToken, a.flagTimeout)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	client := transport.NewClient(cfg.APIAddress, cfg.RequestTimeout)
	a.services = service.New(client)
	a.token = cfg.AuthToken

	return nil
}

// reportError печатает ошибку в зависимости от её вида: ошибки валидации
// выводятся по полям рядом с формой, ошибка перечитки сообщает, что мутация
// уже зафиксирована, остальное уходит в лог как общий сбой.
func (a *App) reportError(err error) error {
	var ve *apierror.ValidationError
	if errors.As(err, &ve) {
		for _, fe := range ve.Errors {
			fmt.Printf("%s - %s\n", fe.Param, fe.Msg)
		}
		return err
	}

	var re *apierror.RefetchError
	if errors.As(err, &re) {
		a.logger.Warnw("change saved, but the list could not be refreshed; run the list command to refresh manually",
			"error", re.Err)
		return err
	}

	a.logger.Errorw("request failed", "error", err)
	return err
}

// confirmDelete спрашивает подтверждение удаления. Состояние "помечено
// на удаление" живёт только внутри этого вызова и снимается при любом
// исходе, подтверждён запрос или нет.
func (a *App) confirmDelete(prompt string) bool {
	if a.flagYes {
		return true
	}

	fmt.Printf("%s [y/N]: ", prompt)

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func parseID(arg, name string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, arg)
	}
	return id, nil
}

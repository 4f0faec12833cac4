// Package status реализует машину состояний заказа DeliverUS.
package status

import (
	"fmt"

	"github.com/mmeshcher/deliverus-owner/internal/apierror"
	"github.com/mmeshcher/deliverus-owner/internal/model"
)

// Transition описывает единственный переход, доступный из текущего статуса.
type Transition struct {
	Action string
	Next   model.OrderStatus
}

// Статусы продвигаются только вперёд: pending → in process → sent → delivered.
// Таблица покрывает все нетерминальные статусы; терминальный и неизвестный
// случаи обрабатываются явно, без ветки по умолчанию.
var transitions = map[model.OrderStatus]Transition{
	model.OrderStatusPending:   {Action: "confirm", Next: model.OrderStatusInProcess},
	model.OrderStatusInProcess: {Action: "send", Next: model.OrderStatusSent},
	model.OrderStatusSent:      {Action: "deliver", Next: model.OrderStatusDelivered},
}

// Next возвращает переход, продвигающий заказ из указанного статуса
// ровно на один шаг. Для статуса delivered возвращается TerminalStateError:
// дальнейших переходов не существует, и это ошибка вызывающего кода.
func Next(s model.OrderStatus) (Transition, error) {
	if tr, ok := transitions[s]; ok {
		return tr, nil
	}
	if s == model.OrderStatusDelivered {
		return Transition{}, &apierror.TerminalStateError{Status: s}
	}
	return Transition{}, fmt.Errorf("unknown order status %q", s)
}

// TransitionPath возвращает относительный путь PATCH-запроса,
// выполняющего переход заказа в следующий статус.
func TransitionPath(orderID int64, s model.OrderStatus) (string, error) {
	tr, err := Next(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("orders/%d/%s", orderID, tr.Action), nil
}

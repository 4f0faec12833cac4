package service

import (
	"context"
	"fmt"

	"github.com/mmeshcher/deliverus-owner/internal/apierror"
	"github.com/mmeshcher/deliverus-owner/internal/model"
	"github.com/mmeshcher/deliverus-owner/internal/status"
	"github.com/mmeshcher/deliverus-owner/internal/transport"
	"github.com/mmeshcher/deliverus-owner/internal/validation"
)

// Orders выполняет операции владельца над заказами: чтение, обновление
// адреса и цены, продвижение статуса. Заказы не удаляются владельцем.
type Orders struct {
	client *transport.Client
}

// NewOrders создаёт сервис заказов.
func NewOrders(client *transport.Client) *Orders {
	return &Orders{client: client}
}

// OwnerOrderUpdate содержит единственные поля заказа, доступные владельцу.
// Обновление отправляется одной атомарной записью и не меняет статус.
type OwnerOrderUpdate struct {
	Address string  `json:"address"`
	Price   float64 `json:"price"`
}

// Get возвращает заказ по идентификатору.
func (o *Orders) Get(ctx context.Context, token string, id int64) (*model.Order, error) {
	var order model.Order
	if err := o.client.Get(ctx, token, fmt.Sprintf("orders/%d", id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateByOwner обновляет адрес и цену заказа через PUT orders/{id}/by-owner.
// Поля проверяются до отправки запроса; при нарушении возвращается
// ValidationError в том же формате, что и серверные ошибки валидации.
func (o *Orders) UpdateByOwner(ctx context.Context, token string, id int64, upd OwnerOrderUpdate) (*model.Order, error) {
	if errs := validation.ValidateOwnerOrderUpdate(upd.Address, upd.Price); len(errs) > 0 {
		return nil, &apierror.ValidationError{Errors: errs}
	}

	var updated model.Order
	if err := o.client.Put(ctx, token, fmt.Sprintf("orders/%d/by-owner", id), upd, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// AdvanceStatus продвигает заказ на один шаг вперёд, выполняя переход,
// выбранный машиной состояний, и перечитывает заказ с сервера.
// Для заказа в статусе delivered возвращается TerminalStateError.
func (o *Orders) AdvanceStatus(ctx context.Context, token string, order model.Order) (*model.Order, error) {
	path, err := status.TransitionPath(order.ID, order.Status)
	if err != nil {
		return nil, err
	}

	if err := o.client.Patch(ctx, token, path, nil, nil); err != nil {
		return nil, err
	}

	// Переход зафиксирован; актуальное состояние заказа берётся
	// только из свежего ответа сервера.
	updated, err := o.Get(ctx, token, order.ID)
	if err != nil {
		return nil, &apierror.RefetchError{Err: err}
	}
	return updated, nil
}

package service

import (
	"context"

	"github.com/mmeshcher/deliverus-owner/internal/lifecycle"
	"github.com/mmeshcher/deliverus-owner/internal/model"
	"github.com/mmeshcher/deliverus-owner/internal/transport"
)

const addressesPath = "shippingaddresses"

// Addresses выполняет операции с адресами доставки текущего пользователя.
type Addresses struct {
	col *lifecycle.Collection[model.ShippingAddress]
}

// NewAddresses создаёт сервис адресов доставки.
func NewAddresses(client *transport.Client) *Addresses {
	return &Addresses{
		col: lifecycle.NewCollection[model.ShippingAddress](client, addressesPath),
	}
}

// AddressPayload содержит поля формы создания адреса доставки.
type AddressPayload struct {
	Alias     string `json:"alias"`
	Street    string `json:"street"`
	City      string `json:"city"`
	Province  string `json:"province"`
	ZipCode   string `json:"zipCode"`
	IsDefault bool   `json:"isDefault"`
}

// List возвращает все адреса текущего пользователя.
func (a *Addresses) List(ctx context.Context, token string) ([]model.ShippingAddress, error) {
	return a.col.List(ctx, token)
}

// Create создаёт адрес доставки. Ошибки валидации сервера
// возвращаются вызывающему без изменений для показа у полей формы.
func (a *Addresses) Create(ctx context.Context, token string, payload AddressPayload) (*model.ShippingAddress, error) {
	return a.col.Create(ctx, token, payload)
}

// Delete удаляет адрес и возвращает перечитанный список.
func (a *Addresses) Delete(ctx context.Context, token string, id int64) ([]model.ShippingAddress, error) {
	return a.col.DeleteAndRefetch(ctx, token, id)
}

// SetDefault помечает адрес как адрес по умолчанию через частичное
// обновление PATCH shippingaddresses/{id}/default и возвращает перечитанный
// список. Инвариант "не более одного адреса по умолчанию" поддерживает
// сервер: он сам снимает флаг с прежнего адреса, поэтому клиент обязан
// перечитать коллекцию, а не переключать флаги локально.
func (a *Addresses) SetDefault(ctx context.Context, token string, id int64) ([]model.ShippingAddress, error) {
	return a.col.SetAttributeAndRefetch(ctx, token, id, "default")
}

// DefaultAddress возвращает адрес по умолчанию из списка, если он есть.
func DefaultAddress(addresses []model.ShippingAddress) (model.ShippingAddress, bool) {
	for _, addr := range addresses {
		if addr.IsDefault {
			return addr, true
		}
	}
	return model.ShippingAddress{}, false
}

// Package service реализует операции владельца ресторанов DeliverUS
// поверх транспортного клиента: адреса доставки, заказы, расписания
// и рестораны. Токен сессии передаётся в каждый вызов, а не хранится.
package service

import "github.com/mmeshcher/deliverus-owner/internal/transport"

// Services объединяет операции владельца по типам ресурсов.
type Services struct {
	Addresses   *Addresses
	Orders      *Orders
	Schedules   *Schedules
	Restaurants *Restaurants
}

// New создаёт набор сервисов поверх указанного транспортного клиента.
func New(client *transport.Client) *Services {
	return &Services{
		Addresses:   NewAddresses(client),
		Orders:      NewOrders(client),
		Schedules:   NewSchedules(client),
		Restaurants: NewRestaurants(client),
	}
}

// Package model содержит доменные сущности платформы доставки DeliverUS.
package model

// OrderStatus описывает статус обработки заказа.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusInProcess OrderStatus = "in process"
	OrderStatusSent      OrderStatus = "sent"
	OrderStatusDelivered OrderStatus = "delivered"
)

// Order описывает заказ ресторана. Владелец может менять только адрес и цену,
// статус продвигается отдельными действиями перехода.
type Order struct {
	ID           int64       `json:"id"`
	Status       OrderStatus `json:"status"`
	Address      string      `json:"address"`
	Price        float64     `json:"price"`
	RestaurantID int64       `json:"restaurantId"`
}

// ShippingAddress описывает адрес доставки пользователя.
// Среди адресов одного пользователя не более одного с IsDefault = true.
type ShippingAddress struct {
	ID        int64  `json:"id"`
	Alias     string `json:"alias"`
	Street    string `json:"street"`
	City      string `json:"city"`
	Province  string `json:"province"`
	ZipCode   string `json:"zipCode"`
	IsDefault bool   `json:"isDefault"`
}

// Schedule описывает интервал работы ресторана. Список продуктов доступен
// только для чтения: связи меняет сервер, в том числе при каскадном удалении.
type Schedule struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurantId"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Products     []Product `json:"products"`
}

// Product описывает продукт ресторана. ScheduleID равен nil,
// если продукт не привязан к расписанию.
type Product struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Availability bool    `json:"availability"`
	RestaurantID int64   `json:"restaurantId"`
	ScheduleID   *int64  `json:"scheduleId"`
}

// Restaurant описывает ресторан владельца вместе с продуктами и расписаниями.
type Restaurant struct {
	ID                   int64      `json:"id"`
	Name                 string     `json:"name"`
	Description          string     `json:"description,omitempty"`
	Address              string     `json:"address"`
	PostalCode           string     `json:"postalCode"`
	URL                  string     `json:"url,omitempty"`
	ShippingCosts        float64    `json:"shippingCosts"`
	Email                string     `json:"email,omitempty"`
	Phone                string     `json:"phone,omitempty"`
	Status               string     `json:"status,omitempty"`
	RestaurantCategoryID int64      `json:"restaurantCategoryId"`
	Products             []Product  `json:"products,omitempty"`
	Schedules            []Schedule `json:"schedules,omitempty"`
}

// RestaurantCategory описывает категорию ресторана.
type RestaurantCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Analytics содержит сводные показатели заказов ресторана.
type Analytics struct {
	InvoicedToday           float64 `json:"invoicedToday"`
	NumPendingOrders        int     `json:"numPendingOrders"`
	NumDeliveredTodayOrders int     `json:"numDeliveredTodayOrders"`
	NumYesterdayOrders      int     `json:"numYesterdayOrders"`
}

package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/deliverus-owner/internal/apierror"
	"github.com/mmeshcher/deliverus-owner/internal/lifecycle"
	"github.com/mmeshcher/deliverus-owner/internal/model"
	"github.com/mmeshcher/deliverus-owner/internal/transport"
)

const restaurantsPath = "restaurants"

// Restaurants выполняет операции с ресторанами владельца.
type Restaurants struct {
	client *transport.Client
	col    *lifecycle.Collection[model.Restaurant]
}

// NewRestaurants создаёт сервис ресторанов.
func NewRestaurants(client *transport.Client) *Restaurants {
	return &Restaurants{
		client: client,
		col:    lifecycle.NewCollection[model.Restaurant](client, restaurantsPath),
	}
}

// RestaurantPayload содержит поля формы создания и редактирования ресторана.
type RestaurantPayload struct {
	Name                 string  `json:"name"`
	Description          string  `json:"description,omitempty"`
	Address              string  `json:"address"`
	PostalCode           string  `json:"postalCode"`
	URL                  string  `json:"url,omitempty"`
	ShippingCosts        float64 `json:"shippingCosts"`
	Email                string  `json:"email,omitempty"`
	Phone                string  `json:"phone,omitempty"`
	RestaurantCategoryID int64   `json:"restaurantCategoryId"`
}

// Mine возвращает рестораны текущего владельца.
func (r *Restaurants) Mine(ctx context.Context, token string) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	if err := r.client.Get(ctx, token, "users/myrestaurants", &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

// Detail возвращает ресторан вместе с продуктами и расписаниями.
func (r *Restaurants) Detail(ctx context.Context, token string, id int64) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := r.client.Get(ctx, token, fmt.Sprintf("restaurants/%d", id), &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// Categories возвращает доступные категории ресторанов.
func (r *Restaurants) Categories(ctx context.Context, token string) ([]model.RestaurantCategory, error) {
	var categories []model.RestaurantCategory
	if err := r.client.Get(ctx, token, "restaurantCategories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Create создаёт ресторан владельца.
func (r *Restaurants) Create(ctx context.Context, token string, payload RestaurantPayload) (*model.Restaurant, error) {
	return r.col.Create(ctx, token, payload)
}

// Update обновляет ресторан целиком.
func (r *Restaurants) Update(ctx context.Context, token string, id int64, payload RestaurantPayload) (*model.Restaurant, error) {
	return r.col.Update(ctx, token, id, payload)
}

// Delete удаляет ресторан и возвращает перечитанный список ресторанов
// владельца. Список живёт на другом пути, чем коллекция записи,
// поэтому перечитка выполняется через Mine.
func (r *Restaurants) Delete(ctx context.Context, token string, id int64) ([]model.Restaurant, error) {
	if err := r.col.Delete(ctx, token, id); err != nil {
		return nil, err
	}

	restaurants, err := r.Mine(ctx, token)
	if err != nil {
		return nil, &apierror.RefetchError{Err: err}
	}
	return restaurants, nil
}

// Orders возвращает заказы ресторана.
func (r *Restaurants) Orders(ctx context.Context, token string, id int64) ([]model.Order, error) {
	var orders []model.Order
	if err := r.client.Get(ctx, token, fmt.Sprintf("restaurants/%d/orders", id), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Analytics возвращает сводные показатели заказов ресторана.
func (r *Restaurants) Analytics(ctx context.Context, token string, id int64) (*model.Analytics, error) {
	var analytics model.Analytics
	if err := r.client.Get(ctx, token, fmt.Sprintf("restaurants/%d/analytics", id), &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

// Dashboard объединяет заказы и аналитику ресторана.
type Dashboard struct {
	Orders    []model.Order
	Analytics model.Analytics
}

// Dashboard загружает заказы и аналитику ресторана параллельно.
// Это независимые чтения разных коллекций, мутаций здесь нет.
func (r *Restaurants) Dashboard(ctx context.Context, token string, id int64) (*Dashboard, error) {
	var dash Dashboard

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		orders, err := r.Orders(ctx, token, id)
		if err != nil {
			return fmt.Errorf("restaurant orders: %w", err)
		}
		dash.Orders = orders
		return nil
	})

	g.Go(func() error {
		analytics, err := r.Analytics(ctx, token, id)
		if err != nil {
			return fmt.Errorf("restaurant analytics: %w", err)
		}
		dash.Analytics = *analytics
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dash, nil
}

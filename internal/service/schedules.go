package service

import (
	"context"
	"fmt"

	"github.com/mmeshcher/deliverus-owner/internal/apierror"
	"github.com/mmeshcher/deliverus-owner/internal/lifecycle"
	"github.com/mmeshcher/deliverus-owner/internal/model"
	"github.com/mmeshcher/deliverus-owner/internal/transport"
	"github.com/mmeshcher/deliverus-owner/internal/validation"
)

// Schedules выполняет операции с расписаниями ресторана.
// Коллекция расписаний вложена в ресторан: restaurants/{id}/schedules.
type Schedules struct {
	client *transport.Client
}

// NewSchedules создаёт сервис расписаний.
func NewSchedules(client *transport.Client) *Schedules {
	return &Schedules{client: client}
}

// SchedulePayload содержит поля формы создания расписания.
type SchedulePayload struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (s *Schedules) collection(restaurantID int64) *lifecycle.Collection[model.Schedule] {
	path := fmt.Sprintf("restaurants/%d/schedules", restaurantID)
	return lifecycle.NewCollection[model.Schedule](s.client, path)
}

// List возвращает расписания ресторана вместе с привязанными продуктами.
func (s *Schedules) List(ctx context.Context, token string, restaurantID int64) ([]model.Schedule, error) {
	return s.collection(restaurantID).List(ctx, token)
}

// Create создаёт расписание ресторана. Формат времени проверяется
// до отправки запроса; порядок startTime и endTime не проверяется.
func (s *Schedules) Create(ctx context.Context, token string, restaurantID int64, payload SchedulePayload) (*model.Schedule, error) {
	if errs := validation.ValidateScheduleTimes(payload.StartTime, payload.EndTime); len(errs) > 0 {
		return nil, &apierror.ValidationError{Errors: errs}
	}
	return s.collection(restaurantID).Create(ctx, token, payload)
}

// Delete удаляет расписание и возвращает перечитанный список.
// Сервер каскадно отвязывает продукты удалённого расписания, поэтому
// любые закешированные счётчики продуктов устаревают в момент удаления:
// допустима только полная перечитка коллекции, не локальная фильтрация.
func (s *Schedules) Delete(ctx context.Context, token string, restaurantID, scheduleID int64) ([]model.Schedule, error) {
	return s.collection(restaurantID).DeleteAndRefetch(ctx, token, scheduleID)
}

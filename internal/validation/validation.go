// Package validation содержит клиентские проверки полей форм.
package validation

import (
	"regexp"

	"github.com/mmeshcher/deliverus-owner/internal/apierror"
)

// Формат времени расписания: часы 00-23, минуты и секунды 00-59.
var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d):([0-5]\d)$`)

const timeFormatMsg = "The time must be in the HH:mm (e.g. 14:30:00) format"

// IsValidScheduleTime проверяет, что строка соответствует формату HH:mm:ss.
func IsValidScheduleTime(s string) bool {
	return timePattern.MatchString(s)
}

// ValidateScheduleTimes проверяет поля создания расписания.
// Соотношение startTime и endTime между собой не проверяется.
func ValidateScheduleTimes(startTime, endTime string) []apierror.FieldError {
	var errs []apierror.FieldError

	switch {
	case startTime == "":
		errs = append(errs, apierror.FieldError{Param: "startTime", Msg: "Start time is required"})
	case !IsValidScheduleTime(startTime):
		errs = append(errs, apierror.FieldError{Param: "startTime", Msg: timeFormatMsg})
	}

	switch {
	case endTime == "":
		errs = append(errs, apierror.FieldError{Param: "endTime", Msg: "End time is required"})
	case !IsValidScheduleTime(endTime):
		errs = append(errs, apierror.FieldError{Param: "endTime", Msg: timeFormatMsg})
	}

	return errs
}

// ValidateOwnerOrderUpdate проверяет поля обновления заказа владельцем.
// Владелец может менять только адрес и цену.
func ValidateOwnerOrderUpdate(address string, price float64) []apierror.FieldError {
	var errs []apierror.FieldError

	if address == "" {
		errs = append(errs, apierror.FieldError{Param: "address", Msg: "Address is required"})
	}
	if price <= 0 {
		errs = append(errs, apierror.FieldError{Param: "price", Msg: "Price must be greater than 0"})
	}

	return errs
}

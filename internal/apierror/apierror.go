// Package apierror содержит типизированные ошибки клиента DeliverUS.
package apierror

import (
	"fmt"
	"strings"

	"github.com/mmeshcher/deliverus-owner/internal/model"
)

// FieldError описывает ошибку валидации одного поля в формате бэкенда.
type FieldError struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
}

// ValidationError содержит список ошибок валидации, возвращённый бэкендом
// или собранный клиентской проверкой до отправки запроса.
// Список передаётся вызывающему без изменений.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Param+" - "+fe.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// TerminalStateError означает попытку перевести заказ дальше конечного статуса.
// Это ошибка вызывающего кода, а не повторяемое состояние.
type TerminalStateError struct {
	Status model.OrderStatus
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("no further state transitions available from status %q", e.Status)
}

// TransportError означает сетевую ошибку или ответ сервера,
// не являющийся ошибкой валидации. Повторных попыток не выполняется.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport error: %v", e.Err)
	}
	return fmt.Sprintf("transport error: unexpected status %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RefetchError означает, что мутация зафиксирована сервером,
// но обязательная перечитка коллекции не удалась.
// Вызывающий должен предложить ручное обновление, а не откатывать мутацию.
type RefetchError struct {
	Err error
}

func (e *RefetchError) Error() string {
	return fmt.Sprintf("mutation committed, refetch failed: %v", e.Err)
}

func (e *RefetchError) Unwrap() error {
	return e.Err
}

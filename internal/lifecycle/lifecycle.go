// Package lifecycle реализует общий протокол работы с редактируемыми
// коллекциями бэкенда: мутация, затем обязательная перечитка коллекции.
// Клиент не хранит собственного состояния, поэтому единственным источником
// истины после любой мутации является свежий ответ сервера.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/mmeshcher/deliverus-owner/internal/apierror"
	"github.com/mmeshcher/deliverus-owner/internal/transport"
)

// Collection привязывает типизированную коллекцию ресурсов к пути бэкенда.
// Путь может быть вложенным, например restaurants/5/schedules.
type Collection[T any] struct {
	client *transport.Client
	path   string
}

// NewCollection создаёт коллекцию ресурсов по указанному пути.
func NewCollection[T any](client *transport.Client, path string) *Collection[T] {
	return &Collection[T]{
		client: client,
		path:   path,
	}
}

func (c *Collection[T]) itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", c.path, id)
}

// List перечитывает коллекцию целиком. Вызывается после каждой мутации.
func (c *Collection[T]) List(ctx context.Context, token string) ([]T, error) {
	var items []T
	if err := c.client.Get(ctx, token, c.path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create отправляет payload в коллекцию и возвращает созданную запись.
// Ошибка валидации сервера возвращается вызывающему без изменений.
func (c *Collection[T]) Create(ctx context.Context, token string, payload any) (*T, error) {
	var created T
	if err := c.client.Post(ctx, token, c.path, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update отправляет payload для записи id и возвращает обновлённую запись.
func (c *Collection[T]) Update(ctx context.Context, token string, id int64, payload any) (*T, error) {
	var updated T
	if err := c.client.Put(ctx, token, c.itemPath(id), payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete удаляет запись id. Локальное состояние не трогается:
// после успешного удаления вызывающий обязан перечитать коллекцию.
func (c *Collection[T]) Delete(ctx context.Context, token string, id int64) error {
	return c.client.Delete(ctx, token, c.itemPath(id))
}

// SetAttribute выполняет частичное обновление одного атрибута записи
// через PATCH {path}/{id}/{attribute}. Это не замена Update: полная
// запись затёрла бы поля, отсутствующие в частичном представлении.
func (c *Collection[T]) SetAttribute(ctx context.Context, token string, id int64, attribute string) error {
	return c.client.Patch(ctx, token, c.itemPath(id)+"/"+attribute, nil, nil)
}

// DeleteAndRefetch удаляет запись и перечитывает коллекцию.
// Если удаление прошло, а перечитка нет, мутация считается зафиксированной
// на сервере, и ошибка перечитки возвращается отдельным типом RefetchError.
func (c *Collection[T]) DeleteAndRefetch(ctx context.Context, token string, id int64) ([]T, error) {
	if err := c.Delete(ctx, token, id); err != nil {
		return nil, err
	}

	items, err := c.List(ctx, token)
	if err != nil {
		return nil, &apierror.RefetchError{Err: err}
	}
	return items, nil
}

// SetAttributeAndRefetch устанавливает атрибут и перечитывает коллекцию.
// Сервер может изменить другие записи (например, снять прежний флаг
// по умолчанию), поэтому локальное переключение флага недопустимо.
func (c *Collection[T]) SetAttributeAndRefetch(ctx context.Context, token string, id int64, attribute string) ([]T, error) {
	if err := c.SetAttribute(ctx, token, id, attribute); err != nil {
		return nil, err
	}

	items, err := c.List(ctx, token)
	if err != nil {
		return nil, &apierror.RefetchError{Err: err}
	}
	return items, nil
}

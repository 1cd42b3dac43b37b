package repository

import "context"

// TextGenerator - внешняя модель генерации текста для продвинутого чат-бота
type TextGenerator interface {
	// Generate возвращает ответ модели на сообщение
	Generate(ctx context.Context, text string) (string, error)

	// Model возвращает имя модели
	Model() string
}

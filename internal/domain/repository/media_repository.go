package repository

// MediaRepository - каталог медиа: видео станций и картинки зон вибрации
type MediaRepository interface {
	// StationVideo возвращает URL видео станции
	StationVideo(station string) (string, bool)

	// ZoneImages возвращает упорядоченный список картинок для зон
	ZoneImages() []string
}

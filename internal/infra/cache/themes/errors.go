package themes

import "errors"

var (
	// ErrCacheMiss ключа нет в кэше
	ErrCacheMiss = errors.New("themes.cache: miss")

	// ErrCacheDisabled кэш не настроен
	ErrCacheDisabled = errors.New("themes.cache: disabled")

	// ErrCacheFailure ошибка Redis или сериализации
	ErrCacheFailure = errors.New("themes.cache: failure")
)

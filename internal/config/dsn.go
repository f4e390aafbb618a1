package config

import "net/url"

// withDBName заменяет путь postgres URL на имя базы
// Строки, которые не парсятся как URL (key=value DSN), возвращаются без изменений
func withDBName(raw, dbName string) string {
	if dbName == "" {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return raw
	}
	u.Path = "/" + dbName
	return u.String()
}

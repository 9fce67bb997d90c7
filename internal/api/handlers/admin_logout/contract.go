package admin_logout

import "net/http"

type Logger interface {
	Info(format string, v ...interface{})
}

type SessionClearer interface {
	Clear(w http.ResponseWriter)
}

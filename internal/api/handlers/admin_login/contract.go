package admin_login

import "net/http"

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SessionIssuer выставляет cookie с админ-сессией
type SessionIssuer interface {
	Issue(w http.ResponseWriter, r *http.Request) error
}

package actor

import (
	"errors"
	"net/http"
	"strconv"
)

// Header с идентификатором пользователя проставляет API gateway после
// аутентификации, сам сервис токены не проверяет.
const userIDHeader = "X-User-ID"

var ErrMissingUserID = errors.New("missing or invalid user id header")

func FromRequest(r *http.Request) (int64, error) {
	raw := r.Header.Get(userIDHeader)
	if raw == "" {
		return 0, ErrMissingUserID
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, ErrMissingUserID
	}

	return id, nil
}

package http

import (
	"errors"

	"github.com/JMURv/authcore/internal/config"
)

var ErrNoDeviceInfo = errors.New("no device info")
var ErrMissingToken = errors.New("missing token")

const sessionCookieMaxAge = int(config.SessionDuration / 1e9)

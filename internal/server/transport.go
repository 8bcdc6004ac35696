package server

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Transport returns an http.RoundTripper that serves requests with app
// directly, without opening a socket. Point a client at any host; only the
// path matters.
func Transport(app *fiber.App) http.RoundTripper {
	return &appTransport{app: app}
}

type appTransport struct {
	app *fiber.App
}

func (t *appTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	return t.app.Test(req.Clone(req.Context()), -1)
}

package main

import (
	"crypto/subtle"
	"net/http"
)

type basicAuthMiddleware struct {
	handler  http.Handler
	realm    string
	user     []byte
	password []byte
}

func (b *basicAuthMiddleware) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	user, pass, ok := req.BasicAuth()

	if ok && subtle.ConstantTimeCompare(b.user, []byte(user))+subtle.ConstantTimeCompare(b.password, []byte(pass)) == 2 {
		b.handler.ServeHTTP(w, req)

		return
	}

	w.Header().Set("WWW-Authenticate", `Basic realm="`+b.realm+`"`)
	http.Error(w, "Authentication is required", http.StatusUnauthorized)
}

// withBasicAuth protects a web UI if credentials are configured. Tokens
// typed into the form are sent to this server, so exposing it
// publicly without auth is not a good idea.
func withBasicAuth(handler http.Handler, auth configBasicAuth) http.Handler {
	if !auth.Enabled() {
		return handler
	}

	return &basicAuthMiddleware{
		handler:  handler,
		realm:    "ipmapper",
		user:     []byte(auth.User),
		password: []byte(auth.Password),
	}
}

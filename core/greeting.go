package core

import (
	"io"
	"net/http"
)

const Greeting = "Wild Rydes App is running!"

func GreetingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	io.WriteString(w, Greeting)
}

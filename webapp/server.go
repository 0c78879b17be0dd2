//go:build ignore

// Simple static file server for the payload demo page.
// Run: go run webapp/server.go
package main

import (
	"fmt"
	"log"
	"net/http"
)

func main() {
	port := "3000"

	fs := http.FileServer(http.Dir("webapp"))

	// CORS headers for local development against the API on :8080
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		fs.ServeHTTP(w, r)
	})

	fmt.Printf("Serving demo page at http://localhost:%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
)

// Standalone mock of the upstream shopping API for local development: serves
// the OAuth2 token endpoint and a canned flight-offers payload.
func main() {
	port := "8081"
	if len(os.Args) > 1 {
		port = os.Args[1]
	}

	http.HandleFunc("/v1/security/oauth2/token", TokenHandler)
	http.HandleFunc("/v2/shopping/flight-offers", FlightOffersHandler)

	addr := fmt.Sprintf(":%s", port)
	fmt.Printf("Mock shopping API running on port %s...\n", port)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal(err)
	}
}

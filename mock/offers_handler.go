package main

import (
	"encoding/json"
	"net/http"
	"os"
)

func TokenHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"access_token": "mock-access-token",
		"token_type":   "Bearer",
		"expires_in":   1799,
	})
}

func FlightOffersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if r.URL.Query().Get("originLocationCode") == "" || r.URL.Query().Get("destinationLocationCode") == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]any{{
				"status": 400,
				"code":   32171,
				"title":  "MANDATORY DATA MISSING",
				"detail": "Missing origin or destination",
			}},
		})
		return
	}

	data, err := os.ReadFile("mock/files/flight_offers_response.json")
	if err != nil {
		http.Error(w, "Failed to read offer data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

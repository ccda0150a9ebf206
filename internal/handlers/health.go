package handlers

import (
	"encoding/json"
	"net/http"
)

// Health answers the hosting platform's liveness probe.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Driverscash API is running"})
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// respondWithError writes a JSON error body with the given status code
func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// pathID parses the named path parameter as an unsigned id
func pathID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

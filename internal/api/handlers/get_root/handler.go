package get_root

import (
	"net/http"

	"github.com/m04kA/SMC-HeritageService/internal/api/handlers"
)

const msgWelcome = "Welcome to Sikkim Monasteries - Virtual Heritage Tours"

// Handle GET /api/
func Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondMessage(w, http.StatusOK, msgWelcome)
}

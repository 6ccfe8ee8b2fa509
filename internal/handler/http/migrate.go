package http

import (
	"encoding/json"
	"net/http"

	"github.com/tecnoscan/tecnoscan-api/internal/logger"
	"github.com/tecnoscan/tecnoscan-api/internal/utils"
	"github.com/tecnoscan/tecnoscan-api/migrations"
	"github.com/tecnoscan/tecnoscan-api/models"
)

// migrate applies the embedded migrations to the live database.
func (h *Handler) migrate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := migrations.Migrate(h.db.DB); err != nil {
		log.Err(err).Str("func", "*Handler.migrate").Msg("running migrations failed")
		writeError(w, http.StatusInternalServerError, "running migrations failed")
		return
	}

	log.Info().Msg("migrations applied")

	utils.WriteJSON(w, models.Response{
		Code:    http.StatusOK,
		Message: "migrations applied",
	}, http.StatusOK)
}

type generateMigrationRequest struct {
	Name string `json:"name"`
}

// generateMigration scaffolds a timestamped SQL migration skeleton in the
// configured migrations directory.
func (h *Handler) generateMigration(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body generateMigrationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	if body.Name == "" {
		log.Error().Msg("empty migration name")
		writeError(w, http.StatusBadRequest, "empty migration name")
		return
	}

	if err := migrations.Generate(h.cfg.Storage.MigrationsDir, body.Name); err != nil {
		log.Err(err).Str("func", "*Handler.generateMigration").Msg("migration generation failed")
		writeError(w, http.StatusInternalServerError, "migration generation failed")
		return
	}

	log.Info().Str("name", body.Name).Msg("migration skeleton created")

	utils.WriteJSON(w, models.Response{
		Code:    http.StatusCreated,
		Message: "migration skeleton created",
	}, http.StatusCreated)
}

package http

import (
	"context"
	"io"
	"net/http"

	"github.com/tecnoscan/tecnoscan-api/internal/logger"
	"github.com/tecnoscan/tecnoscan-api/internal/utils"
	"github.com/tecnoscan/tecnoscan-api/models"
)

// uploadLookup handles the shared multipart plumbing of the three registry
// import endpoints. The XLSX workbook is expected under the "file" form field.
func (h *Handler) uploadLookup(w http.ResponseWriter, r *http.Request, importFunc func(context.Context, io.Reader) (models.ImportReport, error)) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxImportFileSize); err != nil {
		log.Err(err).Msg("invalid multipart form")
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("missing `file` form field")
		writeError(w, http.StatusBadRequest, "missing `file` form field")
		return
	}
	defer file.Close()

	report, err := importFunc(ctx, file)
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadLookup").Msg("lookup import failed")
		writeServiceError(w, err)
		return
	}

	log.Info().Int("added", report.Added).Int("existing", report.Existing).Msg("lookup import finished")

	utils.WriteJSON(w, models.Response{
		Code:    http.StatusOK,
		Message: "import finished",
		Data:    report,
	}, http.StatusOK)
}

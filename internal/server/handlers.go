package server

import (
	"encoding/json"
	"io"
	"net/http"

	"passguard/internal/common"
	"passguard/internal/strength"
)

type createAssessmentInput struct {
	Password string `json:"password"`
}

// getCreateAssessmentHandler evaluates the submitted password against
// the configured policy. The password is read, evaluated, and dropped;
// it is never logged and never leaves the handler
func getCreateAssessmentHandler(policy strength.Policy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to read request body", err)
			return
		}
		var input createAssessmentInput
		if err := json.Unmarshal(body, &input); err != nil {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", err)
			return
		}

		assessment := policy.Evaluate(input.Password)
		common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", assessment)
	}
}

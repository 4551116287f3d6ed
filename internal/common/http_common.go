package common

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type CommonHttpEndpointsOpts struct {
	Router         *mux.Router
	ServiceLogs    chan<- ServiceLog
	LivenessChecks []func() error
}

func RegisterCommonHttpEndpoints(opts CommonHttpEndpointsOpts) {
	opts.Router.HandleFunc("/livez", getLivenessProbeHandler(opts)).Methods(http.MethodGet)
	opts.Router.Handle("/metrics", promhttp.Handler())
}

type handleHealthcheckProbeOutput struct {
	Errors []string `json:"errors"`
	Status string   `json:"status"`
}

func getLivenessProbeHandler(opts CommonHttpEndpointsOpts) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		livenessIssues := []error{}
		for _, livenessCheck := range opts.LivenessChecks {
			if err := livenessCheck(); err != nil {
				livenessIssues = append(livenessIssues, err)
			}
		}
		if len(livenessIssues) > 0 {
			SendHttpFailResponse(w, r, http.StatusInternalServerError, "not ok", errors.Join(livenessIssues...))
			return
		}
		SendHttpSuccessResponse(w, r, http.StatusOK, "ok", handleHealthcheckProbeOutput{
			Errors: nil,
			Status: "ok",
		})
	}
}

package server

import (
	"net/http"

	"passguard/internal/common"
	"passguard/internal/strength"

	"github.com/gorilla/mux"
)

type StartHttpServerOpts struct {
	Addr        string
	BearerAuth  *StartHttpServerBearerAuthOpts
	Done        chan common.Done
	Policy      strength.Policy
	ServiceLogs chan<- common.ServiceLog
}

type StartHttpServerBearerAuthOpts struct {
	Token string
}

func StartHttpServer(opts StartHttpServerOpts) error {
	router := mux.NewRouter()

	common.RegisterCommonHttpEndpoints(common.CommonHttpEndpointsOpts{
		Router:      router,
		ServiceLogs: opts.ServiceLogs,
	})

	router.HandleFunc("/v1/assessments", getCreateAssessmentHandler(opts.Policy)).Methods(http.MethodPost)
	router.NotFoundHandler = common.GetNotFoundHandler()

	serverOpts := common.NewHttpServerOpts{
		Addr:        opts.Addr,
		Done:        opts.Done,
		Handler:     router,
		ServiceLogs: opts.ServiceLogs,
	}
	if opts.BearerAuth != nil {
		serverOpts.BearerAuth = &common.NewHttpServerBearerAuthOpts{
			Token: opts.BearerAuth.Token,
		}
	}
	server, err := common.NewHttpServer(serverOpts)
	if err != nil {
		return err
	}
	return server.Start()
}

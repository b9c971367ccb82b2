package main

import (
	"net/http"

	"github.com/famquest-app/backend/pkg/router"
	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	addr := s.configs.ApiServer.Address()
	s.logger.Infof("Starting api server on %s", addr)

	handler := cors.AllowAll().Handler(s.router.Handler())
	if err := http.ListenAndServe(addr, handler); err != nil {
		return err
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)

	router.POST(s.router, "/logActivity", s.activityDomain.Log)
	router.GET(s.router, "/getStats", s.activityDomain.GetStats)
	router.GET(s.router, "/getHistory", s.activityDomain.GetHistory)
	router.GET(s.router, "/getSelfReportPresets", s.activityDomain.GetSelfReportPresets)
}

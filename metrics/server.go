// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"net"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

// Server - /metrics over plain HTTP
type Server struct {
	metrics  *Metrics
	listener net.Listener
	server   *http.Server
}

// Listen - bind the configured address, nil if none is configured
func (m *Metrics) Listen(configuration *Configuration) (*Server, error) {
	if "" == configuration.Listen {
		m.log.Info("disabled")
		return nil, nil
	}

	listener, err := net.Listen("tcp", configuration.Listen)
	if nil != err {
		m.log.Errorf("listen: %q  error: %s", configuration.Listen, err)
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	return &Server{
		metrics:  m,
		listener: listener,
		server: &http.Server{
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}, nil
}

// Addr - bound address
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Run - background process serving until shutdown
func (s *Server) Run(args interface{}, shutdown <-chan struct{}) {
	log := s.metrics.log
	log.Infof("serving on: %s", s.listener.Addr())

	done := make(chan struct{})
	go func() {
		defer close(done)
		err := s.server.Serve(s.listener)
		if http.ErrServerClosed != err {
			log.Errorf("serve error: %s", err)
		}
	}()

	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	_ = s.server.Shutdown(ctx)
	<-done
}

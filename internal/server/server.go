/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/server/server.go
*/

// Package server implements the network-facing owner-task and
// per-connection-task model described in SPEC_FULL.md §8. This is the one
// deliberate departure from the teacher's mutex-guarded shared AppState
// (main.go / appstate.go): a single goroutine owns the store.Database
// exclusively, and every connection goroutine talks to it only by sending
// requests down a bounded channel and waiting on a single-shot reply
// channel. The accept loop, signal handling, and per-connection logging
// idiom are kept from the teacher; the synchronization primitive is not.
package server

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"

	"github.com/akashmaji946/redis-clone/internal/command"
	"github.com/akashmaji946/redis-clone/internal/config"
	"github.com/akashmaji946/redis-clone/internal/logging"
	"github.com/akashmaji946/redis-clone/internal/metrics"
	"github.com/akashmaji946/redis-clone/internal/resp"
	"github.com/akashmaji946/redis-clone/internal/store"
)

// job is one dispatched request travelling from a connection task to the
// database-owner task. replyCh has capacity 1 and is written to exactly
// once, per SPEC_FULL.md §8's single-shot reply contract.
type job struct {
	req     *resp.Request
	replyCh chan []byte
}

// Server owns the database-owner goroutine, the listener, and the set of
// live connections. Construct with New, then call Run.
type Server struct {
	cfg *config.Config
	log *logging.Logger
	met *metrics.Registry

	db    *store.Database
	reqCh chan job

	mu    sync.Mutex
	conns map[string]net.Conn
}

// New builds a Server ready to Run. db may be pre-populated (e.g. restored
// from a snapshot outside this package); ownership transfers to the
// server's owner task on the first call to Run.
func New(cfg *config.Config, log *logging.Logger, met *metrics.Registry, db *store.Database) *Server {
	return &Server{
		cfg:   cfg,
		log:   log,
		met:   met,
		db:    db,
		reqCh: make(chan job, cfg.RequestChanCap),
		conns: make(map[string]net.Conn),
	}
}

// Run starts the owner task and the accept loop, blocking until ctx is
// canceled or a fatal listener error occurs. A SIGINT/SIGTERM received
// while Run is active cancels ctx itself via a derived signal context, so
// callers that just want the teacher's Ctrl+C behavior can pass
// context.Background().
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	lc := net.ListenConfig{Control: setReuseAddr}
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr())
	if err != nil {
		return err
	}
	s.log.Info("listening on %s", s.cfg.Addr())

	var wg sync.WaitGroup
	ownerDone := make(chan struct{})
	go func() {
		s.ownerLoop()
		close(ownerDone)
	}()

	go func() {
		<-ctx.Done()
		s.log.Info("shutdown signal received, closing listener")
		ln.Close()
		s.closeAllConnections()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			s.log.Warn("accept error: %v", err)
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.serveConnection(ctx, conn)
		}()
	}

	wg.Wait()
	close(s.reqCh)
	<-ownerDone
	s.log.Info("shutdown complete")
	return nil
}

// setReuseAddr sets SO_REUSEADDR on the listening socket, the socket-option
// plumbing this server exercises golang.org/x/sys/unix for (the teacher
// relies on Go's net package defaults alone).
func setReuseAddr(network, address string, c syscall.RawConn) error {
	var sockErr error
	err := c.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
	})
	if err != nil {
		return err
	}
	return sockErr
}

// ownerLoop is the database-owner task: the sole goroutine that ever
// touches s.db. It drains reqCh until the server closes it during
// shutdown, dispatching each job and delivering exactly one reply.
func (s *Server) ownerLoop() {
	for j := range s.reqCh {
		out := resp.NewResponse()
		start := time.Now()
		name := j.req.Command().CaseFold().String()

		command.Dispatch(s.db, j.req, out, s.log)

		s.met.ObserveCommand(name, "ok", time.Since(start).Seconds())
		j.replyCh <- out.Bytes()
	}
}

// serveConnection is the per-connection task: it decodes requests off the
// wire, hands each to the owner task over reqCh, and writes back whatever
// reply arrives. It never touches s.db directly.
func (s *Server) serveConnection(ctx context.Context, conn net.Conn) {
	id := uuid.NewString()
	s.log.Info("connection %s accepted from %s", id, conn.RemoteAddr())
	s.met.ConnOpened()

	s.mu.Lock()
	s.conns[id] = conn
	s.mu.Unlock()

	defer func() {
		conn.Close()
		s.mu.Lock()
		delete(s.conns, id)
		s.mu.Unlock()
		s.met.ConnClosed()
		s.log.Info("connection %s closed", id)
	}()

	dec := resp.NewDecoder(conn)
	for {
		req, err := dec.DecodeRequest()
		if err != nil {
			var decErr *resp.DecodeError
			if errors.As(err, &decErr) && decErr.Kind == resp.EmptyRequest {
				continue
			}
			if !errors.Is(err, io.EOF) && !isConnectionClosed(err) {
				s.log.Debug("connection %s: decode error: %v", id, err)
			}
			return
		}

		replyCh := make(chan []byte, 1)
		select {
		case s.reqCh <- job{req: req, replyCh: replyCh}:
		case <-ctx.Done():
			return
		}

		select {
		case reply := <-replyCh:
			if _, err := conn.Write(reply); err != nil {
				s.log.Debug("connection %s: write error: %v", id, err)
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func isConnectionClosed(err error) bool {
	var decErr *resp.DecodeError
	return errors.As(err, &decErr) && decErr.Kind == resp.ConnectionClosed
}

func (s *Server) closeAllConnections() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.conns {
		c.Close()
		delete(s.conns, id)
	}
}

// Package daemon implements the long-lived indexing service: a
// single-threaded, serial accept loop over a Unix domain socket that holds
// per-root-set indexes in memory and dispatches Search/Warmup/List/Launch/
// Status/Shutdown requests, grounded on the teacher's legacy daemon/
// package shape but departing from its concurrent-by-default listener in
// favor of the strictly serial scheduling model the original Rust daemon
// (original_source/src/daemon.rs) uses to keep per-root-set state
// lock-free.
package daemon

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Jeremis70/desktop-indexer/internal/entry"
	"github.com/Jeremis70/desktop-indexer/internal/index"
	"github.com/Jeremis70/desktop-indexer/internal/ipc"
	"github.com/Jeremis70/desktop-indexer/internal/launcher"
	"github.com/Jeremis70/desktop-indexer/internal/logging"
	"github.com/Jeremis70/desktop-indexer/internal/search"
	"github.com/Jeremis70/desktop-indexer/internal/usage"
)

var log = logging.Root.Sublogger("daemon")

// Options configures a Server.
type Options struct {
	SocketPath     string
	CacheDir       string
	UsagePath      string
	RespectTryExec bool
}

// Server holds the in-memory state shared across all requests handled on
// one socket: one index and one incremental search session per distinct
// ordered root-set, plus the usage store. Every field here is touched by
// exactly one goroutine at a time because the accept loop is strictly
// serial (§5 of the design: no internal asynchrony beyond per-request
// parallel scan/parse).
type Server struct {
	opts Options

	instanceID string
	usageStore *usage.Store

	indexes  map[string]*index.Index
	sessions map[string]*search.Session

	listener net.Listener
}

// NewServer constructs a Server. It does not yet bind a socket.
func NewServer(opts Options) *Server {
	return &Server{
		opts:       opts,
		instanceID: uuid.NewString(),
		usageStore: usage.Load(opts.UsagePath),
		indexes:    make(map[string]*index.Index),
		sessions:   make(map[string]*search.Session),
	}
}

// AlreadyRunning reports whether another instance is already accepting
// connections at opts.SocketPath.
func AlreadyRunning(ctx context.Context, socketPath string) bool {
	return ipc.ProbeReachable(ctx, socketPath)
}

// Run binds the listener (removing any stale socket file first) and
// serves requests, one connection at a time, until ctx is cancelled or a
// Shutdown request is handled.
func (s *Server) Run(ctx context.Context) error {
	removeStaleSocket(s.opts.SocketPath)

	listener, err := ipc.NewListener(s.opts.SocketPath)
	if err != nil {
		return errors.Wrap(err, "unable to bind daemon socket")
	}
	s.listener = listener
	defer s.shutdown()

	log.Printf("daemon %s listening on %s", s.instanceID, s.opts.SocketPath)

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			return errors.Wrap(err, "accept failed")
		}

		stop := s.handleConn(conn)
		if stop {
			return nil
		}
	}
}

// handleConn processes exactly one request/response on conn and closes it,
// returning true if the request was Shutdown.
func (s *Server) handleConn(conn net.Conn) bool {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	var req ipc.Request
	if err := ipc.ReadMessage(reader, &req); err != nil {
		_ = ipc.WriteMessage(conn, ipc.ErrorResponse(err.Error()))
		return false
	}

	resp, shutdown := s.dispatch(&req)
	if err := ipc.WriteMessage(conn, resp); err != nil {
		log.Warn(errors.Wrap(err, "writing response"))
	}
	return shutdown
}

func (s *Server) dispatch(req *ipc.Request) (ipc.Response, bool) {
	switch req.Cmd {
	case ipc.CmdSearch:
		return s.handleSearch(req), false
	case ipc.CmdWarmup:
		return s.handleWarmup(req), false
	case ipc.CmdList:
		return s.handleList(req), false
	case ipc.CmdLaunch:
		return s.handleLaunch(req), false
	case ipc.CmdStatus:
		return s.handleStatus(), false
	case ipc.CmdShutdown:
		return ipc.OkResponse(), true
	default:
		return ipc.ErrorResponse("unknown command"), false
	}
}

func (s *Server) handleWarmup(req *ipc.Request) ipc.Response {
	if _, err := s.acquireIndex(req.Roots); err != nil {
		return ipc.ErrorResponse(err.Error())
	}
	return ipc.OkResponse()
}

func (s *Server) handleSearch(req *ipc.Request) ipc.Response {
	idx, err := s.acquireIndex(req.Roots)
	if err != nil {
		return ipc.ErrorResponse(err.Error())
	}

	limit := 20
	if req.Limit != nil {
		limit = *req.Limit
	}

	mode := search.Recency
	if req.EmptyMode != nil && *req.EmptyMode == ipc.EmptyModeFrequency {
		mode = search.Frequency
	}

	entries := s.filterEntries(idx.Entries)
	session := s.sessionFor(req.Roots)

	results := search.Search(entries, s.usageStore, session, req.Query, limit, mode, time.Now())
	return ipc.EntriesResponse(publicEntries(results))
}

func (s *Server) handleList(req *ipc.Request) ipc.Response {
	idx, err := s.acquireIndex(req.Roots)
	if err != nil {
		return ipc.ErrorResponse(err.Error())
	}

	entries := s.filterEntries(idx.Entries)
	out := make([]entry.PublicEntry, len(entries))
	for i, e := range entries {
		out[i] = e.Public()
	}
	return ipc.EntriesResponse(out)
}

func (s *Server) handleLaunch(req *ipc.Request) ipc.Response {
	idx, err := s.acquireIndex(req.Roots)
	if err != nil {
		return ipc.ErrorResponse(err.Error())
	}

	id := strings.TrimSuffix(req.DesktopID, ".desktop")
	var target *entry.EntryRecord
	for _, e := range idx.Entries {
		if e.ID == id {
			target = e
			break
		}
	}
	if target == nil {
		return ipc.ErrorResponse(fmt.Sprintf("Unknown desktop-id: %s", id))
	}

	if s.opts.RespectTryExec && !launcher.TryExecAvailable(target) {
		return ipc.ErrorResponse("application's try_exec binary is unavailable: " + target.ID)
	}

	if err := launcher.Launch(target, req.Action); err != nil {
		if errors.Is(err, launcher.ErrActionNotFound) {
			return ipc.ErrorResponse(fmt.Sprintf("Unknown action '%s' for id=%s", *req.Action, id))
		}
		return ipc.ErrorResponse(err.Error())
	}

	s.usageStore.Increment(target.ID, time.Now())
	s.usageStore.Flush()

	return ipc.OkResponse()
}

func (s *Server) handleStatus() ipc.Response {
	return ipc.StatusResponse(len(s.indexes))
}

func (s *Server) shutdown() {
	s.usageStore.Flush()
	if s.listener != nil {
		s.listener.Close()
	}
	removeStaleSocket(s.opts.SocketPath)
	log.Printf("daemon %s shut down", s.instanceID)
}

// acquireIndex returns the in-memory index for roots, building it if this
// is the first request against that exact ordered root-set.
func (s *Server) acquireIndex(roots []string) (*index.Index, error) {
	key := rootsKey(roots)
	if idx, ok := s.indexes[key]; ok {
		return idx, nil
	}

	idx, err := index.Build(context.Background(), roots, 0, s.opts.CacheDir)
	if err != nil {
		log.Warn(errors.Wrap(err, "index build failed"))
		return nil, errors.New("failed to build index")
	}
	s.indexes[key] = idx
	return idx, nil
}

func (s *Server) sessionFor(roots []string) *search.Session {
	key := rootsKey(roots)
	sess, ok := s.sessions[key]
	if !ok {
		sess = &search.Session{}
		s.sessions[key] = sess
	}
	return sess
}

func (s *Server) filterEntries(entries []*entry.EntryRecord) []*entry.EntryRecord {
	if !s.opts.RespectTryExec {
		return entries
	}
	out := make([]*entry.EntryRecord, 0, len(entries))
	for _, e := range entries {
		if launcher.TryExecAvailable(e) {
			out = append(out, e)
		}
	}
	return out
}

func rootsKey(roots []string) string {
	return strings.Join(roots, "\x00")
}

func publicEntries(results []search.Result) []entry.PublicEntry {
	out := make([]entry.PublicEntry, len(results))
	for i, r := range results {
		out[i] = r.Entry.Public()
	}
	return out
}

package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/voxadev/voxa-assist-go/internal/adapter"
	"github.com/voxadev/voxa-assist-go/internal/assist"
	"github.com/voxadev/voxa-assist-go/internal/config"
	"github.com/voxadev/voxa-assist-go/internal/constants"
)

// Server exposes the assistant over HTTP and WebSocket. Every connection
// speaks the same message shape; WebSocket just keeps the channel open for
// multi-turn dialogs with lower latency.
type Server struct {
	assistant *assist.Assistant
	cfg       *config.Config
	logger    *zap.Logger
	httpSrv   *http.Server
	upgrader  websocket.Upgrader
}

func NewServer(assistant *assist.Assistant, cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		assistant: assistant,
		cfg:       cfg,
		logger:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// clients are native apps and browsers alike
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Start blocks until the listener fails or Shutdown runs.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/answer", s.handleAnswer)
	mux.HandleFunc("/ws", s.handleWebSocket)

	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	s.logger.Info("gateway listening", zap.String("addr", addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var msg adapter.ClientMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	resp := s.answer(r.Context(), &msg)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Warn("response write failed", zap.Error(err))
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	s.logger.Info("websocket client connected", zap.String("remote", conn.RemoteAddr().String()))
	go s.serveConn(r.Context(), conn)
}

// serveConn answers one client until it disconnects. Each connection gets
// its own goroutine; requests on one connection are handled in order. The
// write mutex serializes response and ping frames, gorilla connections
// allow only one concurrent writer.
func (s *Server) serveConn(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close()

	conn.SetReadLimit(constants.GatewayConfig.MaxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(constants.GatewayConfig.PongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(constants.GatewayConfig.PongTimeout))
	})

	var writeMu sync.Mutex
	stop := make(chan struct{})
	defer close(stop)
	go s.pingLoop(conn, &writeMu, stop)

	for {
		var msg adapter.ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		resp := s.answer(ctx, &msg)
		writeMu.Lock()
		_ = conn.SetWriteDeadline(time.Now().Add(constants.GatewayConfig.WriteTimeout))
		err := conn.WriteJSON(resp)
		writeMu.Unlock()
		if err != nil {
			s.logger.Warn("websocket write failed", zap.Error(err))
			return
		}
	}
}

func (s *Server) pingLoop(conn *websocket.Conn, writeMu *sync.Mutex, stop <-chan struct{}) {
	ticker := time.NewTicker(constants.GatewayConfig.PingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			writeMu.Lock()
			_ = conn.SetWriteDeadline(time.Now().Add(constants.GatewayConfig.WriteTimeout))
			err := conn.WriteMessage(websocket.PingMessage, nil)
			writeMu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

func (s *Server) answer(ctx context.Context, msg *adapter.ClientMessage) *adapter.Response {
	req := msg.ToRequest(s.cfg.Assistant.DefaultLanguage, s.cfg.Assistant.Languages)
	result := s.assistant.Answer(ctx, req)
	return adapter.FromResult(req, result)
}

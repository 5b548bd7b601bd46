package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"dispersion/calculator"
	"dispersion/model"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	cfg      calculator.Config
}

func NewServer(addr string, upgrader websocket.Upgrader, cfg calculator.Config) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
		cfg:      cfg,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	hub := NewHub(conn, s.cfg)
	log.WithField("session", hub.id).Info("客户端连接")

	done := make(chan struct{})
	go hub.handleRequest()
	go func() {
		hub.handleResponse()
		close(done)
	}()

	for {
		var msg model.Msg
		err = conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithField("session", hub.id).WithError(err).Warn("读取消息失败")
			}
			break
		}
		hub.msg <- msg
	}
	close(hub.msg)
	<-done
	log.WithField("session", hub.id).Info("客户端断开")
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

func (s *Server) Serve() error {
	log.WithField("addr", s.addr).Info("服务启动")
	return http.ListenAndServe(s.addr, s.Handler())
}

package server

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/rs/xid"
	log "github.com/sirupsen/logrus"

	"dispersion/calculator"
	"dispersion/model"
)

// 消息类型
const (
	msgEnv    = "env"
	msgEnvSet = "envSet"
	msgStart  = "start"
	msgResult = "result"
	msgError  = "error"
)

// Hub 负责一个连接的请求处理，请求按顺序逐个执行
type Hub struct {
	id   string
	conn *websocket.Conn
	cfg  calculator.Config
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
}

func NewHub(conn *websocket.Conn, cfg calculator.Config) *Hub {
	return &Hub{
		id:    xid.New().String(),
		conn:  conn,
		cfg:   cfg,
		msg:   make(chan model.Msg, 10),
		reply: make(chan model.Msg, 10),
	}
}

func (h *Hub) handleResponse() {
	for reply := range h.reply {
		err := h.conn.WriteJSON(&reply)
		if err != nil {
			log.WithField("session", h.id).WithError(err).Warn("发送消息失败")
		}
	}
}

func (h *Hub) handleRequest() {
	defer close(h.reply)
	for msg := range h.msg {
		h.reply <- h.dispatch(msg)
	}
}

func (h *Hub) dispatch(msg model.Msg) (reply model.Msg) {
	// 单个请求出错不能影响整个服务
	defer func() {
		if r := recover(); r != nil {
			log.WithField("session", h.id).Error("处理请求失败: ", r)
			reply = errorMsg(fmt.Errorf("internal error: %v", r))
		}
	}()

	switch msg.Type {
	case msgEnv:
		var env model.Env
		if err := json.Unmarshal([]byte(msg.Content), &env); err != nil {
			return errorMsg(err)
		}
		cfg := h.cfg.WithEnv(env)
		if err := cfg.Validate(); err != nil {
			return errorMsg(err)
		}
		h.cfg = cfg
		log.WithFields(log.Fields{
			"session":    h.id,
			"containers": cfg.Containers,
			"rounds":     cfg.Rounds,
		}).Info("设置模拟参数")
		return model.Msg{
			Type:    msgEnvSet,
			Content: "env is set",
		}
	case msgStart:
		records, err := calculator.Run(h.cfg.Containers, h.cfg.Rounds, h.cfg.Params)
		if err != nil {
			return errorMsg(err)
		}
		data, err := json.Marshal(records)
		if err != nil {
			return errorMsg(err)
		}
		return model.Msg{
			Type:    msgResult,
			Content: string(data),
		}
	default:
		log.WithField("session", h.id).Warn("no such type: ", msg.Type)
		return model.Msg{
			Type:    msgError,
			Content: "no such type: " + msg.Type,
		}
	}
}

func errorMsg(err error) model.Msg {
	return model.Msg{
		Type:    msgError,
		Content: err.Error(),
	}
}

package http

import (
	"context"
	"errors"
	"io"
	stdhttp "net/http"

	"github.com/coder/websocket"
	"github.com/rs/zerolog"

	"textrelay/internal/config"
	"textrelay/internal/core"
	"textrelay/internal/proto"
)

// WSHandler upgrades HTTP connections and runs the reader/writer
// goroutine pair for each: the reader decodes frames and drives the
// registry through a core.Session, the writer drains the client's
// outbound queue onto the socket.
type WSHandler struct {
	reg *core.Registry
	cfg config.Config
	log *zerolog.Logger
}

// NewWSHandler builds a new WebSocket handler.
func NewWSHandler(reg *core.Registry, cfg config.Config, logger *zerolog.Logger) stdhttp.Handler {
	return &WSHandler{reg: reg, cfg: cfg, log: logger}
}

func (h *WSHandler) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	if h.cfg.MaxFrameBytes > 0 {
		conn.SetReadLimit(h.cfg.MaxFrameBytes)
	}

	client := core.NewClient(h.reg.NextID())
	h.reg.Register(client)
	session := core.NewSession(h.reg, client, h.log)
	defer session.Close()

	h.log.Debug().Int64("client_id", client.ID).Msg("ws connection established")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	go func() {
		errCh <- h.readLoop(ctx, conn, session)
	}()
	go func() {
		errCh <- h.writeLoop(ctx, conn, client)
	}()

	err = <-errCh
	cancel() // stop the other goroutine
	<-errCh

	status := websocket.StatusNormalClosure
	reason := "closing"
	if err != nil && !errors.Is(err, context.Canceled) {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		if s := websocket.CloseStatus(err); s != 0 {
			status = s
		}
		if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
			err = nil
		}
		if err != nil {
			if status == websocket.StatusNormalClosure {
				status = websocket.StatusInternalError
			}
			reason = err.Error()
			h.log.Warn().Err(err).Int64("client_id", client.ID).Msg("ws connection closed with error")
		}
	}

	h.log.Debug().Int64("client_id", client.ID).Str("last_room", session.Current()).
		Msg("ws connection closed")
	conn.Close(status, reason)
}

// readLoop is the connection handler: one frame in, one registry op.
// Malformed frames are skipped; only transport errors end the loop.
func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, session *core.Session) error {
	limiter := newFrameLimiter(h.cfg.MessageRateLimit)
	stop := make(chan struct{})
	defer close(stop)
	limiter.startReset(stop)

	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}
		if typ != websocket.MessageText {
			continue
		}
		if !limiter.allow() {
			h.log.Warn().Int64("client_id", session.Client().ID).Msg("inbound frame rate limit hit, dropping frame")
			continue
		}
		session.Handle(proto.Parse(string(data)))
	}
}

// writeLoop is the outbound writer: it owns the socket's write half
// and serializes all broadcast pushes into one FIFO write sequence.
func (h *WSHandler) writeLoop(ctx context.Context, conn *websocket.Conn, client *core.Client) error {
	for {
		frame, ok := client.Outbound.Pop(ctx)
		if !ok {
			// Queue closed (client dropped) or context cancelled.
			return ctx.Err()
		}
		if err := conn.Write(ctx, websocket.MessageText, []byte(frame)); err != nil {
			h.log.Error().Err(err).Int64("client_id", client.ID).Msg("write ws frame")
			return err
		}
	}
}

package http

import (
	"style_server/core/domain"
	"style_server/core/port/in"
	"style_server/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ChatHandler serves the fashion assistant.
type ChatHandler struct {
	svc           in.ChatService
	defaultUserID int64
}

func NewChatHandler(svc in.ChatService, defaultUserID int64) *ChatHandler {
	return &ChatHandler{svc: svc, defaultUserID: defaultUserID}
}

// Register mounts the chat routes. mw runs before SendMessage only.
func (h *ChatHandler) Register(r fiber.Router, mw ...fiber.Handler) {
	chat := r.Group("/chat")
	chat.Post("/message", append(mw, h.SendMessage)...)
	chat.Post("/history", h.SaveHistory)
	chat.Get("/history/:userId", h.History)
}

type sendMessageRequest struct {
	Message string `json:"message"`
	UserID  *int64 `json:"user_id,omitempty"`
}

// POST /api/chat/message
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	var req sendMessageRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	userID := h.defaultUserID
	if req.UserID != nil && *req.UserID > 0 {
		userID = *req.UserID
	}

	reply, err := h.svc.SendMessage(c.UserContext(), userID, req.Message)
	if err != nil {
		return err
	}
	return response.OK(c, reply)
}

// GET /api/chat/history/:userId?limit=
func (h *ChatHandler) History(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	history, err := h.svc.History(c.UserContext(), userID, c.QueryInt("limit", 0))
	if err != nil {
		return err
	}
	return response.OK(c, history)
}

type saveHistoryRequest struct {
	UserID   *int64 `json:"user_id,omitempty"`
	Message  string `json:"message"`
	Response string `json:"response"`
}

// POST /api/chat/history
func (h *ChatHandler) SaveHistory(c *fiber.Ctx) error {
	var req saveHistoryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	userID := h.defaultUserID
	if req.UserID != nil {
		userID = *req.UserID
	}

	exchange := &domain.ChatExchange{
		UserID:   userID,
		Message:  req.Message,
		Response: req.Response,
	}
	if err := h.svc.SaveExchange(c.UserContext(), exchange); err != nil {
		return err
	}
	return response.Created(c, exchange)
}

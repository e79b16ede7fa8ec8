package http

import (
	"github.com/gin-gonic/gin"

	"confluence-assistant/internal/middleware"
	"confluence-assistant/pkg/response"
)

// Send godoc
// @Summary     Send a chat message
// @Description Runs one chat turn: resolves the intent and executes the Confluence action it names.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body sendReq true "Message, optional conversation id and uploaded document"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Conversation not found"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Send(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Send: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSendResp(output))
}

// ListConversations godoc
// @Summary     List conversations
// @Description Returns the user's conversations, most recently active first.
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listConversationsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/chat/conversations [GET]
func (h *handler) ListConversations(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	conversations, err := h.uc.ListConversations(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListConversations: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListConversationsResp(conversations))
}

// History godoc
// @Summary     Conversation history
// @Description Returns one conversation and its messages in order.
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Conversation ID"
// @Success     200 {object} historyResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/conversations/{id}/messages [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.History(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// DeleteConversation godoc
// @Summary     Delete a conversation
// @Description Permanently removes a conversation and its messages.
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Conversation ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/conversations/{id} [DELETE]
func (h *handler) DeleteConversation(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.DeleteConversation(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.DeleteConversation: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

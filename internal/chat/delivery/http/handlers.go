package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reminder-ai/pkg/response"
)

// Chat responses are flat {reply, conversation_id} objects rather than the
// response envelope; the web client consumes them directly.

// Chat godoc
// @Summary     Send a chat message
// @Description Routes the message by intent: reminder requests run the tool-calling pipeline, everything else plain generation. A conversation_id is minted when absent.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.JSON(http.StatusOK, h.newChatResp(output))
}

// GeneralChat godoc
// @Summary     Send a general chat message
// @Description Always uses plain generation without reminder tools.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/general-chat [POST]
func (h *handler) GeneralChat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GeneralChat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GeneralChat: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.JSON(http.StatusOK, h.newChatResp(output))
}

// Conversation godoc
// @Summary     Get conversation history
// @Description Returns the stored turns of a conversation, oldest first. Unknown ids yield an empty list.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Conversation ID"
// @Success     200 {object} conversationResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/conversations/{id} [GET]
func (h *handler) Conversation(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	output, err := h.uc.History(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.JSON(http.StatusOK, h.newConversationResp(output))
}

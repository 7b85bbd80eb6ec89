package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/suphakit/gpu-advisor/internal/common"
	"github.com/suphakit/gpu-advisor/internal/line"
)

// Webhook is the LINE entry point. The signature is checked against the raw
// body before anything touches state; per-event handler errors are logged
// and swallowed so the platform always gets its 200 acknowledgment.
func (h *Handler) Webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "cannot read body")
		return
	}

	signature := c.GetHeader("X-Line-Signature")
	if !line.ValidateSignature(h.ChannelSecret, body, signature) {
		common.Fail(c, http.StatusBadRequest, 10010, "invalid signature")
		return
	}

	var req line.WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10002, "invalid json")
		return
	}

	for _, ev := range req.Events {
		if !ev.IsTextMessage() {
			continue
		}
		if err := h.Bot.HandleMessage(c.Request.Context(), ev.Source.UserID, ev.ReplyToken, ev.Message.Text); err != nil {
			log.Printf("webhook: turn failed user=%s err=%v", ev.Source.UserID, err)
		}
	}

	c.String(http.StatusOK, "OK")
}

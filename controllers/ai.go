package controllers

import (
	"linkstash/internal/retrieval"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AIController struct {
	Logger    *zap.SugaredLogger
	Retriever *retrieval.Retriever
	Generator *retrieval.Generator
}

type questionParams struct {
	Question string `json:"question" binding:"required"`
}

// Search runs the retrieval read path and returns the ranked snippets without
// generating an answer. Clients that drive their own LLM orchestration use
// this to fetch grounding context.
func (ac AIController) Search(c *gin.Context) {
	var payload questionParams
	if err := c.BindJSON(&payload); err != nil {
		RespondBadRequestErr(c, []error{err})
		return
	}

	snippets, err := ac.Retriever.Retrieve(c.Request.Context(), CurrentUserID(c), payload.Question)
	if err != nil {
		ac.Logger.Errorf("Error retrieving snippets: %v", err)
		RespondInternalErr(c)
		return
	}

	RespondOK(c, snippets)
}

// Chat answers a question grounded on the user's bookmarks. Retrieval is
// advisory here: if it fails, the answer is generated without grounding
// context instead of failing the chat turn.
func (ac AIController) Chat(c *gin.Context) {
	var payload questionParams
	if err := c.BindJSON(&payload); err != nil {
		RespondBadRequestErr(c, []error{err})
		return
	}

	userID := CurrentUserID(c)

	snippets, err := ac.Retriever.Retrieve(c.Request.Context(), userID, payload.Question)
	if err != nil {
		ac.Logger.Warnw("retrieval failed, answering without grounding context", "error", err)
		snippets = nil
	}

	answer, err := ac.Generator.Answer(c.Request.Context(), payload.Question, snippets)
	if err != nil {
		ac.Logger.Errorf("Error generating answer: %v", err)
		RespondInternalErr(c)
		return
	}

	RespondOK(c, gin.H{"answer": answer, "sources": snippets})
}

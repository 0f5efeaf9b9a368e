// Package api exposes the decoder and encoder over HTTP as synchronous
// POST endpoints.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samecodec/sameeas/pkg/afsk"
	"github.com/samecodec/sameeas/pkg/archive"
	"github.com/samecodec/sameeas/pkg/assembler"
	"github.com/samecodec/sameeas/pkg/dictionary"
	"github.com/samecodec/sameeas/pkg/samerr"
	"github.com/samecodec/sameeas/pkg/same"
)

// Server wires the decoder, assembler and archive into gin routes.
type Server struct {
	Dictionary *dictionary.Dictionary
	Assembler  *assembler.Assembler
	Archive    *archive.Archive
}

// New returns a Server and its configured gin engine.
func New(dict *dictionary.Dictionary, asm *assembler.Assembler, arc *archive.Archive) (*Server, *gin.Engine) {
	s := &Server{Dictionary: dict, Assembler: asm, Archive: arc}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.POST("/decode", s.handleDecode)
	router.POST("/generate", s.handleGenerate)
	router.GET("/history", s.handleHistory)

	return s, router
}

type decodeRequest struct {
	Header string `json:"header" binding:"required"`
}

func (s *Server) handleDecode(c *gin.Context) {
	var req decodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := same.Decode(s.Dictionary, req.Header)
	if err != nil {
		respondError(c, err)
		return
	}

	if s.Archive != nil {
		_ = s.Archive.RecordDecode(req.Header, alert.Organization, alert.Event, alert.Locations, alert.Sender, alert.Formatted)
	}

	c.JSON(http.StatusOK, gin.H{
		"organization": alert.Organization,
		"event":        alert.Event,
		"locations":    alert.Locations,
		"timing": gin.H{
			"start": alert.Timing.Start,
			"end":   alert.Timing.End,
		},
		"sender":    alert.Sender,
		"formatted": alert.Formatted,
	})
}

type generateRequest struct {
	ZCZCMessage   string `json:"zczc_message" binding:"required"`
	Mode          string `json:"mode"`
	AttentionTone *bool  `json:"attention_tone"`
	AudioPath     string `json:"audio_path"`
	OutputFile    string `json:"output_file"`
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode, err := afsk.ParseMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := assembler.DefaultOptions()
	opts.Mode = mode
	if req.AttentionTone != nil {
		opts.AttentionTone = *req.AttentionTone
	}
	if req.AudioPath != "" {
		opts.AudioPath = req.AudioPath
	}
	if req.OutputFile != "" {
		opts.OutputFile = req.OutputFile
	}

	result, err := s.Assembler.Generate(context.Background(), req.ZCZCMessage, opts)
	if err != nil {
		respondError(c, err)
		return
	}

	if s.Archive != nil {
		_ = s.Archive.RecordGenerate(req.ZCZCMessage, mode.String(), opts.OutputFile)
	}

	resp := gin.H{
		"output_file":  opts.OutputFile,
		"sample_count": len(result.Samples),
	}
	if len(result.Diagnostics) > 0 {
		diagnostics := make([]string, len(result.Diagnostics))
		for i, d := range result.Diagnostics {
			diagnostics[i] = d.Stage + ": " + d.Err.Error()
		}
		resp["diagnostics"] = diagnostics
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleHistory(c *gin.Context) {
	if s.Archive == nil {
		c.JSON(http.StatusOK, gin.H{"records": []archive.Record{}})
		return
	}

	records, err := s.Archive.List(archive.Query{Limit: 100})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

// respondError maps a samerr.Error to an HTTP 422 (well-formed request,
// semantically invalid SAME data) and anything else to a 500.
func respondError(c *gin.Context, err error) {
	if kind, ok := samerr.KindOf(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "kind": string(kind)})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

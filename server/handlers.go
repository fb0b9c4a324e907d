package server

import (
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/scribe/errors"
	"github.com/skillsenselab/scribe/llm"
	"github.com/skillsenselab/scribe/observability"
	"github.com/skillsenselab/scribe/storage"
	"github.com/skillsenselab/scribe/summary"
	"github.com/skillsenselab/scribe/transcription"
	"github.com/skillsenselab/scribe/validation"
	"github.com/skillsenselab/scribe/version"
)

// Dependencies holds the collaborators the command handlers call into.
type Dependencies struct {
	Transcriber transcription.Provider
	LLM         llm.Provider
	Summarizer  *summary.Summarizer
	Recordings  *storage.Recordings
	Metrics     *observability.Metrics
}

// TranscribeRequest is the body of POST /api/commands/transcribe.
type TranscribeRequest struct {
	FilePath string `json:"file_path" validate:"required"`
}

// SummarizeRequest is the body of POST /api/commands/summarize.
type SummarizeRequest struct {
	Text string `json:"text" validate:"required"`
}

// SaveAudioRequest is the body of POST /api/commands/save-audio. Payload is
// base64 in JSON, raw bytes after binding. The filename is trusted as given;
// the payload may be any size, including empty.
type SaveAudioRequest struct {
	Filename string `json:"filename" validate:"required"`
	Payload  []byte `json:"payload"`
}

// RegisterRoutes mounts the command surface and the recordings endpoints.
func (s *Server) RegisterRoutes(deps Dependencies) {
	api := s.engine.Group("/api")

	api.GET("/health", s.handleHealth(deps))
	api.GET("/version", func(c *gin.Context) {
		RespondOK(c, version.GetVersionInfo())
	})

	commands := api.Group("/commands")
	commands.POST("/transcribe", s.handleTranscribe(deps))
	commands.POST("/summarize", s.handleSummarize(deps))
	commands.POST("/save-audio", s.handleSaveAudio(deps))

	recordings := api.Group("/recordings")
	recordings.GET("", s.handleListRecordings(deps))
	recordings.GET("/:name", s.handleGetRecording(deps))
	recordings.DELETE("/:name", s.handleDeleteRecording(deps))
}

func (s *Server) handleTranscribe(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TranscribeRequest
		if err := bindAndValidate(c, &req); err != nil {
			RespondWithError(c, err)
			return
		}

		ctx, span := observability.StartSpan(c.Request.Context(), "command.transcribe")
		defer span.End()

		start := time.Now()
		result, err := deps.Transcriber.Transcribe(ctx, transcription.Request{AudioPath: req.FilePath})
		deps.Metrics.Record(ctx, "transcribe", time.Since(start), err)
		if err != nil {
			span.RecordError(err)
			RespondWithError(c, apperrors.ExternalService("sidecar", err.Error()))
			return
		}
		RespondOK(c, result)
	}
}

func (s *Server) handleSummarize(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SummarizeRequest
		if err := bindAndValidate(c, &req); err != nil {
			RespondWithError(c, err)
			return
		}

		ctx, span := observability.StartSpan(c.Request.Context(), "command.summarize")
		defer span.End()

		start := time.Now()
		text, err := deps.Summarizer.Summarize(ctx, req.Text)
		deps.Metrics.Record(ctx, "summarize", time.Since(start), err)
		if err != nil {
			span.RecordError(err)
			RespondWithError(c, apperrors.ExternalService("ollama", err.Error()))
			return
		}
		RespondOK(c, text)
	}
}

func (s *Server) handleSaveAudio(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SaveAudioRequest
		if err := bindAndValidate(c, &req); err != nil {
			RespondWithError(c, err)
			return
		}

		ctx, span := observability.StartSpan(c.Request.Context(), "command.save_audio")
		defer span.End()

		start := time.Now()
		path, err := deps.Recordings.Save(req.Filename, req.Payload)
		deps.Metrics.Record(ctx, "save_audio", time.Since(start), err)
		if err != nil {
			span.RecordError(err)
			RespondWithError(c, apperrors.Filesystem("save audio", err))
			return
		}
		RespondCreated(c, gin.H{"path": path})
	}
}

func (s *Server) handleListRecordings(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		files, err := deps.Recordings.List()
		if err != nil {
			RespondWithError(c, apperrors.Filesystem("list recordings", err))
			return
		}
		RespondOK(c, files)
	}
}

func (s *Server) handleGetRecording(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		data, err := deps.Recordings.Open(name)
		if err != nil {
			if ok, _ := deps.Recordings.Exists(name); !ok {
				RespondWithError(c, apperrors.NotFound("recording", name))
				return
			}
			RespondWithError(c, apperrors.Filesystem("read recording", err))
			return
		}
		RespondOK(c, gin.H{"filename": name, "payload": data})
	}
}

func (s *Server) handleDeleteRecording(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Recordings.Delete(c.Param("name")); err != nil {
			RespondWithError(c, apperrors.Filesystem("delete recording", err))
			return
		}
		RespondNoContent(c)
	}
}

func (s *Server) handleHealth(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		components := gin.H{}
		status := "healthy"

		if deps.Transcriber != nil {
			ok := deps.Transcriber.IsAvailable(ctx)
			components[deps.Transcriber.Name()] = availability(ok)
			if !ok {
				status = "degraded"
			}
		}
		if deps.LLM != nil {
			ok := deps.LLM.IsAvailable(ctx)
			components[deps.LLM.Name()] = availability(ok)
			if !ok {
				status = "degraded"
			}
		}

		c.JSON(200, gin.H{
			"status":     status,
			"service":    "scribed",
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"components": components,
		})
	}
}

func availability(ok bool) string {
	if ok {
		return "available"
	}
	return "unavailable"
}

// bindAndValidate decodes the JSON body and applies struct validation.
func bindAndValidate(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return apperrors.Validation("invalid request body: " + err.Error())
	}
	return validation.Validate(req)
}

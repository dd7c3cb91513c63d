package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hmandava/career-compass/pkg/logger"
	"github.com/hmandava/career-compass/pkg/plan"
	"github.com/hmandava/career-compass/pkg/renderer"
	"github.com/tidwall/gjson"
)

// PlanGenerator produces a learning plan for a set of user inputs. The
// Claude client satisfies this; tests substitute their own.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, req plan.Request) (plan.LearningPlan, error)
}

// PlanHandler serves the plan generation and download endpoints.
type PlanHandler struct {
	generator PlanGenerator
	log       *logger.Logger
}

// NewPlanHandler creates a plan handler.
func NewPlanHandler(generator PlanGenerator, log *logger.Logger) (handler *PlanHandler) {
	handler = &PlanHandler{
		generator: generator,
		log:       log,
	}
	return handler
}

// requiredFields are the generate request fields, validated in order.
var requiredFields = []string{"goal", "skillLevel", "skills", "hours"}

// Generate handles POST /generate. Fields are read leniently with gjson so
// hours may arrive as a JSON number or a string.
func (h *PlanHandler) Generate(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil || len(body) == 0 || !gjson.ValidBytes(body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	values := make(map[string]string, len(requiredFields))
	for _, field := range requiredFields {
		value := gjson.GetBytes(body, field)
		if !value.Exists() || value.String() == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing required field: " + field})
			return
		}
		values[field] = value.String()
	}

	req := plan.Request{
		Goal:       values["goal"],
		SkillLevel: values["skillLevel"],
		Skills:     values["skills"],
		Hours:      values["hours"],
	}

	p, err := h.generator.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		h.log.Error("plan generation failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate plan from AI"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// DownloadPDF handles POST /download_pdf. The body is treated as a plan,
// wherever it was produced, and streamed back as a PDF attachment.
func (h *PlanHandler) DownloadPDF(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil || len(body) == 0 {
		c.String(http.StatusBadRequest, "invalid data")
		return
	}

	var p plan.LearningPlan
	err = json.Unmarshal(body, &p)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid data")
		return
	}

	pdfBytes, err := renderer.RenderPlan(p)
	if err != nil {
		h.log.Error("plan rendering failed", "error", err.Error())
		c.String(http.StatusInternalServerError, "failed to render plan")
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+renderer.AttachmentFilename)
	c.Data(http.StatusOK, renderer.ContentType, pdfBytes)
}

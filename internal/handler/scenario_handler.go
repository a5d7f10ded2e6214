package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/GTDGit/fas_dashboard/internal/models"
	"github.com/GTDGit/fas_dashboard/internal/service"
	"github.com/GTDGit/fas_dashboard/internal/utils"
)

// ScenarioHandler handles scenario-related HTTP endpoints.
type ScenarioHandler struct {
	scenarioService *service.ScenarioService
}

// NewScenarioHandler constructs a ScenarioHandler.
func NewScenarioHandler(scenarioService *service.ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{scenarioService: scenarioService}
}

// GetScenarios returns the scenario list with optional filters and pagination.
func (h *ScenarioHandler) GetScenarios(c *gin.Context) {
	q := parseListQuery(c)

	res, err := h.scenarioService.List(c.Request.Context(), q.criteria, q.page, q.pageSize)
	if err != nil {
		writeError(c, err, "Failed to get scenarios")
		return
	}

	utils.SuccessWithPagination(c, 200, "Scenarios retrieved successfully", gin.H{
		"scenarios": res.Items,
	}, res.Page, res.PageSize, res.Total)
}

// GetScenario returns a single scenario.
func (h *ScenarioHandler) GetScenario(c *gin.Context) {
	s, err := h.scenarioService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "Failed to get scenario")
		return
	}
	utils.Success(c, 200, "Scenario retrieved successfully", s)
}

// GetQuarantine returns scenario payloads that failed to load.
func (h *ScenarioHandler) GetQuarantine(c *gin.Context) {
	entries, err := h.scenarioService.Quarantined(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to get quarantined scenarios")
		return
	}
	utils.Success(c, 200, "Quarantined scenarios retrieved successfully", gin.H{
		"entries": entries,
	})
}

// CreateScenario handles POST /v1/scenarios.
func (h *ScenarioHandler) CreateScenario(c *gin.Context) {
	var draft models.ScenarioDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	s, err := h.scenarioService.Create(c.Request.Context(), draft)
	if err != nil {
		writeError(c, err, "Failed to create scenario")
		return
	}
	utils.Success(c, 201, "Scenario created successfully", s)
}

// PreviewScenario renders the result of a draft without saving it.
func (h *ScenarioHandler) PreviewScenario(c *gin.Context) {
	var draft models.ScenarioDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	result, err := h.scenarioService.Preview(c.Request.Context(), draft)
	if err != nil {
		writeError(c, err, "Failed to generate result")
		return
	}
	utils.Success(c, 200, "Result generated successfully", gin.H{"result": result})
}

// DeleteScenario handles DELETE /v1/scenarios/:id.
func (h *ScenarioHandler) DeleteScenario(c *gin.Context) {
	s, err := h.scenarioService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "Failed to delete scenario")
		return
	}
	utils.Success(c, 200, "Scenario deleted successfully", s)
}

// GetReport downloads a scenario as a text document.
func (h *ScenarioHandler) GetReport(c *gin.Context) {
	id := c.Param("id")
	report, err := h.scenarioService.Report(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Failed to build report")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+service.ReportFileName(id)+`"`)
	c.Data(200, "text/plain; charset=utf-8", []byte(report))
}

package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fantasy-gp/internal/api/models"
	"fantasy-gp/internal/rules"
	"fantasy-gp/internal/season"
)

// SimulateHandler runs seasons on demand and keeps completed runs in
// memory for the read-side views. Persistence is deliberately out of
// scope; a run lives as long as the process.
type SimulateHandler struct {
	rules *rules.Rules

	mu   sync.RWMutex
	runs map[string]*season.Artifact
}

func NewSimulateHandler(r *rules.Rules) *SimulateHandler {
	return &SimulateHandler{
		rules: r,
		runs:  make(map[string]*season.Artifact),
	}
}

// Run handles POST /api/v1/simulate.
func (h *SimulateHandler) Run(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	seed := season.DefaultSeed
	if req.Seed != nil {
		seed = *req.Seed
	}

	r := *h.rules
	if req.Rounds > 0 {
		r.SeasonRounds = req.Rounds
	}

	art, err := season.New(&r).Run(seed)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "SIMULATION_FAILED", Message: err.Error()},
		})
		return
	}

	id := uuid.New().String()
	h.mu.Lock()
	h.runs[id] = art
	h.mu.Unlock()

	resp := models.SimulateResponse{
		ID:        id,
		Seed:      art.Seed,
		Rounds:    art.Rounds,
		Standings: art.Standings,
	}
	if req.IncludeArtifact {
		resp.Artifact = art
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SimulateHandler) get(c *gin.Context) (*season.Artifact, bool) {
	id := c.Param("id")
	h.mu.RLock()
	art, ok := h.runs[id]
	h.mu.RUnlock()
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "RUN_NOT_FOUND", Message: "no simulation with id " + id},
		})
		return nil, false
	}
	return art, true
}

// Get handles GET /api/v1/simulations/:id.
func (h *SimulateHandler) Get(c *gin.Context) {
	if art, ok := h.get(c); ok {
		c.JSON(http.StatusOK, art)
	}
}

// Standings handles GET /api/v1/simulations/:id/standings.
func (h *SimulateHandler) Standings(c *gin.Context) {
	if art, ok := h.get(c); ok {
		c.JSON(http.StatusOK, art.Standings)
	}
}

// Prices handles GET /api/v1/simulations/:id/prices.
func (h *SimulateHandler) Prices(c *gin.Context) {
	if art, ok := h.get(c); ok {
		c.JSON(http.StatusOK, models.PricesResponse{
			ID:                c.Param("id"),
			DriverPrices:      art.DriverPrices,
			ConstructorPrices: art.ConstructorPrices,
		})
	}
}

// Trades handles GET /api/v1/simulations/:id/trades.
func (h *SimulateHandler) Trades(c *gin.Context) {
	if art, ok := h.get(c); ok {
		c.JSON(http.StatusOK, art.TradeLog)
	}
}

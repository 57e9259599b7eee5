package http

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/smartcity/traffic-analyzer/internal/domain"
	"github.com/smartcity/traffic-analyzer/internal/service"
	"github.com/smartcity/traffic-analyzer/pkg/utils"
)

// MaxIncidentCount caps the batch size a client may request
const MaxIncidentCount = 1000

// Handler contains all HTTP handlers
type Handler struct {
	dashboardSvc *service.DashboardService
}

// NewHandler creates a new handler
func NewHandler(dashboardSvc *service.DashboardService) *Handler {
	return &Handler{dashboardSvc: dashboardSvc}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "traffic-analyzer",
		"version": "1.0.0",
	})
}

// GetLocations returns the city and the location selection list
func (h *Handler) GetLocations(c *fiber.Ctx) error {
	reg := h.dashboardSvc.Registry()
	return c.JSON(fiber.Map{
		"success": true,
		"city":    reg.City(),
		"options": reg.Options(),
	})
}

// GetDashboard returns statistics for a freshly generated incident batch
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	q, err := dashboardQuery(c, c.Query("location"), c.QueryInt("count", 0))
	if err != nil {
		return err
	}

	dash, err := h.dashboardSvc.GetDashboard(c.Context(), q)
	if err != nil {
		return toFiberError(err, "Failed to build dashboard")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    dash,
	})
}

type insightRequest struct {
	Location string `json:"location"`
	Question string `json:"question"`
	Count    int    `json:"count"`
	Seed     uint64 `json:"seed"` // 0 falls back to the server default
}

// AskInsight answers a question about the current incident data.
// Text generation failures still produce a 200 with the failure described in the answer.
func (h *Handler) AskInsight(c *fiber.Ctx) error {
	var req insightRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.Question) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Question is required")
	}

	q, err := dashboardQuery(c, req.Location, req.Count)
	if err != nil {
		return err
	}
	if req.Seed != 0 {
		q.Seed = req.Seed
	}

	answer, err := h.dashboardSvc.Ask(c.Context(), q, req.Question)
	if err != nil {
		return toFiberError(err, "Failed to answer question")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    answer,
	})
}

type historyPointView struct {
	domain.HistoryPoint
	Date                string  `json:"date"`
	AverageDelayMinutes float64 `json:"average_delay_minutes"`
}

// GetHistory returns the synthetic daily series for a location
func (h *Handler) GetHistory(c *fiber.Ctx) error {
	seed, err := querySeed(c)
	if err != nil {
		return err
	}
	start, err := queryDate(c, "start")
	if err != nil {
		return err
	}
	end, err := queryDate(c, "end")
	if err != nil {
		return err
	}
	res, err := h.dashboardSvc.GetHistory(c.Context(), service.HistoryQuery{
		Location: domain.Location(c.Query("location")),
		Start:    start,
		End:      end,
		Seed:     seed,
	})
	if err != nil {
		return toFiberError(err, "Failed to generate history")
	}

	points := make([]historyPointView, len(res.Points))
	for i, p := range res.Points {
		points[i] = historyPointView{
			HistoryPoint:        p,
			Date:                p.Date.Format(time.DateOnly),
			AverageDelayMinutes: utils.RoundTo(utils.Minutes(p.AverageDelaySeconds), 2),
		}
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"location": res.Location,
		"start":    res.Start.Format(time.DateOnly),
		"end":      res.End.Format(time.DateOnly),
		"data":     points,
		"count":    len(points),
	})
}

// Predict returns a point prediction for a location and date
func (h *Handler) Predict(c *fiber.Ctx) error {
	seed, err := querySeed(c)
	if err != nil {
		return err
	}
	date, err := queryDate(c, "date")
	if err != nil {
		return err
	}

	p, err := h.dashboardSvc.GetPrediction(c.Context(), service.PredictionQuery{
		Location: domain.Location(c.Query("location")),
		Date:     date,
		Seed:     seed,
	})
	if err != nil {
		return toFiberError(err, "Failed to get prediction")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    p,
		"display": fiber.Map{
			"date":          p.Date.Format(time.DateOnly),
			"incidents":     p.PredictedIncidentCount,
			"average_delay": service.FormatAverageDelay(p.PredictedAverageDelaySeconds),
		},
	})
}

func dashboardQuery(c *fiber.Ctx, location string, count int) (service.DashboardQuery, error) {
	seed, err := querySeed(c)
	if err != nil {
		return service.DashboardQuery{}, err
	}
	if count > 0 {
		count = utils.Clamp(count, 1, MaxIncidentCount)
	}
	return service.DashboardQuery{
		Location: domain.Location(location),
		Count:    count,
		Seed:     seed,
	}, nil
}

// querySeed reads the optional seed parameter. A missing seed or 0 means the server
// default (RANDOM_SEED) applies, or a fresh seed when no default is configured.
func querySeed(c *fiber.Ctx) (uint64, error) {
	raw := c.Query("seed")
	if raw == "" {
		return 0, nil
	}
	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid seed")
	}
	return seed, nil
}

func queryDate(c *fiber.Ctx, key string) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Invalid "+key+" date, expected YYYY-MM-DD")
	}
	return t, nil
}

func toFiberError(err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrUnknownLocation), errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrRangeTooLong):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, fallback)
	}
}

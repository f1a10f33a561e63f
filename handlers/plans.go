package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wayplan/database"
	"wayplan/directory"
	"wayplan/planner"
)

// Flight ticket counts the booking UI accepts.
const (
	minQuantity = 1
	maxQuantity = 9
)

type CreatePlanRequest struct {
	UserID string                 `json:"user_id" binding:"required"`
	Kind   planner.Kind           `json:"kind" binding:"required"`
	Flight *planner.FlightBooking `json:"flight,omitempty"`
	Hotel  *planner.HotelBooking  `json:"hotel,omitempty"`
	Car    *planner.CarBooking    `json:"car,omitempty"`
}

type CreatePlanResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func CreatePlanHandler(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if !req.Kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be flight, hotel or car"})
		return
	}

	quantity := 1
	var record any

	switch req.Kind {
	case planner.KindFlight:
		if req.Flight == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "flight payload is required for kind=flight"})
			return
		}
		req.Flight.Quantity = clampQuantity(req.Flight.Quantity)
		quantity = req.Flight.Quantity
		record = req.Flight

	case planner.KindHotel:
		if req.Hotel == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "hotel payload is required for kind=hotel"})
			return
		}
		// The cost calculator trusts the stored date order, so reject a
		// bad range here, before the record exists.
		in, okIn := req.Hotel.CheckInTime()
		out, okOut := req.Hotel.CheckOutTime()
		if !okIn || !okOut {
			c.JSON(http.StatusBadRequest, gin.H{"error": "check_in_date and check_out_date must be ISO dates"})
			return
		}
		if !out.After(in) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Check-out date must be after check-in date"})
			return
		}
		record = req.Hotel

	case planner.KindCar:
		if req.Car == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "car payload is required for kind=car"})
			return
		}
		record = req.Car
	}

	payload, err := json.Marshal(record)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode plan"})
		return
	}

	id := uuid.New().String()
	if err := database.SavePlan(&database.PlanRow{
		ID:       id,
		UserID:   req.UserID,
		Kind:     req.Kind,
		Payload:  payload,
		Quantity: quantity,
	}); err != nil {
		log.Printf("❌ Failed to save plan: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save plan"})
		return
	}

	c.JSON(http.StatusCreated, CreatePlanResponse{ID: id, Message: "Added to your plan"})
}

func ListPlansHandler(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query parameter is required"})
		return
	}

	rows, err := database.ListPlans(userID)
	if err != nil {
		log.Printf("❌ Failed to list plans: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": rows, "count": len(rows)})
}

func GetPlanHandler(c *gin.Context) {
	id := c.Param("id")
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query parameter is required"})
		return
	}

	row, err := database.GetPlan(userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
			return
		}
		log.Printf("❌ Failed to load plan %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": row})
}

// ─── Grouped view ─────────────────────────────────────────────────────────────

// FlightPlanView is a flight record plus its computed price breakdown.
type FlightPlanView struct {
	planner.FlightBooking
	Cost planner.CostBreakdown `json:"cost"`
}

// HotelPlanView is a hotel record plus its recomputed stay total. A nil
// total means "price unavailable" — the record is still shown.
type HotelPlanView struct {
	planner.HotelBooking
	Nights    int      `json:"nights"`
	TotalCost *float64 `json:"total_cost"`
}

type CityGroupView struct {
	Code    string               `json:"code"`
	City    string               `json:"city"`
	Country string               `json:"country"`
	Flights []FlightPlanView     `json:"flights"`
	Hotels  []HotelPlanView      `json:"hotels"`
	Cars    []planner.CarBooking `json:"cars"`
}

func GroupedPlansHandler(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query parameter is required"})
		return
	}

	rows, err := database.ListPlans(userID)
	if err != nil {
		log.Printf("❌ Failed to list plans: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}

	records := database.DecodePlans(rows)
	views := BuildGroupViews(records, locations)

	c.JSON(http.StatusOK, gin.H{"groups": views, "count": len(records)})
}

// BuildGroupViews groups records by city and attaches cost figures to
// each flight and hotel.
func BuildGroupViews(records []planner.Booking, dir *directory.Directory) []CityGroupView {
	groups := planner.GroupByCity(records, dir)

	views := make([]CityGroupView, 0, len(groups))
	for _, g := range groups {
		view := CityGroupView{
			Code:    g.Code,
			City:    g.City,
			Country: g.Country,
			Flights: make([]FlightPlanView, 0, len(g.Flights)),
			Hotels:  make([]HotelPlanView, 0, len(g.Hotels)),
			Cars:    g.Cars,
		}

		for _, f := range g.Flights {
			view.Flights = append(view.Flights, FlightPlanView{
				FlightBooking: f,
				Cost:          f.Breakdown(),
			})
		}

		for _, h := range g.Hotels {
			hv := HotelPlanView{HotelBooking: h}
			if in, ok := h.CheckInTime(); ok {
				if out, ok := h.CheckOutTime(); ok {
					hv.Nights = planner.Nights(in, out)
				}
			}
			if total, ok := h.Total(); ok {
				hv.TotalCost = &total
			}
			view.Hotels = append(view.Hotels, hv)
		}

		views = append(views, view)
	}
	return views
}

// ─── Mutations ────────────────────────────────────────────────────────────────

type UpdateQuantityRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gte=1,lte=9"`
}

func UpdateQuantityHandler(c *gin.Context) {
	id := c.Param("id")

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := database.UpdatePlanQuantity(req.UserID, id, req.Quantity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Flight plan not found"})
			return
		}
		log.Printf("❌ Failed to update quantity for plan %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quantity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quantity updated"})
}

func DeletePlanHandler(c *gin.Context) {
	id := c.Param("id")
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query parameter is required"})
		return
	}

	if err := database.DeletePlan(userID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
			return
		}
		log.Printf("❌ Failed to delete plan %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plan removed"})
}

func clampQuantity(q int) int {
	if q < minQuantity {
		return minQuantity
	}
	if q > maxQuantity {
		return maxQuantity
	}
	return q
}

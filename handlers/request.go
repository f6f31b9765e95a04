package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tripindia/errx"
	"tripindia/services"
)

const (
	defaultBudget = 10000
	defaultDays   = 3
	defaultStyle  = "normal"
)

// maxLenientInt bounds coerced integers so cost arithmetic cannot overflow.
const maxLenientInt = 1_000_000_000

// lenientInt accepts a JSON number or a numeric string. Fractions are
// truncated. Anything else, including values beyond ±maxLenientInt, leaves
// the value unset so the default applies.
type lenientInt struct {
	value int
	set   bool
}

func (n *lenientInt) UnmarshalJSON(b []byte) error {
	*n = lenientInt{}
	s := strings.TrimSpace(string(b))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.Abs(f) > maxLenientInt {
		return nil
	}
	if i, err := strconv.Atoi(s); err == nil {
		n.value, n.set = i, true
		return nil
	}
	n.value, n.set = int(f), true
	return nil
}

func (n lenientInt) Or(def int) int {
	if !n.set {
		return def
	}
	return n.value
}

// lenientString keeps JSON strings and treats any other JSON value as absent.
type lenientString struct {
	value string
}

func (s *lenientString) UnmarshalJSON(b []byte) error {
	*s = lenientString{}
	var v string
	if err := json.Unmarshal(b, &v); err == nil {
		s.value = v
	}
	return nil
}

func (s lenientString) String() string {
	return s.value
}

// PlannerRequest is the body of POST /planner and POST /planner/pdf.
type PlannerRequest struct {
	Destination lenientString `json:"destination"`
	Budget      lenientInt    `json:"budget"`
	Days        lenientInt    `json:"days"`
	Style       lenientString `json:"style"`
}

// Input applies defaults: budget 10000, days 3 (at least 1), style normal.
// Destination validation is left to the planner.
func (r PlannerRequest) Input() services.PlanInput {
	days := r.Days.Or(defaultDays)
	if days < 1 {
		days = 1
	}
	style := r.Style.String()
	if strings.TrimSpace(style) == "" {
		style = defaultStyle
	}
	return services.PlanInput{
		Destination: r.Destination.String(),
		Budget:      r.Budget.Or(defaultBudget),
		Days:        days,
		Style:       style,
	}
}

// bindPlanInput decodes the planner body. An empty body counts as an empty
// request, so it fails on the missing destination rather than on decoding.
func bindPlanInput(c *gin.Context) (services.PlanInput, error) {
	var req PlannerRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return services.PlanInput{}, errx.New(err, http.StatusBadRequest, "Invalid request: "+err.Error())
	}
	return req.Input(), nil
}

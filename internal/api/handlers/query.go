package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/bookings/models"
)

// ParseBookingsQuery разбирает фильтр списка бронирований из query параметров
// status, startDate, endDate (YYYY-MM-DD), includeInactive
func ParseBookingsQuery(r *http.Request) (*models.ListBookingsRequest, error) {
	q := r.URL.Query()
	req := &models.ListBookingsRequest{}

	if status := q.Get("status"); status != "" {
		req.Status = &status
	}

	for _, p := range []struct {
		name string
		dst  **time.Time
	}{{"startDate", &req.StartDate}, {"endDate", &req.EndDate}} {
		value := q.Get(p.name)
		if value == "" {
			continue
		}
		date, err := time.Parse(domain.DateFormat, value)
		if err != nil {
			return nil, fmt.Errorf("%s: expected YYYY-MM-DD", p.name)
		}
		*p.dst = &date
	}

	if value := q.Get("includeInactive"); value != "" {
		include, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("includeInactive: expected true or false")
		}
		req.IncludeInactive = include
	}

	return req, nil
}

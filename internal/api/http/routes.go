// Package httpapi exposes the simulation core to the presentation layer
// over HTTP. This is the only place where "now" is defaulted: the core
// models all take explicit instants.
package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pocketcosmos/planetweather/internal/catalog"
	"github.com/pocketcosmos/planetweather/internal/lunar"
	"github.com/pocketcosmos/planetweather/internal/orbit"
	"github.com/pocketcosmos/planetweather/internal/solar"
	"github.com/pocketcosmos/planetweather/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	cat := service.Simulator().Catalog()

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := app.Group("/api/v1")

	v1.Get("/bodies", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"bodies": cat.Bodies()})
	})

	v1.Get("/bodies/:id", func(c *fiber.Ctx) error {
		body, err := lookupBody(cat, c)
		if err != nil {
			return err
		}
		return c.JSON(body)
	})

	v1.Get("/bodies/:id/weather", func(c *fiber.Ctx) error {
		body, err := lookupBody(cat, c)
		if err != nil {
			return err
		}

		var q instantQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		// Explicit instants are always simulated; only "now" may be live.
		if q.explicit {
			snap, err := service.At(body.ID, q.At)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
			return c.JSON(snap)
		}

		snap, err := service.Current(c.Context(), body.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(snap)
	})

	v1.Get("/bodies/:id/forecast/hourly", func(c *fiber.Ctx) error {
		body, err := lookupBody(cat, c)
		if err != nil {
			return err
		}

		var q instantQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		forecast, err := service.Hourly(body.ID, q.At)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"body": body.ID, "points": forecast})
	})

	v1.Get("/bodies/:id/forecast/daily", func(c *fiber.Ctx) error {
		body, err := lookupBody(cat, c)
		if err != nil {
			return err
		}

		var q instantQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		forecast, err := service.Daily(body.ID, q.At)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"body": body.ID, "points": forecast})
	})

	v1.Get("/bodies/:id/position", func(c *fiber.Ctx) error {
		body, err := lookupBody(cat, c)
		if err != nil {
			return err
		}

		var q positionQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(orbit.At(body, q.At, q.Radius))
	})

	v1.Get("/bodies/:id/solar", func(c *fiber.Ctx) error {
		body, err := lookupBody(cat, c)
		if err != nil {
			return err
		}

		var q solarQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(solar.At(body, q.At, q.Longitude))
	})

	v1.Get("/moon/phase", func(c *fiber.Ctx) error {
		var q instantQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(lunar.At(q.At))
	})
}

// lookupBody resolves the :id path parameter, turning an unknown id into a
// 404 rather than defaulting to any body.
func lookupBody(cat *catalog.Catalog, c *fiber.Ctx) (catalog.Body, error) {
	id := c.Params("id")
	body, ok := cat.Lookup(id)
	if !ok {
		return catalog.Body{}, fiber.NewError(fiber.StatusNotFound, "unknown body: "+id)
	}
	return body, nil
}

// instantQuery carries the optional `at` timestamp; absent means now.
type instantQuery struct {
	At       time.Time
	explicit bool
}

func (q *instantQuery) bind(c *fiber.Ctx) error {
	s := c.Query("at")
	if s == "" {
		q.At = time.Now().UTC()
		return nil
	}
	ts, err := parseTime(s)
	if err != nil {
		return err
	}
	q.At = ts
	q.explicit = true
	return nil
}

// positionQuery adds the visual orbit radius for scene placement.
type positionQuery struct {
	At     time.Time
	Radius float64 `validate:"gt=0"`
}

func (q *positionQuery) bind(c *fiber.Ctx) error {
	var iq instantQuery
	if err := iq.bind(c); err != nil {
		return err
	}
	q.At = iq.At

	q.Radius = 1.0
	if s := c.Query("radius"); s != "" {
		r, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.New("invalid radius")
		}
		q.Radius = r
	}
	return validate.Struct(q)
}

// solarQuery adds the observer longitude in degrees.
type solarQuery struct {
	At        time.Time
	Longitude float64
}

func (q *solarQuery) bind(c *fiber.Ctx) error {
	var iq instantQuery
	if err := iq.bind(c); err != nil {
		return err
	}
	q.At = iq.At

	if s := c.Query("longitude"); s != "" {
		lon, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.New("invalid longitude")
		}
		q.Longitude = lon
	}
	return nil
}

// parseTime tries RFC3339 first, then Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.UTC(), nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid time format; use RFC3339 or unix seconds")
}

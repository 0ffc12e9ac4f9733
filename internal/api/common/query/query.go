package query

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"inventory-api-server/internal/config"
)

// Viewer form fields. Accepted either as query string or form body.
type parseQuery struct {
	Host      string `query:"host,omitempty" form:"host"`
	Token     string `query:"token,omitempty" form:"token"`
	Threshold string `query:"threshold,omitempty" form:"threshold"`
}

type Query struct {
	ID    string
	Host  string
	Token string
	// ThresholdMinutes is nil when breach checking is off for this request.
	ThresholdMinutes *int
}

func (q parseQuery) ParseAndValidate(c *fiber.Ctx, defaults config.Workspace) (Query, error) {
	id, _ := c.Locals("requestid").(string)

	host := q.Host
	if host == "" {
		host = defaults.Host
	}
	token := q.Token
	if token == "" {
		token = defaults.Token
	}

	var threshold *int
	if q.Threshold != "" {
		minutes, err := strconv.Atoi(q.Threshold)
		if err != nil {
			return Query{}, errors.New("threshold must be a whole number of minutes")
		}
		if minutes < 0 {
			return Query{}, errors.New("threshold must not be negative")
		}
		threshold = &minutes
	}

	return Query{
		ID:               id,
		Host:             host,
		Token:            token,
		ThresholdMinutes: threshold,
	}, nil
}

func ParseAndValidate(c *fiber.Ctx, defaults config.Workspace) (Query, error) {
	query := &parseQuery{}
	if err := c.QueryParser(query); err != nil {
		return Query{}, err
	}
	if c.Method() == fiber.MethodPost {
		if err := c.BodyParser(query); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
			return Query{}, err
		}
	}
	return query.ParseAndValidate(c, defaults)
}

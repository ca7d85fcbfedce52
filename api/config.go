package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"net/http"
	"nodeclient-adapter/types"
	"time"
)

const defaultTimeout = 30 * time.Second

// ErrConfiguration is the cause of every error returned while building a
// Client from an unusable configuration.
var ErrConfiguration = errors.New("invalid client configuration")

var validate = validator.New()

// Config holds the node credentials and endpoints a Client is built from.
type Config struct {
	// Token is sent verbatim after "Basic " in the Authorization header.
	Token string `validate:"required"`
	// Endpoints are node base URLs, tried in order.
	Endpoints []string `validate:"required,min=1,dive,required"`
}

// Validate reports an error with cause ErrConfiguration when the token is
// empty or no usable endpoint is given.
func (cfg Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return errors.WithMessage(ErrConfiguration, err.Error())
	}
	return nil
}

// Option adjusts a Client while it is being built.
type Option func(*Client)

func WithTransport(t Transport) Option {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.transport = &HTTPTransport{Client: hc}
		}
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log.With().Str("component", "nodeclient").Logger()
	}
}

// WithCurrency sets the currency used to express balances.
func WithCurrency(cur types.Currency) Option {
	return func(c *Client) {
		c.currency = cur
	}
}

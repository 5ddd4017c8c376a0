// Package scenario turns a YAML scenario file into a runnable model:
// products, actors with their roles and stock, transport parameters,
// waiting policy and scripted demands. Malformed scenarios are usage
// errors and fail construction; nothing here recovers at run time.
package scenario

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"trade-lab/errors"
)

const (
	WaitingAll     = "all"
	WaitingTimeout = "timeout"
)

type Spec struct {
	Start    time.Time `yaml:"start" validate:"required"`
	Duration Duration  `yaml:"duration" validate:"required,gt=0"`

	Policy    PolicySpec    `yaml:"policy" validate:"required"`
	Transport TransportSpec `yaml:"transport" validate:"required"`
	Defaults  DefaultsSpec  `yaml:"defaults" validate:"required"`

	Products []ProductSpec `yaml:"products" validate:"required,min=1,dive"`
	Actors   []ActorSpec   `yaml:"actors" validate:"required,min=1,dive"`
	Demands  []DemandSpec  `yaml:"demands" validate:"dive"`
}

type PolicySpec struct {
	Waiting         string   `yaml:"waiting" validate:"required,oneof=all timeout"`
	Criteria        []string `yaml:"criteria" validate:"omitempty,len=3,dive,oneof=price delivery distance"`
	MaxPriceMargin  float64  `yaml:"max_price_margin" validate:"gte=0"`
	MinAmountMargin float64  `yaml:"min_amount_margin" validate:"gte=0"`
}

type TransportSpec struct {
	Carrier         string  `yaml:"carrier" validate:"required"`
	Speed           float64 `yaml:"speed" validate:"required,gt=0"`
	CostPerDistance float64 `yaml:"cost_per_distance" validate:"gte=0"`
	MaxRange        float64 `yaml:"max_range" validate:"gte=0"`
}

type DefaultsSpec struct {
	QuoteDeadline    Duration `yaml:"quote_deadline" validate:"required,gt=0"`
	DeliveryLeadTime Duration `yaml:"delivery_lead_time" validate:"required,gt=0"`
	SendDelay        Duration `yaml:"send_delay" validate:"gte=0"`
	ReceiverDelay    Duration `yaml:"receiver_delay" validate:"gte=0"`
	HandlingTime     Duration `yaml:"handling_time" validate:"required,gt=0"`
	QuoteValidity    Duration `yaml:"quote_validity" validate:"required,gt=0"`
	PaymentTerm      Duration `yaml:"payment_term" validate:"required,gt=0"`
	SettleDelay      Duration `yaml:"settle_delay" validate:"required,gt=0"`
	RestockInterval  Duration `yaml:"restock_interval" validate:"required,gt=0"`
	PriceFactor      float64  `yaml:"price_factor" validate:"required,gt=0"`
}

type ProductSpec struct {
	ID              string  `yaml:"id" validate:"required"`
	Name            string  `yaml:"name" validate:"required"`
	Unit            string  `yaml:"unit" validate:"required"`
	MarketUnitPrice float64 `yaml:"market_unit_price" validate:"required,gt=0"`
}

type LocationSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ActorSpec struct {
	Name     string       `yaml:"name" validate:"required"`
	Location LocationSpec `yaml:"location"`
	Bank     bool         `yaml:"bank"`
	Buys     *BuyingSpec  `yaml:"buys"`
	Sells    *SellingSpec `yaml:"sells"`
}

type BuyingSpec struct {
	Suppliers []string      `yaml:"suppliers" validate:"required,min=1"`
	Restock   []RestockSpec `yaml:"restock" validate:"dive"`
}

type RestockSpec struct {
	Product      string `yaml:"product" validate:"required"`
	ReorderPoint int64  `yaml:"reorder_point" validate:"gte=0"`
	TargetStock  int64  `yaml:"target_stock" validate:"required,gt=0"`
}

type SellingSpec struct {
	PriceFactor float64          `yaml:"price_factor" validate:"gte=0"`
	Stock       map[string]int64 `yaml:"stock" validate:"required,min=1"`
}

type DemandSpec struct {
	At      Duration `yaml:"at" validate:"gte=0"`
	Buyer   string   `yaml:"buyer" validate:"required"`
	Product string   `yaml:"product" validate:"required"`
	Amount  int64    `yaml:"amount" validate:"required,gt=0"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Spec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var spec Spec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := validator.New().Struct(spec); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidScenario, err)
	}
	return &spec, nil
}

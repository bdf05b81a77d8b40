package config

import (
	"errors"
	"log"
	"math"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// FeeTier charges a flat fee for amounts up to (and including) UpTo.
type FeeTier struct {
	UpTo float64 `mapstructure:"upTo"`
	Fee  float64 `mapstructure:"fee"`
}

// FeeStep extends the schedule past the last tier: every started band of
// Size pesos adds Fee on top of the last tier's fee.
type FeeStep struct {
	Size float64 `mapstructure:"size"`
	Fee  float64 `mapstructure:"fee"`
}

// FeeSchedule is the e-wallet service charge table.
type FeeSchedule struct {
	Tiers []FeeTier `mapstructure:"tiers"`
	Step  FeeStep   `mapstructure:"step"`
}

// DefaultFeeSchedule mirrors the printed fee card behind the counter:
// 1-100 costs 5, 101-500 costs 10, then +10 per additional 500 band.
func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		Tiers: []FeeTier{
			{UpTo: 100, Fee: 5},
			{UpTo: 500, Fee: 10},
		},
		Step: FeeStep{Size: 500, Fee: 10},
	}
}

// FeeFor returns the service charge for a cash-in/out amount.
func (s FeeSchedule) FeeFor(amount float64) float64 {
	if amount <= 0 || len(s.Tiers) == 0 {
		return 0
	}
	for _, tier := range s.Tiers {
		if amount <= tier.UpTo {
			return tier.Fee
		}
	}
	last := s.Tiers[len(s.Tiers)-1]
	if s.Step.Size <= 0 {
		return last.Fee
	}
	bands := math.Ceil((amount - last.UpTo) / s.Step.Size)
	return last.Fee + bands*s.Step.Fee
}

// FeeScheduleHolder serves the current schedule and hot-reloads it when
// the config file changes, so fee card updates need no redeploy.
type FeeScheduleHolder struct {
	current atomic.Value // holds FeeSchedule
}

// NewStaticFeeScheduleHolder wraps a fixed schedule with no file watching.
func NewStaticFeeScheduleHolder(s FeeSchedule) *FeeScheduleHolder {
	h := &FeeScheduleHolder{}
	h.current.Store(s)
	return h
}

func NewFeeScheduleHolder() (*FeeScheduleHolder, error) {
	v := viper.New()

	v.SetConfigName("attnstore")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/attnstore/config")
	v.AddConfigPath("/etc/attnstore")
	v.AddConfigPath(".")

	v.SetEnvPrefix("ATTNSTORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultFeeSchedule()
		v.SetDefault("wallet.tiers", defaults.Tiers)
		v.SetDefault("wallet.step", defaults.Step)
	}

	var schedule FeeSchedule
	if err := v.UnmarshalKey("wallet", &schedule); err != nil {
		return nil, err
	}
	if len(schedule.Tiers) == 0 {
		schedule = DefaultFeeSchedule()
	}
	if err := validateFeeSchedule(schedule); err != nil {
		return nil, err
	}

	holder := &FeeScheduleHolder{}
	holder.current.Store(schedule)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated FeeSchedule
		if err := v.UnmarshalKey("wallet", &updated); err != nil {
			log.Printf("[fee-config] reload failed: %v", err)
			return
		}
		if err := validateFeeSchedule(updated); err != nil {
			log.Printf("[fee-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[fee-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *FeeScheduleHolder) Get() FeeSchedule {
	return h.current.Load().(FeeSchedule)
}

func validateFeeSchedule(s FeeSchedule) error {
	if len(s.Tiers) == 0 {
		return errors.New("wallet.tiers cannot be empty")
	}
	prev := 0.0
	for _, tier := range s.Tiers {
		if tier.UpTo <= prev {
			return errors.New("wallet.tiers must have strictly increasing upTo bounds")
		}
		if tier.Fee < 0 {
			return errors.New("wallet.tiers fees cannot be negative")
		}
		prev = tier.UpTo
	}
	if s.Step.Size < 0 || s.Step.Fee < 0 {
		return errors.New("wallet.step values cannot be negative")
	}
	return nil
}

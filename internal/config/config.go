package config

import (
	"errors"

	"github.com/spf13/viper"
)

// SolarConfig holds the sizing assumptions behind the quote estimate.
// Values come from configs/config.yml; the defaults below are the reference
// assumptions the product launched with.
type SolarConfig struct {
	PeakSunHours      float64
	EfficiencyFactor  float64
	CostPerWatt       float64 // currency per installed watt
	TariffPerKWh      float64 // currency per grid kWh
	SavingsPercentage float64 // share of the bill the system offsets
}

// AdvisorConfig configures the generative-language API client.
type AdvisorConfig struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout string // parsed as time.Duration by the client
}

const (
	keyPeakSunHours      = "solar.peak_sun_hours"
	keyEfficiencyFactor  = "solar.efficiency_factor"
	keyCostPerWatt       = "solar.cost_per_watt"
	keyTariffPerKWh      = "solar.tariff_per_kwh"
	keySavingsPercentage = "solar.savings_percentage"

	keyAdvisorBaseURL = "advisor.base_url"
	keyAdvisorModel   = "advisor.model"
	keyAdvisorAPIKey  = "advisor.api_key"
	keyAdvisorTimeout = "advisor.timeout"

	keySigningKey = "auth.signing_key"
)

// setDefaults registers fallbacks so a missing config.yml still yields a
// working calculator.
func setDefaults() {
	viper.SetDefault(keyPeakSunHours, 5.0)
	viper.SetDefault(keyEfficiencyFactor, 0.8)
	viper.SetDefault(keyCostPerWatt, 11.25)
	viper.SetDefault(keyTariffPerKWh, 0.18)
	viper.SetDefault(keySavingsPercentage, 0.85)

	viper.SetDefault(keyAdvisorBaseURL, "https://generativelanguage.googleapis.com")
	viper.SetDefault(keyAdvisorModel, "gemini-2.0-flash")
	viper.SetDefault(keyAdvisorTimeout, "30s")

	viper.SetDefault(keySigningKey, "change-me-in-config")

	// Secrets may also arrive through the environment.
	_ = viper.BindEnv(keyAdvisorAPIKey, "GEMINI_API_KEY")
	_ = viper.BindEnv(keySigningKey, "AUTH_SIGNING_KEY")
}

// Load reads configs/config.yml into viper. A missing file is not an error;
// the defaults cover every key the app needs except the advisor API key.
func Load() error {
	setDefaults()
	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// Solar returns the current sizing assumptions.
func Solar() SolarConfig {
	return SolarConfig{
		PeakSunHours:      viper.GetFloat64(keyPeakSunHours),
		EfficiencyFactor:  viper.GetFloat64(keyEfficiencyFactor),
		CostPerWatt:       viper.GetFloat64(keyCostPerWatt),
		TariffPerKWh:      viper.GetFloat64(keyTariffPerKWh),
		SavingsPercentage: viper.GetFloat64(keySavingsPercentage),
	}
}

// SigningKey returns the JWT signing secret.
func SigningKey() string {
	return viper.GetString(keySigningKey)
}

// Advisor returns the generative-language client settings.
func Advisor() AdvisorConfig {
	return AdvisorConfig{
		BaseURL: viper.GetString(keyAdvisorBaseURL),
		Model:   viper.GetString(keyAdvisorModel),
		APIKey:  viper.GetString(keyAdvisorAPIKey),
		Timeout: viper.GetString(keyAdvisorTimeout),
	}
}

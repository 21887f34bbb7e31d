package api

import (
	"sync"

	"github.com/spf13/viper"

	"github.com/santhoshclientric/Revyn-sub001/llm"
	"github.com/santhoshclientric/Revyn-sub001/logging"
	"github.com/santhoshclientric/Revyn-sub001/payments"
)

type Config struct {
	StorageConfig
	ServerConfig
	Payments payments.Config
	LLM      llm.Config
}

type StorageConfig struct {
	TableNameSubmissions string
	TableNameReports     string
	TableNameOrders      string
}

type ServerConfig struct {
	Port              int
	ReportAmountCents int64
	ReportCurrency    string
}

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			TableNameSubmissions: viper.GetString("storage.TableNameSubmissions"),
			TableNameReports:     viper.GetString("storage.TableNameReports"),
			TableNameOrders:      viper.GetString("storage.TableNameOrders"),
		},
		ServerConfig: ServerConfig{
			Port:              viper.GetInt("server.port"),
			ReportAmountCents: viper.GetInt64("payments.ReportAmountCents"),
			ReportCurrency:    getStringOrDefault("payments.ReportCurrency", "eur"),
		},
		Payments: payments.Config{
			APIKey:     getString("payments.StripeKey"),
			PriceID:    getString("payments.StripePriceID"),
			SuccessURL: getString("payments.SuccessURL"),
			CancelURL:  getString("payments.CancelURL"),
		},
		LLM: llm.Config{
			Provider: getStringOrDefault("llm.Provider", "openai"),
			APIKey:   viper.GetString("llm.APIKey"),
			Model:    viper.GetString("llm.Model"),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getString(name string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Fatalf("required environment variable '%s' is missing", name)
	return ""
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port               int
	NatsURL            string
	NatsToken          string
	DatabaseURL        string
	LogLevel           string
	Timezone           string
	WhatsAppGatewayURL string
	WhatsAppToken      string
	APIToken           string
	ReminderSpec       string
	ReminderLeadMin    int
}

func Load() Config {
	return Config{
		Port:               envInt("AGENDAVOZ_PORT", 8760),
		NatsURL:            envStr("NATS_URL", "nats://hermes:4222"),
		NatsToken:          envStr("NATS_TOKEN", ""),
		DatabaseURL:        envStr("DATABASE_URL", ""),
		LogLevel:           envStr("LOG_LEVEL", "info"),
		Timezone:           envStr("AGENDAVOZ_TIMEZONE", "America/Sao_Paulo"),
		WhatsAppGatewayURL: envStr("WHATSAPP_GATEWAY_URL", ""),
		WhatsAppToken:      envStr("WHATSAPP_API_TOKEN", ""),
		APIToken:           envStr("AGENDAVOZ_API_TOKEN", ""),
		ReminderSpec:       envStr("REMINDER_CRON", "*/5 * * * *"),
		ReminderLeadMin:    envInt("REMINDER_LEAD_MINUTES", 30),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

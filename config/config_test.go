package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Notification.Channel != NotificationChannelLog {
		t.Errorf("expected default channel %q, got %q", NotificationChannelLog, cfg.Notification.Channel)
	}
	if cfg.Insights.DomainQueryTimeout != 5*time.Second {
		t.Errorf("expected 5s domain timeout, got %v", cfg.Insights.DomainQueryTimeout)
	}
	if cfg.Insights.OilChangeInterval != 5000 {
		t.Errorf("expected oil change interval 5000, got %d", cfg.Insights.OilChangeInterval)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("NOTIFICATION_CHANNEL", "amqp")
	t.Setenv("INSIGHTS_DOMAIN_TIMEOUT", "250ms")
	t.Setenv("SCHEDULER_ENABLED", "false")
	t.Setenv("INSIGHTS_CONCURRENCY", "not-a-number")

	cfg := Load()

	if cfg.Notification.Channel != NotificationChannelAMQP {
		t.Errorf("expected amqp channel, got %q", cfg.Notification.Channel)
	}
	if cfg.Insights.DomainQueryTimeout != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", cfg.Insights.DomainQueryTimeout)
	}
	if cfg.Scheduler.Enabled {
		t.Error("expected scheduler to be disabled")
	}
	if cfg.Insights.Concurrency != 8 {
		t.Errorf("expected fallback concurrency 8, got %d", cfg.Insights.Concurrency)
	}
}

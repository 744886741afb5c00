package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pricing": map[string]any{
			"serviceFeeRate": 0.1,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PRICING_SERVICEFEERATE", want: "pricing.serviceFeeRate"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestValidateRate(t *testing.T) {
	if err := validateRate("pricing.taxRate", 0.05); err != nil {
		t.Fatalf("validateRate(0.05) = %v, want nil", err)
	}
	if err := validateRate("pricing.taxRate", -0.01); err == nil {
		t.Fatal("validateRate(-0.01) = nil, want error")
	}
	if err := validateRate("pricing.taxRate", 1.5); err == nil {
		t.Fatal("validateRate(1.5) = nil, want error")
	}
}

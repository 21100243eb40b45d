package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"navigation": map[string]any{
			"tickInterval": "100ms",
			"reroute": map[string]any{
				"evaluationInterval": "2s",
				"threshold":          2,
			},
			"arrival": map[string]any{
				"sound": map[string]any{
					"triggerDistance": 1.5,
				},
			},
		},
		"qrcode": map[string]any{
			"errorCorrectionLevel": "M",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "NAVIGATION_TICKINTERVAL", want: "navigation.tickInterval"},
		{envKey: "NAVIGATION_REROUTE_THRESHOLD", want: "navigation.reroute.threshold"},
		{envKey: "NAVIGATION_REROUTE_EVALUATIONINTERVAL", want: "navigation.reroute.evaluationInterval"},
		{envKey: "NAVIGATION_ARRIVAL_SOUND_TRIGGERDISTANCE", want: "navigation.arrival.sound.triggerDistance"},
		{envKey: "QRCODE_ERRORCORRECTIONLEVEL", want: "qrcode.errorCorrectionLevel"},
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

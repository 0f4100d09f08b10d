package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"backend": map[string]any{
			"baseUrl": "http://localhost:8080/api",
		},
		"session": map[string]any{
			"bucketUrl": "mem://",
		},
		"cart": map[string]any{
			"serializeMutations": true,
		},
		"checkout": map[string]any{
			"clearCartOnFailure": false,
		},
		"clientLog": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "BACKEND_BASEURL", want: "backend.baseUrl"},
		{envKey: "SESSION_BUCKETURL", want: "session.bucketUrl"},
		{envKey: "CART_SERIALIZEMUTATIONS", want: "cart.serializeMutations"},
		{envKey: "CHECKOUT_CLEARCARTONFAILURE", want: "checkout.clearCartOnFailure"},
		{envKey: "CLIENTLOG_TOPICID", want: "clientLog.topicId"},
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

package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "question rows",
			serviceName: "sheet",
			objectType:  "questions",
			identifier:  "rows",
			expectedKey: "altoque:sheet:questions:rows",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "placement",
			objectType:  "attempt",
			identifier:  "01HGZ8VNRYXS8QKNJV5GRWPWDQ",
			paramsKey:   []string{},
			expectedKey: "altoque:placement:attempt:01HGZ8VNRYXS8QKNJV5GRWPWDQ",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "sheet",
			objectType:  "schedule",
			identifier:  "rows",
			paramsKey:   []string{"v2", "en"},
			expectedKey: "altoque:sheet:schedule:rows:v2_en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}

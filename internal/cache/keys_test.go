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
			name:        "session key",
			serviceName: "session",
			objectType:  "state",
			identifier:  "01HGZ8VNRYXS8QKNJV5GRWPWDQ",
			expectedKey: "quizforge:session:state:01HGZ8VNRYXS8QKNJV5GRWPWDQ",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "session",
			objectType:  "state",
			identifier:  "123",
			paramsKey:   []string{},
			expectedKey: "quizforge:session:state:123",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "quiz",
			objectType:  "export",
			identifier:  "xyz",
			paramsKey:   []string{"csv", "v2"},
			expectedKey: "quizforge:quiz:export:xyz:csv_v2",
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

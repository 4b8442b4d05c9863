package config

import (
	"encoding/json"
	"fmt"
)

// ServiceAccount holds the fields of the service account JSON we rely on.
type ServiceAccount struct {
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// ParseServiceAccount checks that the inline credentials are usable JSON.
func ParseServiceAccount(raw string) (*ServiceAccount, error) {
	var sa ServiceAccount
	if err := json.Unmarshal([]byte(raw), &sa); err != nil {
		return nil, fmt.Errorf("FIREBASE_SERVICE_ACCOUNT is not valid JSON: %w", err)
	}
	if sa.ClientEmail == "" || sa.PrivateKey == "" {
		return nil, fmt.Errorf("FIREBASE_SERVICE_ACCOUNT lacks client_email or private_key")
	}
	return &sa, nil
}

// utils/firebase.go
package utils

import (
	"context"
	"fmt"

	"finalprojectapi/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// credentialOption prefers the inline service account JSON over a file path.
func credentialOption(cfg config.Config) (option.ClientOption, string, error) {
	if cfg.FirebaseServiceAccount != "" {
		sa, err := config.ParseServiceAccount(cfg.FirebaseServiceAccount)
		if err != nil {
			return nil, "", err
		}
		return option.WithCredentialsJSON([]byte(cfg.FirebaseServiceAccount)), sa.ProjectID, nil
	}
	if cfg.FirebaseCredentialsFile != "" {
		return option.WithCredentialsFile(cfg.FirebaseCredentialsFile), "", nil
	}
	return nil, "", fmt.Errorf("firebase: no credentials configured")
}

// NewFirestoreClient initializes the Firebase App and returns its Firestore client.
func NewFirestoreClient(ctx context.Context, cfg config.Config) (*firestore.Client, error) {
	opt, projectID, err := credentialOption(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.FirebaseProjectID != "" {
		projectID = cfg.FirebaseProjectID
	}

	var fbCfg *firebase.Config
	if projectID != "" {
		fbCfg = &firebase.Config{ProjectID: projectID}
	}
	app, err := firebase.NewApp(ctx, fbCfg, opt)
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: error getting Firestore client: %w", err)
	}
	return client, nil
}

package gcloud

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/wire"

	"ttsserver/config"
	"ttsserver/domain"
	"ttsserver/pkg/log"
)

var ProviderSet = wire.NewSet(NewSpeechProvider)

// NewSpeechProvider builds the provider named by google.driver. The cleanup
// closes the gRPC connection.
func NewSpeechProvider(c *config.Config, l *log.Logger) (domain.SpeechProvider, func(), error) {
	switch strings.ToLower(c.Google.Driver) {
	case "", "grpc":
		client, err := NewClient(context.Background(), c, l)
		if err != nil {
			return nil, nil, err
		}
		return client, func() { _ = client.Close() }, nil
	case "rest":
		client, err := NewRestClient(c, l)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown google driver %q", c.Google.Driver)
	}
}

// Package statsd wraps the handful of statsd calls the stress harness makes.
// It hides the datadog dependency so that swapping the metrics client only
// touches this file.
package statsd

import (
	"time"

	ddstatsd "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
)

var client ddstatsd.ClientInterface = &ddstatsd.NoOpClient{}

func Client() ddstatsd.ClientInterface {
	return client
}

// EmitTickStat records the time elapsed since start under the "tick" timing,
// tagged with stage.
func EmitTickStat(start time.Time, stage string) {
	duration := time.Since(start)
	err := Client().Timing("tick", duration, []string{stage}, 1)
	if err != nil {
		log.Logger.Warn().Msgf("failed to emit tick stat: %v", err)
	}
}

// EmitStoreSize reports the member count of one component store as a gauge.
func EmitStoreSize(component string, members int) {
	err := Client().Gauge("store.members", float64(members), []string{"component:" + component}, 1)
	if err != nil {
		log.Logger.Warn().Msgf("failed to emit store size: %v", err)
	}
}

// Init replaces the no-op client with one sending to address.
func Init(address string, tags []string) error {
	if address == "" {
		return eris.New("address must not be empty")
	}
	opts := []ddstatsd.Option{
		// The statsd namespace is the prefix of all metrics
		ddstatsd.WithNamespace("stratum"),
	}
	if len(tags) > 0 {
		opts = append(opts, ddstatsd.WithTags(tags))
	}

	newClient, err := ddstatsd.New(address, opts...)
	if err != nil {
		return eris.Wrapf(err, "creating statsd client for %s", address)
	}
	client = newClient
	return nil
}

// Close flushes and closes the client and restores the no-op client.
func Close() error {
	err := client.Close()
	client = &ddstatsd.NoOpClient{}
	return err
}

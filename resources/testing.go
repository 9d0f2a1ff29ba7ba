package resources

import (
	"io/ioutil"
	"testing"

	"github.com/activecm/droplog/config"
	"github.com/activecm/droplog/pkg/data"
	"github.com/activecm/droplog/pkg/geo"
	"github.com/activecm/droplog/pkg/metrics"
	log "github.com/sirupsen/logrus"
)

//InitTestResources creates a default testing resource bundle. Nothing is
//read from disk, countries resolve to Unknown and there are no exit nodes.
func InitTestResources(t *testing.T) *Resources {
	conf, err := config.LoadTestingConfig()
	if err != nil {
		t.Fatal(err)
	}

	logger := log.New()
	logger.Out = ioutil.Discard
	logger.Level = log.DebugLevel

	return &Resources{
		Config:    conf,
		Log:       logger,
		Geo:       geo.NewUnknownResolver(),
		ExitNodes: data.NewStringSet(),
		Metrics:   metrics.New(),
		RunID:     "testing",
	}
}
